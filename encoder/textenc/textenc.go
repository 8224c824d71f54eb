//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package textenc encodes the abstract syntax tree into its text.
package textenc

import (
	"io"
	"strings"

	"zettelstore.de/mdast/ast"
	"zettelstore.de/mdast/encoder"
)

func init() {
	encoder.Register("text", encoder.Info{
		Create: func() encoder.Encoder { return &textEncoder{} },
	})
}

type textEncoder struct{}

// WriteBlocks writes the content of a block slice to the writer.
func (*textEncoder) WriteBlocks(w io.Writer, bs ast.BlockSlice) (int, error) {
	v := newVisitor(w)
	v.acceptBlockSlice(bs)
	length, err := v.b.Flush()
	return length, err
}

// WriteInlines writes an inline slice to the writer
func (*textEncoder) WriteInlines(w io.Writer, is ast.InlineSlice) (int, error) {
	v := newVisitor(w)
	v.b.WriteString(ast.PlainText(is))
	length, err := v.b.Flush()
	return length, err
}

// visitor writes the abstract syntax tree to an io.Writer.
type visitor struct {
	b encoder.BufWriter
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewBufWriter(w)}
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.Blockquote:
		v.acceptBlockSlice(n.Blocks)
	case *ast.TaskList:
		for i := range n.Items {
			v.writePosChar(i, '\n')
			v.acceptBlockSlice(n.Items[i].Blocks)
		}
	case *ast.BulletedList:
		v.acceptItems(n.Items)
	case *ast.NumberedList:
		v.acceptItems(n.Items)
	case *ast.CodeBlock:
		v.b.WriteString(strings.TrimSuffix(n.Content, "\n"))
	case *ast.HTMLBlock:
		v.b.WriteString(strings.TrimSuffix(n.Raw, "\n"))
	case *ast.Paragraph:
		v.b.WriteString(ast.PlainText(n.Inlines))
	case *ast.Heading:
		v.b.WriteString(ast.PlainText(n.Inlines))
	case *ast.Table:
		if len(n.Header) > 0 {
			v.writeRow(n.Header)
		}
		for _, row := range n.Rows {
			v.b.WriteByte('\n')
			v.writeRow(row)
		}
	}
	return nil
}

func (v *visitor) acceptItems(items []ast.ListItem) {
	for i := range items {
		v.writePosChar(i, '\n')
		v.acceptBlockSlice(items[i].Blocks)
	}
}

func (v *visitor) writeRow(row ast.TableRow) {
	for i, cell := range row {
		v.writePosChar(i, ' ')
		v.b.WriteString(ast.PlainText(cell))
	}
}

func (v *visitor) acceptBlockSlice(bs ast.BlockSlice) {
	written := false
	for _, bn := range bs {
		if _, ok := bn.(*ast.ThematicBreak); ok {
			continue
		}
		if written {
			v.b.WriteByte('\n')
		}
		ast.Walk(v, bn)
		written = true
	}
}

func (v *visitor) writePosChar(pos int, ch byte) {
	if pos > 0 {
		v.b.WriteByte(ch)
	}
}
