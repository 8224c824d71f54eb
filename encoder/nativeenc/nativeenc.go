//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package nativeenc encodes the abstract syntax tree into native format.
//
// The native format is a single line s-expression, e.g.
// ((PARA (TEXT "Hello ") (STRONG (TEXT "world")))). It is meant for
// debugging and for compact structural expectations in tests.
package nativeenc

import (
	"io"
	"strconv"

	"zettelstore.de/mdast/ast"
	"zettelstore.de/mdast/encoder"
)

func init() {
	encoder.Register("native", encoder.Info{
		Create:  func() encoder.Encoder { return &nativeEncoder{} },
		Default: true,
	})
}

type nativeEncoder struct{}

// WriteBlocks writes a block slice to the writer
func (*nativeEncoder) WriteBlocks(w io.Writer, bs ast.BlockSlice) (int, error) {
	v := newVisitor(w)
	v.b.WriteByte('(')
	v.acceptBlockSlice(bs)
	v.b.WriteByte(')')
	length, err := v.b.Flush()
	return length, err
}

// WriteInlines writes an inline slice to the writer
func (*nativeEncoder) WriteInlines(w io.Writer, is ast.InlineSlice) (int, error) {
	v := newVisitor(w)
	v.b.WriteByte('(')
	v.acceptInlineSlice(is)
	v.b.WriteByte(')')
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

var alignString = map[ast.Alignment]string{
	ast.AlignNone:   "NONE",
	ast.AlignLeft:   "LEFT",
	ast.AlignCenter: "CENTER",
	ast.AlignRight:  "RIGHT",
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.Blockquote:
		v.b.WriteString("(QUOTE")
		v.writeBlocks(n.Blocks)
	case *ast.TaskList:
		v.b.WriteStrings("(TASK-LIST ", spacing(n.Tight))
		for i := range n.Items {
			item := &n.Items[i]
			if item.Completed {
				v.b.WriteString(" (TASK DONE")
			} else {
				v.b.WriteString(" (TASK OPEN")
			}
			v.writeBlocks(item.Blocks)
		}
	case *ast.BulletedList:
		v.b.WriteStrings("(BULLET-LIST ", spacing(n.Tight))
		v.writeItems(n.Items)
	case *ast.NumberedList:
		v.b.WriteStrings("(NUMBERED-LIST ", spacing(n.Tight), " ", strconv.Itoa(n.Start))
		v.writeItems(n.Items)
	case *ast.CodeBlock:
		v.b.WriteString("(CODE-BLOCK ")
		if n.HasInfo {
			v.writeString(n.Info)
		} else {
			v.b.WriteString("()")
		}
		v.b.WriteByte(' ')
		v.writeString(n.Content)
	case *ast.HTMLBlock:
		v.b.WriteString("(HTML-BLOCK ")
		v.writeString(n.Raw)
	case *ast.Paragraph:
		v.b.WriteString("(PARA")
		v.writeInlines(n.Inlines)
	case *ast.Heading:
		v.b.WriteStrings("(HEADING ", strconv.Itoa(n.Level))
		v.writeInlines(n.Inlines)
	case *ast.Table:
		v.visitTable(n)
	case *ast.ThematicBreak:
		v.b.WriteString("(THEMATIC-BREAK")

	case *ast.Text:
		v.b.WriteString("(TEXT ")
		v.writeString(n.Text)
	case *ast.SoftBreak:
		v.b.WriteString("(SOFT")
	case *ast.LineBreak:
		v.b.WriteString("(HARD")
	case *ast.Code:
		v.b.WriteString("(CODE ")
		v.writeString(n.Text)
	case *ast.HTML:
		v.b.WriteString("(HTML ")
		v.writeString(n.Raw)
	case *ast.Emphasis:
		v.b.WriteString("(EMPH")
		v.writeInlines(n.Inlines)
	case *ast.Strong:
		v.b.WriteString("(STRONG")
		v.writeInlines(n.Inlines)
	case *ast.Strikethrough:
		v.b.WriteString("(DELETE")
		v.writeInlines(n.Inlines)
	case *ast.Link:
		v.b.WriteString("(LINK ")
		v.writeString(n.Destination)
		v.writeInlines(n.Inlines)
	case *ast.Image:
		v.b.WriteString("(IMAGE ")
		v.writeString(n.Source)
		v.writeInlines(n.Inlines)
	default:
		return nil
	}
	v.b.WriteByte(')')
	return nil
}

func spacing(tight bool) string {
	if tight {
		return "TIGHT"
	}
	return "LOOSE"
}

func (v *visitor) visitTable(tn *ast.Table) {
	v.b.WriteString("(TABLE (ALIGN")
	for _, al := range tn.Alignments {
		v.b.WriteStrings(" ", alignString[al])
	}
	v.b.WriteString(") (HEADER")
	v.writeCells(tn.Header)
	v.b.WriteByte(')')
	for _, row := range tn.Rows {
		v.b.WriteString(" (ROW")
		v.writeCells(row)
		v.b.WriteByte(')')
	}
}

func (v *visitor) writeCells(row ast.TableRow) {
	for _, cell := range row {
		v.b.WriteString(" (CELL")
		v.writeInlines(cell)
		v.b.WriteByte(')')
	}
}

func (v *visitor) writeItems(items []ast.ListItem) {
	for i := range items {
		v.b.WriteString(" (ITEM")
		v.writeBlocks(items[i].Blocks)
		v.b.WriteByte(')')
	}
}

// writeBlocks writes all blocks, each preceded by a space.
func (v *visitor) writeBlocks(bs ast.BlockSlice) {
	for _, bn := range bs {
		v.b.WriteByte(' ')
		ast.Walk(v, bn)
	}
}

func (v *visitor) writeInlines(is ast.InlineSlice) {
	for _, in := range is {
		v.b.WriteByte(' ')
		ast.Walk(v, in)
	}
}

func (v *visitor) acceptBlockSlice(bs ast.BlockSlice) {
	for i, bn := range bs {
		if i > 0 {
			v.b.WriteByte(' ')
		}
		ast.Walk(v, bn)
	}
}

func (v *visitor) acceptInlineSlice(is ast.InlineSlice) {
	for i, in := range is {
		if i > 0 {
			v.b.WriteByte(' ')
		}
		ast.Walk(v, in)
	}
}

func (v *visitor) writeString(s string) {
	v.b.WriteByte('"')
	v.b.WriteEscaped(s)
	v.b.WriteByte('"')
}
