//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package jsonenc encodes the abstract syntax tree into JSON.
//
// Every node is an object with a type "t". Child nodes are listed in "c",
// string content is stored in "s". Headings get a slug that is unique within
// the encoded slice.
package jsonenc

import (
	"io"
	"strconv"

	"zettelstore.de/mdast/ast"
	"zettelstore.de/mdast/encoder"
	"zettelstore.de/mdast/strfun"
)

func init() {
	encoder.Register("json", encoder.Info{
		Create: func() encoder.Encoder { return &jsonEncoder{} },
	})
}

type jsonEncoder struct{}

// WriteBlocks writes a block slice as a JSON array.
func (*jsonEncoder) WriteBlocks(w io.Writer, bs ast.BlockSlice) (int, error) {
	v := newVisitor(w)
	v.writeBlockSlice(bs)
	length, err := v.b.Flush()
	return length, err
}

// WriteInlines writes an inline slice as a JSON array.
func (*jsonEncoder) WriteInlines(w io.Writer, is ast.InlineSlice) (int, error) {
	v := newVisitor(w)
	v.writeInlineSlice(is)
	length, err := v.b.Flush()
	return length, err
}

type visitor struct {
	b     encoder.BufWriter
	slugs *strfun.Slugs
}

func newVisitor(w io.Writer) *visitor {
	return &visitor{b: encoder.NewBufWriter(w), slugs: strfun.NewSlugs()}
}

var alignString = map[ast.Alignment]string{
	ast.AlignNone:   `"none"`,
	ast.AlignLeft:   `"left"`,
	ast.AlignCenter: `"center"`,
	ast.AlignRight:  `"right"`,
}

func (v *visitor) Visit(node ast.Node) ast.Visitor {
	switch n := node.(type) {
	case *ast.Blockquote:
		v.writeType("Blockquote")
		v.writeBlocks(n.Blocks)
	case *ast.TaskList:
		v.writeType("TaskList")
		v.writeBool("tight", n.Tight)
		v.b.WriteString(`,"c":[`)
		for i := range n.Items {
			v.writeComma(i)
			v.writeTaskItem(&n.Items[i])
		}
		v.b.WriteByte(']')
	case *ast.BulletedList:
		v.writeType("BulletedList")
		v.writeBool("tight", n.Tight)
		v.writeItems(n.Items)
	case *ast.NumberedList:
		v.writeType("NumberedList")
		v.writeBool("tight", n.Tight)
		v.b.WriteStrings(`,"start":`, strconv.Itoa(n.Start))
		v.writeItems(n.Items)
	case *ast.CodeBlock:
		v.writeType("CodeBlock")
		if n.HasInfo {
			v.writeString("info", n.Info)
		}
		v.writeString("s", n.Content)
	case *ast.HTMLBlock:
		v.writeType("HTMLBlock")
		v.writeString("s", n.Raw)
	case *ast.Paragraph:
		v.writeType("Paragraph")
		v.writeInlines(n.Inlines)
	case *ast.Heading:
		v.writeType("Heading")
		v.b.WriteStrings(`,"level":`, strconv.Itoa(n.Level))
		if slug := v.slugs.Unique(ast.PlainText(n.Inlines)); slug != "" {
			v.writeString("slug", slug)
		}
		v.writeInlines(n.Inlines)
	case *ast.Table:
		v.visitTable(n)
	case *ast.ThematicBreak:
		v.writeType("ThematicBreak")

	case *ast.Text:
		v.writeType("Text")
		v.writeString("s", n.Text)
	case *ast.SoftBreak:
		v.writeType("SoftBreak")
	case *ast.LineBreak:
		v.writeType("LineBreak")
	case *ast.Code:
		v.writeType("Code")
		v.writeString("s", n.Text)
	case *ast.HTML:
		v.writeType("HTML")
		v.writeString("s", n.Raw)
	case *ast.Emphasis:
		v.writeType("Emphasis")
		v.writeInlines(n.Inlines)
	case *ast.Strong:
		v.writeType("Strong")
		v.writeInlines(n.Inlines)
	case *ast.Strikethrough:
		v.writeType("Strikethrough")
		v.writeInlines(n.Inlines)
	case *ast.Link:
		v.writeType("Link")
		v.writeString("dest", n.Destination)
		if desc, ok := ast.AsImage(n); ok {
			v.writeImage(desc)
		}
		v.writeInlines(n.Inlines)
	case *ast.Image:
		v.writeType("Image")
		v.writeString("src", n.Source)
		if desc, ok := ast.AsImage(n); ok {
			v.writeString("alt", desc.Alt)
		}
		v.writeInlines(n.Inlines)
	default:
		return nil
	}
	v.b.WriteByte('}')
	return nil
}

func (v *visitor) writeImage(desc ast.ImageDescriptor) {
	v.b.WriteString(`,"image":{"src":`)
	writeEscaped(&v.b, desc.Source)
	v.b.WriteString(`,"alt":`)
	writeEscaped(&v.b, desc.Alt)
	if desc.HasDestination {
		v.b.WriteString(`,"dest":`)
		writeEscaped(&v.b, desc.Destination)
	}
	v.b.WriteByte('}')
}

func (v *visitor) visitTable(tn *ast.Table) {
	v.writeType("Table")
	v.b.WriteString(`,"align":[`)
	for i, al := range tn.Alignments {
		v.writeComma(i)
		v.b.WriteString(alignString[al])
	}
	v.b.WriteString(`],"header":`)
	v.writeRow(tn.Header)
	v.b.WriteString(`,"rows":[`)
	for i, row := range tn.Rows {
		v.writeComma(i)
		v.writeRow(row)
	}
	v.b.WriteByte(']')
}

func (v *visitor) writeRow(row ast.TableRow) {
	v.b.WriteByte('[')
	for i, cell := range row {
		v.writeComma(i)
		v.writeInlineSlice(cell)
	}
	v.b.WriteByte(']')
}

func (v *visitor) writeTaskItem(item *ast.TaskListItem) {
	v.writeType("TaskItem")
	v.writeBool("done", item.Completed)
	if !item.Source.IsZero() {
		v.writeString("source", item.Source.String())
	}
	v.writeBlocks(item.Blocks)
	v.b.WriteByte('}')
}

func (v *visitor) writeItems(items []ast.ListItem) {
	v.b.WriteString(`,"c":[`)
	for i := range items {
		v.writeComma(i)
		v.writeType("Item")
		v.writeBlocks(items[i].Blocks)
		v.b.WriteByte('}')
	}
	v.b.WriteByte(']')
}

func (v *visitor) writeType(t string) {
	v.b.WriteStrings(`{"t":"`, t, `"`)
}

func (v *visitor) writeBool(key string, val bool) {
	v.b.WriteStrings(`,"`, key, `":`, strconv.FormatBool(val))
}

func (v *visitor) writeString(key, val string) {
	v.b.WriteStrings(`,"`, key, `":`)
	writeEscaped(&v.b, val)
}

func (v *visitor) writeBlocks(bs ast.BlockSlice) {
	v.b.WriteString(`,"c":`)
	v.writeBlockSlice(bs)
}

func (v *visitor) writeInlines(is ast.InlineSlice) {
	v.b.WriteString(`,"c":`)
	v.writeInlineSlice(is)
}

func (v *visitor) writeBlockSlice(bs ast.BlockSlice) {
	v.b.WriteByte('[')
	for i, bn := range bs {
		v.writeComma(i)
		ast.Walk(v, bn)
	}
	v.b.WriteByte(']')
}

func (v *visitor) writeInlineSlice(is ast.InlineSlice) {
	v.b.WriteByte('[')
	for i, in := range is {
		v.writeComma(i)
		ast.Walk(v, in)
	}
	v.b.WriteByte(']')
}

func (v *visitor) writeComma(pos int) {
	if pos > 0 {
		v.b.WriteByte(',')
	}
}
