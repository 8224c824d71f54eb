//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package treeenc encodes the abstract syntax tree as an indented outline,
// one node per line.
package treeenc

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"zettelstore.de/mdast/ast"
	"zettelstore.de/mdast/encoder"
)

func init() {
	encoder.Register("tree", encoder.Info{
		Create: func() encoder.Encoder { return &treeEncoder{st: plain} },
	})
}

// NewStyled returns a tree encoder that colors its output for terminals.
func NewStyled() encoder.Encoder { return &treeEncoder{st: colored} }

// Palette
const (
	colorNode   = "#78DCE8"
	colorAttr   = "#727072"
	colorString = "#A9DC76"
)

type styles struct {
	node, attr, str lipgloss.Style
}

var (
	plain   = styles{node: lipgloss.NewStyle(), attr: lipgloss.NewStyle(), str: lipgloss.NewStyle()}
	colored = styles{
		node: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorNode)),
		attr: lipgloss.NewStyle().Foreground(lipgloss.Color(colorAttr)),
		str:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorString)),
	}
)

type treeEncoder struct {
	st styles
}

// WriteBlocks writes the outline of a block slice.
func (te *treeEncoder) WriteBlocks(w io.Writer, bs ast.BlockSlice) (int, error) {
	v := newVisitor(w, te.st)
	for _, bn := range bs {
		ast.Walk(v, bn)
	}
	length, err := v.b.Flush()
	return length, err
}

// WriteInlines writes the outline of an inline slice.
func (te *treeEncoder) WriteInlines(w io.Writer, is ast.InlineSlice) (int, error) {
	v := newVisitor(w, te.st)
	for _, in := range is {
		ast.Walk(v, in)
	}
	length, err := v.b.Flush()
	return length, err
}

type visitor struct {
	b     encoder.BufWriter
	st    styles
	level int
}

func newVisitor(w io.Writer, st styles) *visitor {
	return &visitor{b: encoder.NewBufWriter(w), st: st}
}

// Visit writes one line for the node. Children are indented by the walk.
func (v *visitor) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		v.level--
		return nil
	}
	switch n := node.(type) {
	case *ast.BlockSlice, *ast.InlineSlice:
		return sliceVisitor{v}
	case *ast.Blockquote:
		v.writeLine("Blockquote")
	case *ast.TaskList:
		v.writeLine("TaskList", spacing(n.Tight))
	case *ast.TaskListItem:
		if n.Completed {
			v.writeLine("TaskItem", "[x]")
		} else {
			v.writeLine("TaskItem", "[ ]")
		}
	case *ast.BulletedList:
		v.writeLine("BulletedList", spacing(n.Tight))
	case *ast.NumberedList:
		v.writeLine("NumberedList", spacing(n.Tight), "start="+strconv.Itoa(n.Start))
	case *ast.ListItem:
		v.writeLine("Item")
	case *ast.CodeBlock:
		if n.HasInfo {
			v.writeLineString("CodeBlock", n.Content, n.Info)
		} else {
			v.writeLineString("CodeBlock", n.Content)
		}
		return nil
	case *ast.HTMLBlock:
		v.writeLineString("HTMLBlock", n.Raw)
		return nil
	case *ast.Paragraph:
		v.writeLine("Paragraph")
	case *ast.Heading:
		v.writeLine("Heading", strconv.Itoa(n.Level))
	case *ast.Table:
		v.visitTable(n)
		return nil
	case *ast.ThematicBreak:
		v.writeLine("ThematicBreak")
		return nil

	case *ast.Text:
		v.writeLineString("Text", n.Text)
		return nil
	case *ast.SoftBreak:
		v.writeLine("SoftBreak")
		return nil
	case *ast.LineBreak:
		v.writeLine("LineBreak")
		return nil
	case *ast.Code:
		v.writeLineString("Code", n.Text)
		return nil
	case *ast.HTML:
		v.writeLineString("HTML", n.Raw)
		return nil
	case *ast.Emphasis:
		v.writeLine("Emphasis")
	case *ast.Strong:
		v.writeLine("Strong")
	case *ast.Strikethrough:
		v.writeLine("Strikethrough")
	case *ast.Link:
		v.writeLineString("Link", n.Destination)
	case *ast.Image:
		v.writeLineString("Image", n.Source)
	default:
		return nil
	}
	v.level++
	return v
}

// sliceVisitor walks the elements of a slice on the level of the node
// that contains the slice.
type sliceVisitor struct{ v *visitor }

func (sv sliceVisitor) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		return nil
	}
	return sv.v.Visit(node)
}

var alignString = map[ast.Alignment]string{
	ast.AlignNone:   "none",
	ast.AlignLeft:   "left",
	ast.AlignCenter: "center",
	ast.AlignRight:  "right",
}

func (v *visitor) visitTable(tn *ast.Table) {
	aligns := make([]string, len(tn.Alignments))
	for i, al := range tn.Alignments {
		aligns[i] = alignString[al]
	}
	v.writeLine("Table", aligns...)
	v.level++
	v.writeRow("Header", tn.Header)
	for _, row := range tn.Rows {
		v.writeRow("Row", row)
	}
	v.level--
}

func (v *visitor) writeRow(name string, row ast.TableRow) {
	v.writeLine(name)
	v.level++
	for i := range row {
		v.writeLine("Cell")
		v.level++
		for _, in := range row[i] {
			ast.Walk(v, in)
		}
		v.level--
	}
	v.level--
}

func spacing(tight bool) string {
	if tight {
		return "tight"
	}
	return "loose"
}

func (v *visitor) writeIndent() {
	v.b.WriteString(strings.Repeat("  ", v.level))
}

func (v *visitor) writeLine(name string, attrs ...string) {
	v.writeIndent()
	v.b.WriteString(v.st.node.Render(name))
	for _, attr := range attrs {
		v.b.WriteStrings(" ", v.st.attr.Render(attr))
	}
	v.b.WriteByte('\n')
}

func (v *visitor) writeLineString(name, s string, attrs ...string) {
	v.writeIndent()
	v.b.WriteString(v.st.node.Render(name))
	for _, attr := range attrs {
		v.b.WriteStrings(" ", v.st.attr.Render(attr))
	}
	v.b.WriteStrings(" ", v.st.str.Render(strconv.Quote(s)), "\n")
}
