//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// Definition of Block nodes.

// Blockquote contains a sequence of quoted blocks.
type Blockquote struct {
	Blocks BlockSlice
}

func (*Blockquote) blockNode() { /* Just a marker */ }

// WalkChildren walks down the quoted blocks.
func (bq *Blockquote) WalkChildren(v Visitor) { Walk(v, &bq.Blocks) }

//--------------------------------------------------------------------------

// ListItem is one item of a bulleted or numbered list.
type ListItem struct {
	Blocks BlockSlice
}

// WalkChildren walks down the blocks of the item.
func (li *ListItem) WalkChildren(v Visitor) { Walk(v, &li.Blocks) }

// TaskListItem is one item of a task list.
type TaskListItem struct {
	Completed bool
	Blocks    BlockSlice
	Source    SourceID // Identity of the raw source span, zero for hand-built items.
}

// WalkChildren walks down the blocks of the item.
func (ti *TaskListItem) WalkChildren(v Visitor) { Walk(v, &ti.Blocks) }

//--------------------------------------------------------------------------

// TaskList is an unordered list where at least one item had a checkbox.
type TaskList struct {
	Tight bool
	Items []TaskListItem
}

func (*TaskList) blockNode() { /* Just a marker */ }

// WalkChildren walks down the items.
func (tl *TaskList) WalkChildren(v Visitor) {
	for i := range tl.Items {
		Walk(v, &tl.Items[i])
	}
}

// BulletedList is an unordered list.
type BulletedList struct {
	Tight bool
	Items []ListItem
}

func (*BulletedList) blockNode() { /* Just a marker */ }

// WalkChildren walks down the items.
func (bl *BulletedList) WalkChildren(v Visitor) { walkListItems(v, bl.Items) }

// NumberedList is an ordered list.
type NumberedList struct {
	Tight bool
	Start int // Declared ordinal of the first item.
	Items []ListItem
}

func (*NumberedList) blockNode() { /* Just a marker */ }

// WalkChildren walks down the items.
func (nl *NumberedList) WalkChildren(v Visitor) { walkListItems(v, nl.Items) }

func walkListItems(v Visitor, items []ListItem) {
	for i := range items {
		Walk(v, &items[i])
	}
}

//--------------------------------------------------------------------------

// CodeBlock contains lines of uninterpreted text.
type CodeBlock struct {
	Info    string // Info string of a fenced block, valid if HasInfo.
	HasInfo bool
	Content string
}

func (*CodeBlock) blockNode()           { /* Just a marker */ }
func (*CodeBlock) WalkChildren(Visitor) { /* No children */ }

// HTMLBlock contains raw HTML that is passed through.
type HTMLBlock struct {
	Raw string
}

func (*HTMLBlock) blockNode()           { /* Just a marker */ }
func (*HTMLBlock) WalkChildren(Visitor) { /* No children */ }

//--------------------------------------------------------------------------

// Paragraph contains just a sequence of inline elements.
type Paragraph struct {
	Inlines InlineSlice
}

func (*Paragraph) blockNode() { /* Just a marker */ }

// WalkChildren walks down the inlines.
func (pn *Paragraph) WalkChildren(v Visitor) { Walk(v, &pn.Inlines) }

// Heading stores the heading text and level.
type Heading struct {
	Level   int // 1 .. 6
	Inlines InlineSlice
}

func (*Heading) blockNode() { /* Just a marker */ }

// WalkChildren walks the heading text.
func (hn *Heading) WalkChildren(v Visitor) { Walk(v, &hn.Inlines) }

//--------------------------------------------------------------------------

// Table specifies a full table.
//
// Header and every row of Rows have exactly len(Alignments) cells.
type Table struct {
	Alignments []Alignment
	Header     TableRow
	Rows       []TableRow
}

// TableRow is a slice of cells, each cell a sequence of inlines.
type TableRow []InlineSlice

// Alignment specifies the alignment of a table column.
type Alignment int

// Constants for Alignment.
const (
	AlignNone   Alignment = iota // No alignment was declared
	AlignLeft                    // Left alignment
	AlignCenter                  // Center the content
	AlignRight                   // Right alignment
)

func (*Table) blockNode() { /* Just a marker */ }

// WalkChildren walks down to the cells.
func (tn *Table) WalkChildren(v Visitor) {
	walkTableRow(v, tn.Header)
	for _, row := range tn.Rows {
		walkTableRow(v, row)
	}
}

func walkTableRow(v Visitor, row TableRow) {
	for i := range row {
		Walk(v, &row[i])
	}
}

//--------------------------------------------------------------------------

// ThematicBreak specifies a horizontal rule.
type ThematicBreak struct{}

func (*ThematicBreak) blockNode()           { /* Just a marker */ }
func (*ThematicBreak) WalkChildren(Visitor) { /* No children */ }
