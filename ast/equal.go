//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// Equal reports whether both nodes are structurally equal. All fields take
// part in the comparison, including TaskListItem.Source. A nil slice is
// equal to an empty one.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *BlockSlice:
		y, ok := b.(*BlockSlice)
		return ok && EqualBlocks(deref(x), deref(y))
	case *InlineSlice:
		y, ok := b.(*InlineSlice)
		return ok && EqualInlines(deref(x), deref(y))
	case *ListItem:
		y, ok := b.(*ListItem)
		return ok && (x == y || EqualBlocks(x.Blocks, y.Blocks))
	case *TaskListItem:
		y, ok := b.(*TaskListItem)
		return ok && equalTaskItem(x, y)
	case Block:
		y, ok := b.(Block)
		return ok && equalBlock(x, y)
	case Inline:
		y, ok := b.(Inline)
		return ok && equalInline(x, y)
	}
	return false
}

func deref[S ~[]E, E any](s *S) S {
	if s == nil {
		return nil
	}
	return *s
}

// EqualBlocks reports whether both block slices are structurally equal.
func EqualBlocks(a, b BlockSlice) bool {
	if len(a) != len(b) {
		return false
	}
	for i, bn := range a {
		if !equalBlock(bn, b[i]) {
			return false
		}
	}
	return true
}

// EqualInlines reports whether both inline slices are structurally equal.
func EqualInlines(a, b InlineSlice) bool {
	if len(a) != len(b) {
		return false
	}
	for i, in := range a {
		if !equalInline(in, b[i]) {
			return false
		}
	}
	return true
}

func equalBlock(a, b Block) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Blockquote:
		y, ok := b.(*Blockquote)
		return ok && EqualBlocks(x.Blocks, y.Blocks)
	case *TaskList:
		y, ok := b.(*TaskList)
		if !ok || x.Tight != y.Tight || len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !equalTaskItem(&x.Items[i], &y.Items[i]) {
				return false
			}
		}
		return true
	case *BulletedList:
		y, ok := b.(*BulletedList)
		return ok && x.Tight == y.Tight && equalItems(x.Items, y.Items)
	case *NumberedList:
		y, ok := b.(*NumberedList)
		return ok && x.Tight == y.Tight && x.Start == y.Start && equalItems(x.Items, y.Items)
	case *CodeBlock:
		y, ok := b.(*CodeBlock)
		return ok && *x == *y
	case *HTMLBlock:
		y, ok := b.(*HTMLBlock)
		return ok && *x == *y
	case *Paragraph:
		y, ok := b.(*Paragraph)
		return ok && EqualInlines(x.Inlines, y.Inlines)
	case *Heading:
		y, ok := b.(*Heading)
		return ok && x.Level == y.Level && EqualInlines(x.Inlines, y.Inlines)
	case *Table:
		y, ok := b.(*Table)
		return ok && equalTable(x, y)
	case *ThematicBreak:
		_, ok := b.(*ThematicBreak)
		return ok
	}
	return false
}

func equalItems(a, b []ListItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !EqualBlocks(a[i].Blocks, b[i].Blocks) {
			return false
		}
	}
	return true
}

func equalTaskItem(a, b *TaskListItem) bool {
	return a.Completed == b.Completed && a.Source == b.Source && EqualBlocks(a.Blocks, b.Blocks)
}

func equalTable(a, b *Table) bool {
	if len(a.Alignments) != len(b.Alignments) || len(a.Rows) != len(b.Rows) {
		return false
	}
	for i, al := range a.Alignments {
		if al != b.Alignments[i] {
			return false
		}
	}
	if !equalRow(a.Header, b.Header) {
		return false
	}
	for i, row := range a.Rows {
		if !equalRow(row, b.Rows[i]) {
			return false
		}
	}
	return true
}

func equalRow(a, b TableRow) bool {
	if len(a) != len(b) {
		return false
	}
	for i, cell := range a {
		if !EqualInlines(cell, b[i]) {
			return false
		}
	}
	return true
}

func equalInline(a, b Inline) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Text:
		y, ok := b.(*Text)
		return ok && *x == *y
	case *SoftBreak:
		_, ok := b.(*SoftBreak)
		return ok
	case *LineBreak:
		_, ok := b.(*LineBreak)
		return ok
	case *Code:
		y, ok := b.(*Code)
		return ok && *x == *y
	case *HTML:
		y, ok := b.(*HTML)
		return ok && *x == *y
	case *Emphasis:
		y, ok := b.(*Emphasis)
		return ok && EqualInlines(x.Inlines, y.Inlines)
	case *Strong:
		y, ok := b.(*Strong)
		return ok && EqualInlines(x.Inlines, y.Inlines)
	case *Strikethrough:
		y, ok := b.(*Strikethrough)
		return ok && EqualInlines(x.Inlines, y.Inlines)
	case *Link:
		y, ok := b.(*Link)
		return ok && x.Destination == y.Destination && EqualInlines(x.Inlines, y.Inlines)
	case *Image:
		y, ok := b.(*Image)
		return ok && x.Source == y.Source && EqualInlines(x.Inlines, y.Inlines)
	}
	return false
}
