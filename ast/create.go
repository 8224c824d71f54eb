//-----------------------------------------------------------------------------
// Copyright (c) 2022-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// CreateParagraph creates a paragraph with the given inlines.
func CreateParagraph(nodes ...Inline) *Paragraph {
	return &Paragraph{Inlines: nodes}
}

// CreateHeading creates a heading of the given level.
func CreateHeading(level int, nodes ...Inline) *Heading {
	return &Heading{Level: level, Inlines: nodes}
}

// CreateText creates a text inline.
func CreateText(s string) *Text { return &Text{Text: s} }

// CreateInlineSliceFromWords makes a new inline list from words,
// that will be space-separated.
func CreateInlineSliceFromWords(words ...string) InlineSlice {
	if len(words) == 0 {
		return nil
	}
	inl := make(InlineSlice, 0, 2*len(words)-1)
	for i, word := range words {
		if i > 0 {
			inl = append(inl, &Text{Text: " "})
		}
		inl = append(inl, &Text{Text: word})
	}
	return inl
}

// CreateListItem creates a list item with a single paragraph of text.
func CreateListItem(text string) ListItem {
	return ListItem{Blocks: BlockSlice{CreateParagraph(CreateText(text))}}
}

// NewTaskListItem creates an open task item with a single paragraph of text.
// Its Source is zero.
func NewTaskListItem(text string) TaskListItem {
	return TaskListItem{Blocks: BlockSlice{CreateParagraph(CreateText(text))}}
}

// NewCompletedTaskListItem creates a completed task item with a single
// paragraph of text.
func NewCompletedTaskListItem(text string) TaskListItem {
	ti := NewTaskListItem(text)
	ti.Completed = true
	return ti
}
