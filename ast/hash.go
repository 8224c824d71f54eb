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

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash returns a 64 bit hash value of the given node, consistent with Equal:
// equal nodes have the same hash value.
func Hash(node Node) uint64 {
	h := hasher{d: xxhash.New()}
	h.node(node)
	return h.d.Sum64()
}

// HashBlocks returns the hash value of a block slice.
func HashBlocks(bs BlockSlice) uint64 { return Hash(&bs) }

// Tags written before each node, so that different shapes do not collide.
const (
	tagNil byte = iota
	tagBlockSlice
	tagInlineSlice
	tagListItem
	tagTaskListItem
	tagBlockquote
	tagTaskList
	tagBulletedList
	tagNumberedList
	tagCodeBlock
	tagHTMLBlock
	tagParagraph
	tagHeading
	tagTable
	tagThematicBreak
	tagText
	tagSoftBreak
	tagLineBreak
	tagCode
	tagHTML
	tagEmphasis
	tagStrong
	tagStrikethrough
	tagLink
	tagImage
)

type hasher struct {
	d   *xxhash.Digest
	buf [binary.MaxVarintLen64]byte
}

func (h *hasher) tag(t byte) { h.buf[0] = t; h.d.Write(h.buf[:1]) }

func (h *hasher) int(i int) {
	n := binary.PutVarint(h.buf[:], int64(i))
	h.d.Write(h.buf[:n])
}

func (h *hasher) bool(b bool) {
	if b {
		h.tag(1)
	} else {
		h.tag(0)
	}
}

func (h *hasher) string(s string) {
	h.int(len(s))
	h.d.WriteString(s)
}

func (h *hasher) blocks(bs BlockSlice) {
	h.tag(tagBlockSlice)
	h.int(len(bs))
	for _, bn := range bs {
		h.node(bn)
	}
}

func (h *hasher) inlines(is InlineSlice) {
	h.tag(tagInlineSlice)
	h.int(len(is))
	for _, in := range is {
		h.node(in)
	}
}

func (h *hasher) taskItem(ti *TaskListItem) {
	h.tag(tagTaskListItem)
	h.bool(ti.Completed)
	h.d.Write(ti.Source[:])
	h.blocks(ti.Blocks)
}

func (h *hasher) items(items []ListItem) {
	h.int(len(items))
	for _, item := range items {
		h.tag(tagListItem)
		h.blocks(item.Blocks)
	}
}

func (h *hasher) row(row TableRow) {
	h.int(len(row))
	for _, cell := range row {
		h.inlines(cell)
	}
}

func (h *hasher) node(node Node) {
	switch n := node.(type) {
	case nil:
		h.tag(tagNil)
	case *BlockSlice:
		h.blocks(deref(n))
	case *InlineSlice:
		h.inlines(deref(n))
	case *ListItem:
		h.tag(tagListItem)
		h.blocks(n.Blocks)
	case *TaskListItem:
		h.taskItem(n)
	case *Blockquote:
		h.tag(tagBlockquote)
		h.blocks(n.Blocks)
	case *TaskList:
		h.tag(tagTaskList)
		h.bool(n.Tight)
		h.int(len(n.Items))
		for i := range n.Items {
			h.taskItem(&n.Items[i])
		}
	case *BulletedList:
		h.tag(tagBulletedList)
		h.bool(n.Tight)
		h.items(n.Items)
	case *NumberedList:
		h.tag(tagNumberedList)
		h.bool(n.Tight)
		h.int(n.Start)
		h.items(n.Items)
	case *CodeBlock:
		h.tag(tagCodeBlock)
		h.bool(n.HasInfo)
		h.string(n.Info)
		h.string(n.Content)
	case *HTMLBlock:
		h.tag(tagHTMLBlock)
		h.string(n.Raw)
	case *Paragraph:
		h.tag(tagParagraph)
		h.inlines(n.Inlines)
	case *Heading:
		h.tag(tagHeading)
		h.int(n.Level)
		h.inlines(n.Inlines)
	case *Table:
		h.tag(tagTable)
		h.int(len(n.Alignments))
		for _, al := range n.Alignments {
			h.int(int(al))
		}
		h.row(n.Header)
		h.int(len(n.Rows))
		for _, row := range n.Rows {
			h.row(row)
		}
	case *ThematicBreak:
		h.tag(tagThematicBreak)
	case *Text:
		h.tag(tagText)
		h.string(n.Text)
	case *SoftBreak:
		h.tag(tagSoftBreak)
	case *LineBreak:
		h.tag(tagLineBreak)
	case *Code:
		h.tag(tagCode)
		h.string(n.Text)
	case *HTML:
		h.tag(tagHTML)
		h.string(n.Raw)
	case *Emphasis:
		h.tag(tagEmphasis)
		h.inlines(n.Inlines)
	case *Strong:
		h.tag(tagStrong)
		h.inlines(n.Inlines)
	case *Strikethrough:
		h.tag(tagStrikethrough)
		h.inlines(n.Inlines)
	case *Link:
		h.tag(tagLink)
		h.string(n.Destination)
		h.inlines(n.Inlines)
	case *Image:
		h.tag(tagImage)
		h.string(n.Source)
		h.inlines(n.Inlines)
	}
}
