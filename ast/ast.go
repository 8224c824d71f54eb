//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package ast provides the abstract syntax tree for parsed Markdown content.
//
// The set of block and inline nodes is closed: only types of this package
// implement Block and Inline. Consumers may therefore use exhaustive type
// switches. Trees are built once and must not be mutated afterwards.
package ast

// Node is the interface, all nodes must implement.
type Node interface {
	WalkChildren(v Visitor)
}

// Block is the interface that all block nodes must implement.
type Block interface {
	Node
	blockNode()
}

// BlockSlice is a slice of Blocks.
type BlockSlice []Block

// WalkChildren walks down to the blocks.
func (bs *BlockSlice) WalkChildren(v Visitor) {
	if bs != nil {
		for _, bn := range *bs {
			Walk(v, bn)
		}
	}
}

// FirstParagraphInlines returns the inline list of the first paragraph that
// contains a inline list.
func (bs BlockSlice) FirstParagraphInlines() InlineSlice {
	for _, bn := range bs {
		pn, ok := bn.(*Paragraph)
		if !ok {
			continue
		}
		if inl := pn.Inlines; len(inl) > 0 {
			return inl
		}
	}
	return nil
}

// Inline is the interface that all inline nodes must implement.
type Inline interface {
	Node
	inlineNode()
}

// InlineSlice is a sequence of Inlines.
type InlineSlice []Inline

// WalkChildren walks down to the inlines.
func (is *InlineSlice) WalkChildren(v Visitor) {
	if is != nil {
		for _, in := range *is {
			Walk(v, in)
		}
	}
}
