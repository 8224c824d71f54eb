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

// Definitions of inline nodes.

// Text just contains some text.
type Text struct {
	Text string // The text itself, with escapes and entities resolved.
}

func (*Text) inlineNode()          { /* Just a marker */ }
func (*Text) WalkChildren(Visitor) { /* No children */ }

// --------------------------------------------------------------------------

// SoftBreak is a line ending inside a paragraph that is not significant.
type SoftBreak struct{}

func (*SoftBreak) inlineNode()          { /* Just a marker */ }
func (*SoftBreak) WalkChildren(Visitor) { /* No children */ }

// LineBreak is a hard line break.
type LineBreak struct{}

func (*LineBreak) inlineNode()          { /* Just a marker */ }
func (*LineBreak) WalkChildren(Visitor) { /* No children */ }

// --------------------------------------------------------------------------

// Code is an inline code span.
type Code struct {
	Text string
}

func (*Code) inlineNode()          { /* Just a marker */ }
func (*Code) WalkChildren(Visitor) { /* No children */ }

// HTML is raw inline HTML.
type HTML struct {
	Raw string
}

func (*HTML) inlineNode()          { /* Just a marker */ }
func (*HTML) WalkChildren(Visitor) { /* No children */ }

// --------------------------------------------------------------------------

// Emphasis marks its inlines as emphasized.
type Emphasis struct {
	Inlines InlineSlice
}

func (*Emphasis) inlineNode() { /* Just a marker */ }

// WalkChildren walks to the formatted text.
func (en *Emphasis) WalkChildren(v Visitor) { Walk(v, &en.Inlines) }

// Strong marks its inlines as strongly emphasized.
type Strong struct {
	Inlines InlineSlice
}

func (*Strong) inlineNode() { /* Just a marker */ }

// WalkChildren walks to the formatted text.
func (sn *Strong) WalkChildren(v Visitor) { Walk(v, &sn.Inlines) }

// Strikethrough marks its inlines as deleted.
type Strikethrough struct {
	Inlines InlineSlice
}

func (*Strikethrough) inlineNode() { /* Just a marker */ }

// WalkChildren walks to the formatted text.
func (sn *Strikethrough) WalkChildren(v Visitor) { Walk(v, &sn.Inlines) }

// --------------------------------------------------------------------------

// Link specifies a link to something.
type Link struct {
	Destination string // Empty, if the source had none.
	Inlines     InlineSlice
}

func (*Link) inlineNode() { /* Just a marker */ }

// WalkChildren walks to the link text.
func (ln *Link) WalkChildren(v Visitor) { Walk(v, &ln.Inlines) }

// Image specifies an embedded image.
type Image struct {
	Source  string // Empty, if the source had none.
	Inlines InlineSlice
}

func (*Image) inlineNode() { /* Just a marker */ }

// WalkChildren walks to the alternative text.
func (in *Image) WalkChildren(v Visitor) { Walk(v, &in.Inlines) }
