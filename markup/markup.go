//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package markup defines the generic markup tree that a Markdown parser
// hands off to the AST builder.
//
// The tree uses a closed set of kinds. Everything a parser adapter cannot
// classify is reported as KindUnknown, together with its foreign name.
package markup

import "fmt"

// Kind discriminates the nodes of a markup tree.
type Kind int

// Constants for Kind.
const (
	KindUnknown Kind = iota // Foreign node, Name holds its kind name
	KindDocument

	// Block kinds
	KindBlockquote
	KindList     // Ordered, Start, Tight
	KindListItem // Checkbox, Raw
	KindParagraph
	KindHeading   // Level
	KindCodeBlock // Info, HasInfo, Literal
	KindHTMLBlock // Literal
	KindTable     // Alignments
	KindTableRow  // Header
	KindTableCell
	KindThematicBreak

	// Inline kinds
	KindText // Literal
	KindSoftBreak
	KindLineBreak
	KindCode // Literal
	KindHTML // Literal
	KindEmphasis
	KindStrong
	KindStrikethrough
	KindLink  // Destination, HasDestination
	KindImage // Destination, HasDestination
)

var kindNames = [...]string{
	KindUnknown:       "unknown",
	KindDocument:      "document",
	KindBlockquote:    "blockquote",
	KindList:          "list",
	KindListItem:      "list-item",
	KindParagraph:     "paragraph",
	KindHeading:       "heading",
	KindCodeBlock:     "code-block",
	KindHTMLBlock:     "html-block",
	KindTable:         "table",
	KindTableRow:      "table-row",
	KindTableCell:     "table-cell",
	KindThematicBreak: "thematic-break",
	KindText:          "text",
	KindSoftBreak:     "soft-break",
	KindLineBreak:     "line-break",
	KindCode:          "code",
	KindHTML:          "html",
	KindEmphasis:      "emphasis",
	KindStrong:        "strong",
	KindStrikethrough: "strikethrough",
	KindLink:          "link",
	KindImage:         "image",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsBlock returns true, if nodes of this kind are block nodes.
func (k Kind) IsBlock() bool { return KindBlockquote <= k && k <= KindThematicBreak }

// IsInline returns true, if nodes of this kind are inline nodes.
func (k Kind) IsInline() bool { return KindText <= k && k <= KindImage }

// Checkbox is the state of a list item checkbox.
type Checkbox int

// Constants for Checkbox.
const (
	CheckboxNone Checkbox = iota
	CheckboxUnchecked
	CheckboxChecked
)

// Alignment is the declared alignment of a table column.
type Alignment int

// Constants for Alignment.
const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Position is a location in the source text. Line and Column start with 1;
// the zero Position means "unknown".
type Position struct {
	Line   int
	Column int
}

// IsValid returns true, if the position is known.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is one node of a markup tree. Only the fields documented for its
// Kind are meaningful.
type Node struct {
	Kind     Kind
	Name     string // Foreign kind name, for KindUnknown
	Pos      Position
	Children []*Node

	Literal string // Text, code, or raw HTML content
	Raw     []byte // Raw source span of list items

	Level int // Heading level

	Info    string // Info string of a fenced code block
	HasInfo bool

	Ordered bool
	Start   int
	Tight   bool

	Checkbox Checkbox

	Destination    string
	HasDestination bool

	Alignments []Alignment
	Header     bool
}

// KindName returns the name of the node's kind. For unknown nodes it is the
// foreign name.
func (n *Node) KindName() string {
	if n.Kind == KindUnknown && n.Name != "" {
		return n.Name
	}
	return n.Kind.String()
}

// Append adds the nodes as children and returns the node.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Depth returns the maximum nesting depth of the tree, the node itself
// counting as 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	type entry struct {
		node  *Node
		depth int
	}
	result := 0
	stack := []entry{{n, 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		result = max(result, e.depth)
		for _, child := range e.node.Children {
			stack = append(stack, entry{child, e.depth + 1})
		}
	}
	return result
}
