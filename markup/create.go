//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package markup

// Constructors for hand-built markup trees, mostly used in tests and by
// adapters.

// New creates a node of the given kind with the given children.
func New(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

// NewUnknown creates a node of a foreign kind.
func NewUnknown(name string, children ...*Node) *Node {
	return &Node{Kind: KindUnknown, Name: name, Children: children}
}

// NewText creates a text node.
func NewText(s string) *Node { return &Node{Kind: KindText, Literal: s} }

// NewHeading creates a heading node.
func NewHeading(level int, children ...*Node) *Node {
	return &Node{Kind: KindHeading, Level: level, Children: children}
}

// NewList creates a list node. Start is only used for ordered lists.
func NewList(ordered bool, start int, items ...*Node) *Node {
	return &Node{Kind: KindList, Ordered: ordered, Start: start, Tight: true, Children: items}
}

// NewItem creates a list item with the given checkbox state.
func NewItem(cb Checkbox, children ...*Node) *Node {
	return &Node{Kind: KindListItem, Checkbox: cb, Children: children}
}

// NewLink creates a link node.
func NewLink(dest string, children ...*Node) *Node {
	return &Node{Kind: KindLink, Destination: dest, HasDestination: true, Children: children}
}

// NewImage creates an image node.
func NewImage(src string, children ...*Node) *Node {
	return &Node{Kind: KindImage, Destination: src, HasDestination: true, Children: children}
}

// NewTable creates a table node. The first row should be a header row.
func NewTable(aligns []Alignment, rows ...*Node) *Node {
	return &Node{Kind: KindTable, Alignments: aligns, Children: rows}
}

// NewRow creates a table row of cells with the given texts.
func NewRow(header bool, cells ...string) *Node {
	row := &Node{Kind: KindTableRow, Header: header}
	for _, c := range cells {
		row.Children = append(row.Children, New(KindTableCell, NewText(c)))
	}
	return row
}
