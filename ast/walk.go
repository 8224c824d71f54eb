//-----------------------------------------------------------------------------
// Copyright (c) 2021-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// Visitor is a visitor for walking the AST.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses the AST.
//
// Visit is called for node first. If it returns a non-nil visitor, the
// children are walked with that visitor, followed by a call of Visit(nil).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}
	node.WalkChildren(v)
	v.Visit(nil)
}

// VisitorFunc adapts a function to a Visitor that visits all nodes.
// The function is not called for the closing nil node.
type VisitorFunc func(Node)

// Visit calls the function.
func (vf VisitorFunc) Visit(node Node) Visitor {
	if node != nil {
		vf(node)
	}
	return vf
}
