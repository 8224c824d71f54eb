//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package parser

import (
	"zettelstore.de/mdast/ast"
	"zettelstore.de/mdast/markup"
)

func (b *builder) inlines(nodes []*markup.Node, depth int) (ast.InlineSlice, error) {
	result := make(ast.InlineSlice, 0, len(nodes))
	for _, n := range nodes {
		in, err := b.inline(n, depth)
		if err != nil {
			return nil, err
		}
		if in != nil {
			result = append(result, in)
		}
	}
	return result, nil
}

func (b *builder) inline(n *markup.Node, depth int) (ast.Inline, error) {
	if err := b.checkDepth(n, depth); err != nil {
		return nil, err
	}
	switch n.Kind {
	case markup.KindText:
		return &ast.Text{Text: n.Literal}, nil
	case markup.KindSoftBreak:
		return &ast.SoftBreak{}, nil
	case markup.KindLineBreak:
		return &ast.LineBreak{}, nil
	case markup.KindCode:
		return &ast.Code{Text: n.Literal}, nil
	case markup.KindHTML:
		return &ast.HTML{Raw: n.Literal}, nil
	case markup.KindEmphasis, markup.KindStrong, markup.KindStrikethrough, markup.KindLink, markup.KindImage:
		return b.container(n, depth)
	}
	return nil, b.unknown(n)
}

// container converts a node with inline children. Children that are
// dropped are missing from the result.
func (b *builder) container(n *markup.Node, depth int) (ast.Inline, error) {
	is, err := b.inlines(n.Children, depth+1)
	if err != nil {
		return nil, err
	}
	switch n.Kind {
	case markup.KindEmphasis:
		return &ast.Emphasis{Inlines: is}, nil
	case markup.KindStrong:
		return &ast.Strong{Inlines: is}, nil
	case markup.KindStrikethrough:
		return &ast.Strikethrough{Inlines: is}, nil
	case markup.KindLink:
		return &ast.Link{Destination: n.Destination, Inlines: is}, nil
	default: // markup.KindImage
		return &ast.Image{Source: n.Destination, Inlines: is}, nil
	}
}
