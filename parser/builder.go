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
	"log/slog"

	"zettelstore.de/mdast/ast"
	"zettelstore.de/mdast/markup"
)

// builder holds the state of a single build.
type builder struct {
	policy   Policy
	maxDepth int
	spacing  bool
	logger   *slog.Logger
	observer Observer
}

// unknown applies the policy to a node that cannot be converted. If the
// node is dropped, nil is returned.
func (b *builder) unknown(n *markup.Node) error {
	kind := n.KindName()
	if b.policy == PolicyFail {
		return &UnknownNodeError{Kind: kind, Pos: n.Pos}
	}
	b.logger.Debug("drop unknown node", "kind", kind, "line", n.Pos.Line, "column", n.Pos.Column)
	b.observer.NodeDropped(kind)
	return nil
}

func (b *builder) checkDepth(n *markup.Node, depth int) error {
	if depth > b.maxDepth {
		return &DepthError{Limit: b.maxDepth, Pos: n.Pos}
	}
	return nil
}

func (b *builder) blocks(nodes []*markup.Node, depth int) (ast.BlockSlice, error) {
	result := make(ast.BlockSlice, 0, len(nodes))
	for _, n := range nodes {
		bn, err := b.block(n, depth)
		if err != nil {
			return nil, err
		}
		if bn != nil {
			result = append(result, bn)
		}
	}
	return result, nil
}

func (b *builder) block(n *markup.Node, depth int) (ast.Block, error) {
	if err := b.checkDepth(n, depth); err != nil {
		return nil, err
	}
	switch n.Kind {
	case markup.KindBlockquote:
		bs, err := b.blocks(n.Children, depth+1)
		if err != nil {
			return nil, err
		}
		return &ast.Blockquote{Blocks: bs}, nil
	case markup.KindList:
		return b.list(n, depth)
	case markup.KindParagraph:
		return b.paragraph(n, depth)
	case markup.KindHeading:
		is, err := b.inlines(n.Children, depth+1)
		if err != nil {
			return nil, err
		}
		return &ast.Heading{Level: min(max(n.Level, 1), 6), Inlines: is}, nil
	case markup.KindCodeBlock:
		return &ast.CodeBlock{Info: n.Info, HasInfo: n.HasInfo, Content: n.Literal}, nil
	case markup.KindHTMLBlock:
		return &ast.HTMLBlock{Raw: n.Literal}, nil
	case markup.KindTable:
		return b.table(n, depth)
	case markup.KindThematicBreak:
		return &ast.ThematicBreak{}, nil
	}
	return nil, b.unknown(n)
}

// paragraph keeps the paragraph, even if all its inlines were dropped.
func (b *builder) paragraph(n *markup.Node, depth int) (ast.Block, error) {
	is, err := b.inlines(n.Children, depth+1)
	if err != nil {
		return nil, err
	}
	return &ast.Paragraph{Inlines: is}, nil
}

// listItems converts the items of a list. Children that are no list items
// are handled by the policy and missing from the result.
func (b *builder) listItems(n *markup.Node, depth int) ([]*markup.Node, []ast.BlockSlice, error) {
	items := make([]*markup.Node, 0, len(n.Children))
	blocks := make([]ast.BlockSlice, 0, len(n.Children))
	for _, item := range n.Children {
		if item.Kind != markup.KindListItem {
			if err := b.unknown(item); err != nil {
				return nil, nil, err
			}
			continue
		}
		if err := b.checkDepth(item, depth+1); err != nil {
			return nil, nil, err
		}
		bs, err := b.blocks(item.Children, depth+2)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
		blocks = append(blocks, bs)
	}
	return items, blocks, nil
}

func (b *builder) list(n *markup.Node, depth int) (ast.Block, error) {
	items, blocks, err := b.listItems(n, depth)
	if err != nil {
		return nil, err
	}
	tight := true
	if b.spacing {
		tight = n.Tight
	}

	if n.Ordered {
		return &ast.NumberedList{Tight: tight, Start: n.Start, Items: makeListItems(blocks)}, nil
	}
	for _, item := range items {
		if item.Checkbox != markup.CheckboxNone {
			return &ast.TaskList{Tight: tight, Items: makeTaskItems(items, blocks)}, nil
		}
	}
	return &ast.BulletedList{Tight: tight, Items: makeListItems(blocks)}, nil
}

func makeListItems(blocks []ast.BlockSlice) []ast.ListItem {
	result := make([]ast.ListItem, len(blocks))
	for i, bs := range blocks {
		result[i].Blocks = bs
	}
	return result
}

func makeTaskItems(items []*markup.Node, blocks []ast.BlockSlice) []ast.TaskListItem {
	result := make([]ast.TaskListItem, len(items))
	for i, item := range items {
		result[i] = ast.TaskListItem{
			Completed: item.Checkbox == markup.CheckboxChecked,
			Blocks:    blocks[i],
		}
		if len(item.Raw) > 0 {
			result[i].Source = ast.NewSourceID(item.Raw)
		}
	}
	return result
}

func (b *builder) table(n *markup.Node, depth int) (ast.Block, error) {
	cols := len(n.Alignments)
	tn := &ast.Table{Alignments: make([]ast.Alignment, cols)}
	for i, al := range n.Alignments {
		tn.Alignments[i] = alignment(al)
	}
	hasHeader := false
	for _, rn := range n.Children {
		if rn.Kind != markup.KindTableRow {
			if err := b.unknown(rn); err != nil {
				return nil, err
			}
			continue
		}
		if err := b.checkDepth(rn, depth+1); err != nil {
			return nil, err
		}
		row, err := b.tableRow(rn, cols, depth+1)
		if err != nil {
			return nil, err
		}
		if rn.Header && !hasHeader {
			tn.Header, hasHeader = row, true
		} else {
			tn.Rows = append(tn.Rows, row)
		}
	}
	if !hasHeader {
		tn.Header = make(ast.TableRow, cols)
	}
	return tn, nil
}

// tableRow converts a row into exactly cols cells. Missing cells are
// empty, superfluous cells are ignored.
func (b *builder) tableRow(rn *markup.Node, cols, depth int) (ast.TableRow, error) {
	row := make(ast.TableRow, 0, cols)
	for _, cn := range rn.Children {
		if cn.Kind != markup.KindTableCell {
			if err := b.unknown(cn); err != nil {
				return nil, err
			}
			continue
		}
		if len(row) >= cols {
			break
		}
		if err := b.checkDepth(cn, depth+1); err != nil {
			return nil, err
		}
		is, err := b.inlines(cn.Children, depth+2)
		if err != nil {
			return nil, err
		}
		row = append(row, is)
	}
	for len(row) < cols {
		row = append(row, nil)
	}
	return row, nil
}

func alignment(al markup.Alignment) ast.Alignment {
	switch al {
	case markup.AlignLeft:
		return ast.AlignLeft
	case markup.AlignCenter:
		return ast.AlignCenter
	case markup.AlignRight:
		return ast.AlignRight
	}
	return ast.AlignNone
}
