//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package markdown parses Markdown text with goldmark and hands off the
// result as a generic markup tree.
//
// This is the only package that knows about goldmark node types.
package markdown

import (
	"bytes"

	gm "github.com/yuin/goldmark"
	gmAst "github.com/yuin/goldmark/ast"
	gmExt "github.com/yuin/goldmark/extension"
	gmExtAst "github.com/yuin/goldmark/extension/ast"
	gmText "github.com/yuin/goldmark/text"

	"zettelstore.de/mdast/markup"
)

// Options select the goldmark extensions that are enabled.
type Options struct {
	Table          bool
	Strikethrough  bool
	TaskList       bool
	Linkify        bool
	Footnote       bool
	DefinitionList bool
	Typographer    bool
}

// DefaultOptions returns the options that support all node kinds of the
// markup tree: tables, strikethrough, and task lists.
func DefaultOptions() Options {
	return Options{Table: true, Strikethrough: true, TaskList: true}
}

func (o Options) extensions() []gm.Extender {
	var result []gm.Extender
	if o.Table {
		result = append(result, gmExt.Table)
	}
	if o.Strikethrough {
		result = append(result, gmExt.Strikethrough)
	}
	if o.TaskList {
		result = append(result, gmExt.TaskList)
	}
	if o.Linkify {
		result = append(result, gmExt.Linkify)
	}
	if o.Footnote {
		result = append(result, gmExt.Footnote)
	}
	if o.DefinitionList {
		result = append(result, gmExt.DefinitionList)
	}
	if o.Typographer {
		result = append(result, gmExt.Typographer)
	}
	return result
}

// Parser parses Markdown text into markup trees. It is safe for concurrent
// use.
type Parser struct {
	md gm.Markdown
}

// New creates a parser with the given options.
func New(opts Options) *Parser {
	return &Parser{md: gm.New(gm.WithExtensions(opts.extensions()...))}
}

// Parse the source text into a markup tree of kind KindDocument.
func (p *Parser) Parse(src []byte) *markup.Node {
	doc := p.md.Parser().Parse(gmText.NewReader(src))
	a := adapter{source: src, lines: lineStarts(src)}
	return a.convertDocument(doc)
}

// ParseString is like Parse, but for a string.
func (p *Parser) ParseString(src string) *markup.Node { return p.Parse([]byte(src)) }

type adapter struct {
	source []byte
	lines  []int
}

// convertDocument walks the goldmark tree once in document order, without
// recursion, because the nesting depth of the source text is not bounded.
func (a *adapter) convertDocument(doc gmAst.Node) *markup.Node {
	root := &markup.Node{Kind: markup.KindDocument, Pos: markup.Position{Line: 1, Column: 1}}
	w := walker{adapter: a, stack: []openNode{{target: root, span: noSpan}}, pending: 1}
	for node := doc.FirstChild(); node != nil; {
		w.enter(node)
		if child := node.FirstChild(); child != nil {
			node = child
			continue
		}
		node = w.leave(node, doc)
	}
	return root
}

// appendChild adds the node to the parent, merging adjacent text.
func appendChild(parent, n *markup.Node) {
	if n.Kind == markup.KindText {
		if l := len(parent.Children); l > 0 {
			if last := parent.Children[l-1]; last.Kind == markup.KindText {
				last.Literal += n.Literal
				return
			}
		}
	}
	parent.Children = append(parent.Children, n)
}

// convert one goldmark node into zero or more markup nodes. If the children
// of the goldmark node must be converted too, the node that receives them
// is returned as well.
func (a *adapter) convert(node gmAst.Node) ([]*markup.Node, *markup.Node) {
	switch n := node.(type) {
	case *gmAst.Paragraph, *gmAst.TextBlock:
		return a.container(markup.KindParagraph)
	case *gmAst.Heading:
		mn := a.newNode(markup.KindHeading)
		mn.Level = n.Level
		return []*markup.Node{mn}, mn
	case *gmAst.ThematicBreak:
		return a.leaf(markup.KindThematicBreak, "")
	case *gmAst.CodeBlock:
		return a.leaf(markup.KindCodeBlock, a.rawText(node))
	case *gmAst.FencedCodeBlock:
		mn := a.newNode(markup.KindCodeBlock)
		mn.Literal = a.rawText(node)
		if lang := n.Language(a.source); len(lang) > 0 {
			mn.Info, mn.HasInfo = cleanText(lang, true), true
		}
		return []*markup.Node{mn}, nil
	case *gmAst.HTMLBlock:
		return a.leaf(markup.KindHTMLBlock, a.htmlBlock(n))
	case *gmAst.Blockquote:
		return a.container(markup.KindBlockquote)
	case *gmAst.List:
		mn := a.newNode(markup.KindList)
		mn.Ordered, mn.Start, mn.Tight = n.IsOrdered(), n.Start, n.IsTight
		return []*markup.Node{mn}, mn
	case *gmAst.ListItem:
		mn := a.newNode(markup.KindListItem)
		mn.Checkbox = checkbox(n)
		return []*markup.Node{mn}, mn
	case *gmExtAst.Table:
		mn := a.newNode(markup.KindTable)
		mn.Alignments = make([]markup.Alignment, len(n.Alignments))
		for i, al := range n.Alignments {
			mn.Alignments[i] = alignment(al)
		}
		return []*markup.Node{mn}, mn
	case *gmExtAst.TableHeader:
		mn := a.newNode(markup.KindTableRow)
		mn.Header = true
		return []*markup.Node{mn}, mn
	case *gmExtAst.TableRow:
		return a.container(markup.KindTableRow)
	case *gmExtAst.TableCell:
		return a.container(markup.KindTableCell)

	case *gmAst.Text:
		return a.text(n), nil
	case *gmAst.String:
		if n.IsRaw() {
			return a.leaf(markup.KindText, string(n.Value))
		}
		return a.leaf(markup.KindText, cleanText(n.Value, false))
	case *gmAst.CodeSpan:
		return a.leaf(markup.KindCode, a.codeSpan(n))
	case *gmAst.Emphasis:
		if n.Level >= 2 {
			return a.container(markup.KindStrong)
		}
		return a.container(markup.KindEmphasis)
	case *gmExtAst.Strikethrough:
		return a.container(markup.KindStrikethrough)
	case *gmAst.Link:
		mn := a.newNode(markup.KindLink)
		mn.Destination, mn.HasDestination = cleanText(n.Destination, true), len(n.Destination) > 0
		return []*markup.Node{mn}, mn
	case *gmAst.Image:
		mn := a.newNode(markup.KindImage)
		mn.Destination, mn.HasDestination = cleanText(n.Destination, true), len(n.Destination) > 0
		return []*markup.Node{mn}, mn
	case *gmAst.AutoLink:
		return []*markup.Node{a.autoLink(n)}, nil
	case *gmAst.RawHTML:
		return a.leaf(markup.KindHTML, a.segments(n.Segments))
	case *gmExtAst.TaskCheckBox:
		// Already consumed by the enclosing list item.
		return nil, nil
	}
	mn := a.newNode(markup.KindUnknown)
	mn.Name = node.Kind().String()
	return []*markup.Node{mn}, mn
}

// newNode creates a markup node. Its position is set by the walker.
func (*adapter) newNode(kind markup.Kind) *markup.Node { return &markup.Node{Kind: kind} }

func (a *adapter) container(kind markup.Kind) ([]*markup.Node, *markup.Node) {
	mn := a.newNode(kind)
	return []*markup.Node{mn}, mn
}

func (a *adapter) leaf(kind markup.Kind, literal string) ([]*markup.Node, *markup.Node) {
	mn := a.newNode(kind)
	mn.Literal = literal
	return []*markup.Node{mn}, nil
}

func (a *adapter) text(node *gmAst.Text) []*markup.Node {
	var result []*markup.Node
	value := node.Segment.Value(a.source)
	if len(value) > 0 {
		mn := a.newNode(markup.KindText)
		if node.IsRaw() {
			mn.Literal = string(value)
		} else {
			mn.Literal = cleanText(value, true)
		}
		result = append(result, mn)
	}
	if node.HardLineBreak() {
		result = append(result, a.newNode(markup.KindLineBreak))
	} else if node.SoftLineBreak() {
		result = append(result, a.newNode(markup.KindSoftBreak))
	}
	return result
}

func (a *adapter) codeSpan(node *gmAst.CodeSpan) string {
	var buf bytes.Buffer
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *gmAst.Text:
			buf.Write(n.Segment.Value(a.source))
		case *gmAst.String:
			buf.Write(n.Value)
		}
	}
	return cleanCodeSpan(buf.String())
}

func (a *adapter) autoLink(node *gmAst.AutoLink) *markup.Node {
	url := node.URL(a.source)
	label := node.Label(a.source)
	if len(label) == 0 {
		label = url
	}
	if node.AutoLinkType == gmAst.AutoLinkEmail &&
		!bytes.HasPrefix(bytes.ToLower(url), []byte("mailto:")) {
		url = append([]byte("mailto:"), url...)
	}
	mn := a.newNode(markup.KindLink)
	mn.Destination, mn.HasDestination = string(url), true
	mn.Children = []*markup.Node{{Kind: markup.KindText, Literal: string(label)}}
	return mn
}

func checkbox(item *gmAst.ListItem) markup.Checkbox {
	first := item.FirstChild()
	if first == nil {
		return markup.CheckboxNone
	}
	if cb, ok := first.FirstChild().(*gmExtAst.TaskCheckBox); ok {
		if cb.IsChecked {
			return markup.CheckboxChecked
		}
		return markup.CheckboxUnchecked
	}
	return markup.CheckboxNone
}

func alignment(al gmExtAst.Alignment) markup.Alignment {
	switch al {
	case gmExtAst.AlignLeft:
		return markup.AlignLeft
	case gmExtAst.AlignCenter:
		return markup.AlignCenter
	case gmExtAst.AlignRight:
		return markup.AlignRight
	}
	return markup.AlignNone
}
