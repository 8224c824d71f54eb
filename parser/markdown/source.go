//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package markdown

import (
	"bytes"
	"sort"
	"strings"

	gmAst "github.com/yuin/goldmark/ast"
	gmText "github.com/yuin/goldmark/text"
	gmUtil "github.com/yuin/goldmark/util"

	"zettelstore.de/mdast/markup"
)

// lineStarts returns the byte offsets of all line beginnings.
func lineStarts(src []byte) []int {
	result := []int{0}
	for i, b := range src {
		if b == '\n' {
			result = append(result, i+1)
		}
	}
	return result
}

func (a *adapter) offsetPosition(offset int) markup.Position {
	line := sort.Search(len(a.lines), func(i int) bool { return a.lines[i] > offset }) - 1
	if line < 0 {
		return markup.Position{}
	}
	return markup.Position{Line: line + 1, Column: offset - a.lines[line] + 1}
}

// walker converts a goldmark tree in document order.
//
// The position of a markup node is the start of the first text in its
// goldmark subtree. Nodes without any text, e.g. footnote links, are
// positioned after the text that precedes them.
type walker struct {
	*adapter
	stack   []openNode // path from the document to the current node
	pending int        // stack entries from this index on have no position yet
	last    int        // offset after the most recent text
}

// openNode is a goldmark node whose subtree is walked.
type openNode struct {
	target  *markup.Node   // receives converted children, nil if they are skipped
	created []*markup.Node // markup nodes that wait for the position
	item    *markup.Node   // list item that receives the raw source span
	span    span           // source covered by the blocks of the subtree
}

func (w *walker) enter(node gmAst.Node) {
	e := openNode{span: noSpan}
	if target := w.stack[len(w.stack)-1].target; target != nil {
		nodes, container := w.convert(node)
		for _, n := range nodes {
			appendChild(target, n)
			e.created = append(e.created, n)
			e.created = append(e.created, n.Children...)
		}
		e.target = container
		if _, ok := node.(*gmAst.ListItem); ok && len(nodes) > 0 {
			e.item = nodes[0]
		}
	}
	if node.Type() == gmAst.TypeBlock {
		e.span.includeBlock(node)
	}
	w.stack = append(w.stack, e)

	if start, stop, ok := textOffsets(node); ok {
		pos := w.offsetPosition(start)
		for i := w.pending; i < len(w.stack); i++ {
			w.stack[i].setPos(pos)
		}
		w.pending = len(w.stack)
		w.last = stop
	}
}

// leave exits the node and all its ancestors without a next sibling. It
// returns the next node to enter, or nil at the end of the document.
func (w *walker) leave(node, doc gmAst.Node) gmAst.Node {
	for node != doc {
		w.exit()
		if next := node.NextSibling(); next != nil {
			return next
		}
		node = node.Parent()
	}
	return nil
}

func (w *walker) exit() {
	i := len(w.stack) - 1
	e := w.stack[i]
	if i >= w.pending {
		e.setPos(w.offsetPosition(w.last))
	}
	w.pending = min(w.pending, i)
	if e.item != nil {
		e.item.Raw = w.raw(e.span)
	}
	w.stack = w.stack[:i]
	w.stack[i-1].span.merge(e.span)
}

func (e *openNode) setPos(pos markup.Position) {
	for _, n := range e.created {
		n.Pos = pos
	}
	e.created = nil
}

// textOffsets returns the source range of the text of the node itself.
func textOffsets(node gmAst.Node) (int, int, bool) {
	switch n := node.(type) {
	case *gmAst.Text:
		return n.Segment.Start, n.Segment.Stop, true
	case *gmAst.RawHTML:
		if l := n.Segments.Len(); l > 0 {
			return n.Segments.At(0).Start, n.Segments.At(l - 1).Stop, true
		}
		return 0, 0, false
	}
	if node.Type() == gmAst.TypeBlock {
		if lines := node.Lines(); lines != nil && lines.Len() > 0 {
			return lines.At(0).Start, lines.At(lines.Len() - 1).Stop, true
		}
	}
	return 0, 0, false
}

// span is a range of source bytes. A negative start denotes an empty span.
type span struct{ start, stop int }

var noSpan = span{-1, -1}

func (sp *span) include(start, stop int) {
	if sp.start < 0 || start < sp.start {
		sp.start = start
	}
	if stop > sp.stop {
		sp.stop = stop
	}
}

func (sp *span) merge(other span) {
	if other.start >= 0 {
		sp.include(other.start, other.stop)
	}
}

func (sp *span) includeBlock(node gmAst.Node) {
	if lines := node.Lines(); lines != nil {
		for i := range lines.Len() {
			seg := lines.At(i)
			sp.include(seg.Start, seg.Stop)
		}
	}
	if hb, ok := node.(*gmAst.HTMLBlock); ok && hb.HasClosure() {
		sp.include(hb.ClosureLine.Start, hb.ClosureLine.Stop)
	}
}

// raw returns the source text of the span without trailing line endings.
func (a *adapter) raw(sp span) []byte {
	if sp.start < 0 || sp.stop > len(a.source) {
		return nil
	}
	return bytes.TrimRight(a.source[sp.start:sp.stop], "\r\n")
}

// rawText returns the lines of a code block verbatim.
func (a *adapter) rawText(node gmAst.Node) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := range lines.Len() {
		seg := lines.At(i)
		sb.Write(seg.Value(a.source))
	}
	return sb.String()
}

func (a *adapter) htmlBlock(node *gmAst.HTMLBlock) string {
	raw := a.rawText(node)
	if node.HasClosure() {
		raw += string(node.ClosureLine.Value(a.source))
	}
	return raw
}

func (a *adapter) segments(segs *gmText.Segments) string {
	var sb strings.Builder
	for i := range segs.Len() {
		seg := segs.At(i)
		sb.Write(seg.Value(a.source))
	}
	return sb.String()
}

// cleanText removes backslashes before punctuation and resolves entity
// references. An escaped ampersand does not start an entity.
func cleanText(text []byte, cleanBS bool) string {
	if bytes.IndexByte(text, '&') < 0 && (!cleanBS || bytes.IndexByte(text, '\\') < 0) {
		return string(text)
	}
	var buf bytes.Buffer
	buf.Grow(len(text))
	for pos := 0; pos < len(text); pos++ {
		ch := text[pos]
		if cleanBS && ch == '\\' && pos < len(text)-1 && gmUtil.IsPunct(text[pos+1]) {
			buf.WriteByte(text[pos+1])
			pos++
			continue
		}
		if ch == '&' {
			if end := entityEnd(text[pos:]); end > 0 {
				entity := text[pos : pos+end]
				resolved := gmUtil.ResolveEntityNames(gmUtil.ResolveNumericReferences(entity))
				if !bytes.Equal(resolved, entity) {
					buf.Write(resolved)
					pos += end - 1
					continue
				}
			}
		}
		buf.WriteByte(ch)
	}
	return buf.String()
}

// entityEnd returns the length of a possible entity reference at the start
// of text, or 0.
func entityEnd(text []byte) int {
	const maxEntityLength = 32
	for i := 1; i < len(text) && i < maxEntityLength; i++ {
		switch ch := text[i]; {
		case ch == ';':
			if i > 1 {
				return i + 1
			}
			return 0
		case ch == '#' && i == 1:
		case 'a' <= ch && ch <= 'z', 'A' <= ch && ch <= 'Z', '0' <= ch && ch <= '9':
		default:
			return 0
		}
	}
	return 0
}

// cleanCodeSpan turns line endings into spaces.
func cleanCodeSpan(text string) string {
	if text == "" {
		return ""
	}
	lastPos := 0
	var sb strings.Builder
	for pos, ch := range text {
		if ch == '\n' {
			sb.WriteString(text[lastPos:pos])
			if pos < len(text)-1 {
				sb.WriteByte(' ')
			}
			lastPos = pos + 1
		}
	}
	if lastPos == 0 {
		return text
	}
	sb.WriteString(text[lastPos:])
	return sb.String()
}
