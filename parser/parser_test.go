//-----------------------------------------------------------------------------
// Copyright (c) 2021-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package parser_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zettelstore.de/mdast/ast"
	"zettelstore.de/mdast/logger"
	"zettelstore.de/mdast/markup"
	"zettelstore.de/mdast/parser"
)

func para(words ...string) *ast.Paragraph {
	return ast.CreateParagraph(ast.CreateInlineSliceFromWords(words...)...)
}

func textPara(s string) *ast.Paragraph { return ast.CreateParagraph(ast.CreateText(s)) }

func TestPlainTextRoundTrip(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("Hello **world**")
	require.NoError(t, err)
	require.Len(t, bs, 1)
	exp := ast.BlockSlice{ast.CreateParagraph(
		ast.CreateText("Hello "),
		&ast.Strong{Inlines: ast.InlineSlice{ast.CreateText("world")}},
	)}
	assert.True(t, ast.EqualBlocks(exp, bs))
	assert.Equal(t, "Hello world", ast.PlainText(bs.FirstParagraphInlines()))
}

func TestTaskListClassification(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("- [ ] a\n- b\n")
	require.NoError(t, err)
	require.Len(t, bs, 1)
	tl, ok := bs[0].(*ast.TaskList)
	require.True(t, ok, "expected TaskList, but got %T", bs[0])
	require.Len(t, tl.Items, 2)
	assert.False(t, tl.Items[0].Completed)
	assert.False(t, tl.Items[1].Completed)
	assert.True(t, ast.EqualBlocks(ast.BlockSlice{textPara("a")}, tl.Items[0].Blocks))
	assert.True(t, ast.EqualBlocks(ast.BlockSlice{textPara("b")}, tl.Items[1].Blocks))
	assert.False(t, tl.Items[0].Source.IsZero())
	assert.NotEqual(t, tl.Items[0].Source, tl.Items[1].Source)
}

func TestTaskListCompleted(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("* [x] done\n* [X] also\n* [ ] open\n")
	require.NoError(t, err)
	tl := bs[0].(*ast.TaskList)
	completed := make([]bool, len(tl.Items))
	for i, item := range tl.Items {
		completed[i] = item.Completed
	}
	assert.Equal(t, []bool{true, true, false}, completed)
}

func TestBulletedList(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("- a\n- b\n")
	require.NoError(t, err)
	exp := ast.BlockSlice{&ast.BulletedList{
		Tight: true,
		Items: []ast.ListItem{ast.CreateListItem("a"), ast.CreateListItem("b")},
	}}
	assert.True(t, ast.EqualBlocks(exp, bs))
}

func TestOrderedListStart(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("3. foo\n4. bar")
	require.NoError(t, err)
	exp := ast.BlockSlice{&ast.NumberedList{
		Tight: true,
		Start: 3,
		Items: []ast.ListItem{ast.CreateListItem("foo"), ast.CreateListItem("bar")},
	}}
	assert.True(t, ast.EqualBlocks(exp, bs))

	bs, err = parser.ParseBlocks("1. one")
	require.NoError(t, err)
	assert.Equal(t, 1, bs[0].(*ast.NumberedList).Start)
}

func TestListSpacing(t *testing.T) {
	t.Parallel()
	const src = "- a\n\n- b\n"
	bs, err := parser.ParseBlocks(src)
	require.NoError(t, err)
	assert.True(t, bs[0].(*ast.BulletedList).Tight)

	cfg := parser.DefaultConfig()
	cfg.KeepListSpacing = true
	bs, err = parser.New(cfg).ParseBlocks(src)
	require.NoError(t, err)
	bl := bs[0].(*ast.BulletedList)
	assert.False(t, bl.Tight)
	assert.True(t, ast.EqualBlocks(ast.BlockSlice{textPara("a")}, bl.Items[0].Blocks))
}

func TestNestedBlocks(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("> # Title\n>\n> - x\n>   > y\n")
	require.NoError(t, err)
	exp := ast.BlockSlice{&ast.Blockquote{Blocks: ast.BlockSlice{
		ast.CreateHeading(1, ast.CreateText("Title")),
		&ast.BulletedList{Tight: true, Items: []ast.ListItem{{Blocks: ast.BlockSlice{
			textPara("x"),
			&ast.Blockquote{Blocks: ast.BlockSlice{textPara("y")}},
		}}}},
	}}}
	assert.True(t, ast.EqualBlocks(exp, bs))
}

func TestLeafBlocks(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("```swift\nlet x = 1\n```\n\n    code\n\n<p>hi</p>\n\n***\n")
	require.NoError(t, err)
	exp := ast.BlockSlice{
		&ast.CodeBlock{Info: "swift", HasInfo: true, Content: "let x = 1\n"},
		&ast.CodeBlock{Content: "code\n"},
		&ast.HTMLBlock{Raw: "<p>hi</p>\n"},
		&ast.ThematicBreak{},
	}
	assert.True(t, ast.EqualBlocks(exp, bs))
}

func TestInlines(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("*a* ~~b~~ `c` <i>d</i>\\\n[e](http://e) ![f](f.png)")
	require.NoError(t, err)
	exp := ast.BlockSlice{ast.CreateParagraph(
		&ast.Emphasis{Inlines: ast.InlineSlice{ast.CreateText("a")}},
		ast.CreateText(" "),
		&ast.Strikethrough{Inlines: ast.InlineSlice{ast.CreateText("b")}},
		ast.CreateText(" "),
		&ast.Code{Text: "c"},
		ast.CreateText(" "),
		&ast.HTML{Raw: "<i>"},
		ast.CreateText("d"),
		&ast.HTML{Raw: "</i>"},
		&ast.LineBreak{},
		&ast.Link{Destination: "http://e", Inlines: ast.InlineSlice{ast.CreateText("e")}},
		ast.CreateText(" "),
		&ast.Image{Source: "f.png", Inlines: ast.InlineSlice{ast.CreateText("f")}},
	)}
	assert.True(t, ast.EqualBlocks(exp, bs))
}

func TestLinkedImage(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("[![alt](a.png)](http://x)")
	require.NoError(t, err)
	in := bs.FirstParagraphInlines()
	require.Len(t, in, 1)
	desc, ok := ast.AsImage(in[0])
	require.True(t, ok)
	assert.Equal(t, ast.ImageDescriptor{
		Source: "a.png", HasSource: true, Alt: "alt", Destination: "http://x", HasDestination: true,
	}, desc)
}

func TestImageWithBlankSource(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("![pic](  )")
	require.NoError(t, err)
	in := bs.FirstParagraphInlines()
	require.Len(t, in, 1)
	desc, ok := ast.AsImage(in[0])
	require.True(t, ok)
	assert.Equal(t, ast.ImageDescriptor{Source: "", HasSource: true, Alt: "pic"}, desc)
}

func TestAutoLinks(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("<https://zettelstore.de> <me@example.org>")
	require.NoError(t, err)
	exp := ast.InlineSlice{
		&ast.Link{Destination: "https://zettelstore.de", Inlines: ast.InlineSlice{ast.CreateText("https://zettelstore.de")}},
		ast.CreateText(" "),
		&ast.Link{Destination: "mailto:me@example.org", Inlines: ast.InlineSlice{ast.CreateText("me@example.org")}},
	}
	assert.True(t, ast.EqualInlines(exp, bs.FirstParagraphInlines()))
}

func TestTableShape(t *testing.T) {
	t.Parallel()
	bs, err := parser.ParseBlocks("| a | b | c |\n|:--|:-:|---|\n| 1 | 2 |\n| 1 | 2 | 3 | 4 |\n")
	require.NoError(t, err)
	require.Len(t, bs, 1)
	tn, ok := bs[0].(*ast.Table)
	require.True(t, ok)
	assert.Equal(t, []ast.Alignment{ast.AlignLeft, ast.AlignCenter, ast.AlignNone}, tn.Alignments)
	assert.Len(t, tn.Header, 3)
	assert.Equal(t, "b", ast.PlainText(tn.Header[1]))
	require.Len(t, tn.Rows, 2)
	for _, row := range tn.Rows {
		assert.Len(t, row, 3)
	}
	assert.Empty(t, tn.Rows[0][2])
	assert.Equal(t, "3", ast.PlainText(tn.Rows[1][2]))
}

func TestMalformedTableIsNormalized(t *testing.T) {
	t.Parallel()
	doc := markup.New(markup.KindDocument,
		markup.NewTable([]markup.Alignment{markup.AlignRight, markup.AlignNone},
			markup.NewRow(false, "1"),
			markup.NewRow(true, "a", "b", "c"),
			markup.NewText("stray"),
		),
	)
	bs, err := parser.New(parser.DefaultConfig()).ConvertDocument(doc)
	require.NoError(t, err)
	tn := bs[0].(*ast.Table)
	assert.Equal(t, []ast.Alignment{ast.AlignRight, ast.AlignNone}, tn.Alignments)
	require.Len(t, tn.Header, 2)
	assert.Equal(t, "a", ast.PlainText(tn.Header[0]))
	require.Len(t, tn.Rows, 1)
	require.Len(t, tn.Rows[0], 2)
	assert.Equal(t, "1", ast.PlainText(tn.Rows[0][0]))
	assert.Empty(t, tn.Rows[0][1])
}

func TestTableWithoutHeader(t *testing.T) {
	t.Parallel()
	doc := markup.New(markup.KindDocument, markup.NewTable([]markup.Alignment{markup.AlignNone}))
	bs, err := parser.New(parser.DefaultConfig()).ConvertDocument(doc)
	require.NoError(t, err)
	tn := bs[0].(*ast.Table)
	assert.Len(t, tn.Header, 1)
	assert.Empty(t, tn.Rows)
}

func unknownDoc() *markup.Node {
	return markup.New(markup.KindDocument,
		textParaNode("before"),
		markup.NewUnknown("DefinitionList", textParaNode("inside")),
		markup.New(markup.KindParagraph,
			markup.NewText("x"),
			markup.NewUnknown("FootnoteLink"),
			markup.NewText("y"),
		),
		textParaNode("after"),
	)
}

func textParaNode(s string) *markup.Node {
	return markup.New(markup.KindParagraph, markup.NewText(s))
}

type recordingObserver struct {
	mx      sync.Mutex
	built   int
	failed  []string
	dropped []string
}

func (ro *recordingObserver) DocumentBuilt(time.Duration) {
	ro.mx.Lock()
	ro.built++
	ro.mx.Unlock()
}
func (ro *recordingObserver) BuildFailed(reason string) {
	ro.mx.Lock()
	ro.failed = append(ro.failed, reason)
	ro.mx.Unlock()
}
func (ro *recordingObserver) NodeDropped(kind string) {
	ro.mx.Lock()
	ro.dropped = append(ro.dropped, kind)
	ro.mx.Unlock()
}

func TestUnknownNodeDropped(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	var obs recordingObserver
	cfg := parser.DefaultConfig()
	cfg.Logger = logger.New(&buf, logger.DebugLevel, logger.FormatLogfmt)
	cfg.Observer = &obs

	bs, err := parser.New(cfg).ConvertDocument(unknownDoc())
	require.NoError(t, err)
	exp := ast.BlockSlice{
		textPara("before"),
		ast.CreateParagraph(ast.CreateText("x"), ast.CreateText("y")),
		textPara("after"),
	}
	assert.True(t, ast.EqualBlocks(exp, bs))
	assert.Equal(t, []string{"DefinitionList", "FootnoteLink"}, obs.dropped)
	assert.Equal(t, 1, obs.built)
	assert.Contains(t, buf.String(), "kind=DefinitionList")
	assert.Contains(t, buf.String(), "kind=FootnoteLink")
}

func TestParagraphOfDroppedInlinesIsKept(t *testing.T) {
	t.Parallel()
	doc := markup.New(markup.KindDocument,
		markup.New(markup.KindParagraph, markup.NewUnknown("FootnoteLink")),
		markup.New(markup.KindThematicBreak),
	)
	bs, err := parser.New(parser.DefaultConfig()).ConvertDocument(doc)
	require.NoError(t, err)
	require.Len(t, bs, 2)
	assert.True(t, ast.EqualBlocks(ast.BlockSlice{&ast.Paragraph{}, &ast.ThematicBreak{}}, bs))
}

func TestUnknownNodeFails(t *testing.T) {
	t.Parallel()
	var obs recordingObserver
	cfg := parser.DefaultConfig()
	cfg.UnknownNodes = parser.PolicyFail
	cfg.Observer = &obs

	doc := unknownDoc()
	doc.Children[1].Pos = markup.Position{Line: 3, Column: 1}
	bs, err := parser.New(cfg).ConvertDocument(doc)
	require.Error(t, err)
	assert.Nil(t, bs)
	assert.ErrorIs(t, err, parser.ErrUnknownNode)
	var une *parser.UnknownNodeError
	require.ErrorAs(t, err, &une)
	assert.Equal(t, "DefinitionList", une.Kind)
	assert.Equal(t, markup.Position{Line: 3, Column: 1}, une.Pos)
	assert.Equal(t, `unknown node kind "DefinitionList" at 3:1`, err.Error())
	assert.Equal(t, []string{"unknown_node"}, obs.failed)
}

func TestUnknownNodeFromMarkdown(t *testing.T) {
	t.Parallel()
	cfg := parser.DefaultConfig()
	cfg.Markdown.Footnote = true
	bs, err := parser.New(cfg).ParseBlocks("text[^1]\n\n[^1]: note\n")
	require.NoError(t, err)
	assert.True(t, ast.EqualBlocks(ast.BlockSlice{textPara("text")}, bs))

	cfg.UnknownNodes = parser.PolicyFail
	_, err = parser.New(cfg).ParseBlocks("text[^1]\n\n[^1]: note\n")
	var une *parser.UnknownNodeError
	require.ErrorAs(t, err, &une)
	assert.Equal(t, "FootnoteLink", une.Kind)
	assert.Equal(t, 1, une.Pos.Line)
}

func TestMisplacedNodes(t *testing.T) {
	t.Parallel()
	doc := markup.New(markup.KindDocument,
		markup.NewText("inline at block level"),
		markup.NewList(false, 0, markup.New(markup.KindParagraph), markup.NewItem(markup.CheckboxNone, textParaNode("ok"))),
	)
	bs, err := parser.New(parser.DefaultConfig()).ConvertDocument(doc)
	require.NoError(t, err)
	exp := ast.BlockSlice{&ast.BulletedList{Tight: true, Items: []ast.ListItem{ast.CreateListItem("ok")}}}
	assert.True(t, ast.EqualBlocks(exp, bs))
}

func TestDepthLimit(t *testing.T) {
	t.Parallel()
	var obs recordingObserver
	cfg := parser.DefaultConfig()
	cfg.MaxDepth = 10
	cfg.Observer = &obs
	p := parser.New(cfg)

	bs, err := p.ParseBlocks(strings.Repeat(">", 8) + " ok")
	require.NoError(t, err)
	assert.Len(t, bs, 1)

	bs, err = p.ParseBlocks(strings.Repeat(">", 20) + " deep")
	require.Error(t, err)
	assert.Nil(t, bs)
	assert.ErrorIs(t, err, parser.ErrDepthExceeded)
	var de *parser.DepthError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 10, de.Limit)
	assert.Equal(t, []string{"depth_exceeded"}, obs.failed)
}

func TestDefaultDepthLimit(t *testing.T) {
	t.Parallel()
	_, err := parser.ParseBlocks(strings.Repeat("> ", parser.DefaultMaxDepth+10) + "deep")
	assert.True(t, errors.Is(err, parser.ErrDepthExceeded))
}

func TestConvertInline(t *testing.T) {
	t.Parallel()
	p := parser.New(parser.DefaultConfig())
	in, err := p.ConvertInline(markup.NewLink("", markup.NewText("a"), markup.NewUnknown("Emoji")))
	require.NoError(t, err)
	assert.True(t, ast.Equal(&ast.Link{Inlines: ast.InlineSlice{ast.CreateText("a")}}, in))

	in, err = p.ConvertInline(markup.NewUnknown("Emoji"))
	assert.NoError(t, err)
	assert.Nil(t, in)

	in, err = p.ConvertInline(nil)
	assert.NoError(t, err)
	assert.Nil(t, in)
}

func TestConvertDocumentRoots(t *testing.T) {
	t.Parallel()
	p := parser.New(parser.DefaultConfig())
	bs, err := p.ConvertDocument(nil)
	require.NoError(t, err)
	assert.Empty(t, bs)

	bs, err = p.ConvertDocument(markup.NewHeading(9, markup.NewText("h")))
	require.NoError(t, err)
	assert.True(t, ast.EqualBlocks(ast.BlockSlice{ast.CreateHeading(6, ast.CreateText("h"))}, bs))
}

func TestDeterminism(t *testing.T) {
	t.Parallel()
	const src = "# T\n\n- [ ] a\n- [x] b\n\n| x |\n|---|\n| 1 |\n\n> q *e* **s**\n"
	first, err := parser.ParseBlocks(src)
	require.NoError(t, err)
	for range 5 {
		bs, err := parser.ParseBlocks(src)
		require.NoError(t, err)
		assert.True(t, ast.EqualBlocks(first, bs))
		assert.Equal(t, ast.HashBlocks(first), ast.HashBlocks(bs))
	}
}

func TestConcurrentUse(t *testing.T) {
	t.Parallel()
	p := parser.New(parser.DefaultConfig())
	exp, err := p.ParseBlocks("- [x] a\n- b\n")
	require.NoError(t, err)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			bs, err := p.ParseBlocks("- [x] a\n- b\n")
			assert.NoError(t, err)
			assert.True(t, ast.EqualBlocks(exp, bs))
		}()
	}
	wg.Wait()
}

func TestParsePolicy(t *testing.T) {
	t.Parallel()
	for _, p := range []parser.Policy{parser.PolicyDrop, parser.PolicyFail} {
		got, err := parser.ParsePolicy(p.String())
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := parser.ParsePolicy("ignore")
	assert.Error(t, err)
}

func TestNaughtyInput(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"",
		"\n\n\n",
		"\x00",
		"\r\n\r\n",
		"- [",
		"- [ ]",
		"* [x]\n",
		"1.\n2.",
		"| |\n|-|\n",
		"|a|\n|-|\n|b|c|d|",
		"```",
		"<div",
		"[a](",
		"![](",
		"**",
		"~~~~",
		"&#0; &#xFFFFFFFF; &bogus;",
		"\\",
		"\u202e\u0000\ufeff",
		"🏳️\u200d🌈 *emoji* 👨\u200d👩\u200d👧",
		"<script>alert(1)</script>",
		strings.Repeat("[", 500),
		strings.Repeat("*a ", 300),
		strings.Repeat("- ", 100) + "x",
	}
	p := parser.New(parser.DefaultConfig())
	for _, in := range inputs {
		bs, err := p.ParseBlocks(in)
		if err != nil {
			assert.ErrorIs(t, err, parser.ErrDepthExceeded, "input %q", in)
			continue
		}
		again, err := p.ParseBlocks(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, ast.EqualBlocks(bs, again), "input %q", in)
		ast.Walk(ast.VisitorFunc(func(node ast.Node) {
			if tn, ok := node.(*ast.Table); ok {
				assert.Len(t, tn.Header, len(tn.Alignments), "input %q", in)
				for _, row := range tn.Rows {
					assert.Len(t, row, len(tn.Alignments), "input %q", in)
				}
			}
		}), &bs)
	}
}
