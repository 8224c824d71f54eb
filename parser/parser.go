//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package parser builds abstract syntax trees from Markdown text.
//
// Markdown is first parsed into a generic markup tree, which is then
// converted into the closed set of block and inline nodes of package ast.
package parser

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"zettelstore.de/mdast/ast"
	"zettelstore.de/mdast/logger"
	"zettelstore.de/mdast/markup"
	"zettelstore.de/mdast/parser/markdown"
)

// Policy determines how nodes of an unknown kind are handled.
type Policy int

// Constants for Policy.
const (
	PolicyDrop Policy = iota // Omit the node, log it at debug level
	PolicyFail               // Abort the build with an *UnknownNodeError
)

func (p Policy) String() string {
	switch p {
	case PolicyDrop:
		return "drop"
	case PolicyFail:
		return "fail"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy returns the policy with the given name.
func ParsePolicy(s string) (Policy, error) {
	switch s {
	case "", "drop":
		return PolicyDrop, nil
	case "fail":
		return PolicyFail, nil
	}
	return PolicyDrop, fmt.Errorf("unknown node policy %q, expected \"drop\" or \"fail\"", s)
}

// DefaultMaxDepth is the default nesting limit of a markup tree.
const DefaultMaxDepth = 512

// Config specifies the behaviour of a Parser.
type Config struct {
	UnknownNodes Policy
	MaxDepth     int // Maximum nesting depth, a value <= 0 means DefaultMaxDepth.

	// KeepListSpacing stores the tight/loose flag of the Markdown parser in
	// lists. Otherwise every list is tight.
	KeepListSpacing bool

	Markdown markdown.Options
	Logger   *slog.Logger // nil means no logging
	Observer Observer     // nil means no observation
}

// DefaultConfig returns the configuration that is used by ParseBlocks.
func DefaultConfig() Config {
	return Config{
		UnknownNodes: PolicyDrop,
		MaxDepth:     DefaultMaxDepth,
		Markdown:     markdown.DefaultOptions(),
	}
}

// Parser converts Markdown text into abstract syntax trees. It is safe for
// concurrent use.
type Parser struct {
	md       *markdown.Parser
	policy   Policy
	maxDepth int
	spacing  bool
	logger   *slog.Logger
	observer Observer
}

// New creates a new parser.
func New(cfg Config) *Parser {
	p := &Parser{
		md:       markdown.New(cfg.Markdown),
		policy:   cfg.UnknownNodes,
		maxDepth: cfg.MaxDepth,
		spacing:  cfg.KeepListSpacing,
		logger:   cfg.Logger,
		observer: cfg.Observer,
	}
	if p.maxDepth <= 0 {
		p.maxDepth = DefaultMaxDepth
	}
	if p.logger == nil {
		p.logger = logger.Discard()
	}
	if p.observer == nil {
		p.observer = nopObserver{}
	}
	return p
}

var defaultParser = sync.OnceValue(func() *Parser { return New(DefaultConfig()) })

// ParseBlocks parses the Markdown text with the default configuration.
func ParseBlocks(src string) (ast.BlockSlice, error) {
	return defaultParser().ParseBlocks(src)
}

// ParseBlocks parses the Markdown text and returns its top-level blocks in
// document order.
//
// Either a complete tree is returned, or an error. Nodes of an unknown kind
// are missing from the tree, if the policy is PolicyDrop.
func (p *Parser) ParseBlocks(src string) (ast.BlockSlice, error) {
	return p.ConvertDocument(p.md.ParseString(src))
}

// ConvertDocument converts a markup tree into blocks. The root is typically
// of kind markup.KindDocument; any other root is converted as a single block.
func (p *Parser) ConvertDocument(doc *markup.Node) (ast.BlockSlice, error) {
	start := time.Now()
	if doc == nil {
		return ast.BlockSlice{}, nil
	}
	nodes := doc.Children
	if doc.Kind != markup.KindDocument {
		nodes = []*markup.Node{doc}
	}
	b := p.newBuilder()
	bs, err := b.blocks(nodes, 1)
	if err != nil {
		p.observer.BuildFailed(failureReason(err))
		return nil, err
	}
	p.observer.DocumentBuilt(time.Since(start))
	return bs, nil
}

// ConvertInline converts one markup node into an inline. A nil inline
// without an error means that the node was dropped.
func (p *Parser) ConvertInline(n *markup.Node) (ast.Inline, error) {
	if n == nil {
		return nil, nil
	}
	return p.newBuilder().inline(n, 1)
}

func (p *Parser) newBuilder() *builder {
	return &builder{
		policy:   p.policy,
		maxDepth: p.maxDepth,
		spacing:  p.spacing,
		logger:   p.logger,
		observer: p.observer,
	}
}
