//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package parser

import (
	"errors"
	"fmt"

	"zettelstore.de/mdast/markup"
)

// Errors returned by the builder, to be used with errors.Is.
var (
	ErrUnknownNode   = errors.New("unknown node kind")
	ErrDepthExceeded = errors.New("nesting depth exceeded")
)

// UnknownNodeError is returned for a node of an unknown kind, if the policy
// is PolicyFail.
type UnknownNodeError struct {
	Kind string
	Pos  markup.Position
}

func (e *UnknownNodeError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("unknown node kind %q at %v", e.Kind, e.Pos)
	}
	return fmt.Sprintf("unknown node kind %q", e.Kind)
}

// Is returns true for ErrUnknownNode.
func (*UnknownNodeError) Is(target error) bool { return target == ErrUnknownNode }

// DepthError is returned if the markup tree is nested deeper than allowed.
type DepthError struct {
	Limit int
	Pos   markup.Position
}

func (e *DepthError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("nesting depth exceeds %d at %v", e.Limit, e.Pos)
	}
	return fmt.Sprintf("nesting depth exceeds %d", e.Limit)
}

// Is returns true for ErrDepthExceeded.
func (*DepthError) Is(target error) bool { return target == ErrDepthExceeded }

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrUnknownNode):
		return "unknown_node"
	case errors.Is(err, ErrDepthExceeded):
		return "depth_exceeded"
	}
	return "other"
}
