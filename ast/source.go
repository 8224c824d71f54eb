//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

import (
	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

// SourceID identifies the raw source text of a node. Two nodes built from the
// same source text (after NFC normalization) have the same SourceID.
type SourceID uuid.UUID

// sourceSpace is the name space of all source identifiers.
var sourceSpace = uuid.MustParse("2f1f7c1e-5d0e-4d7b-9b0e-6d61726b646e")

// NewSourceID computes the identifier of the given raw source text.
func NewSourceID(raw []byte) SourceID {
	return SourceID(uuid.NewSHA1(sourceSpace, norm.NFC.Bytes(raw)))
}

// IsZero returns true, if the identifier was not computed from source text.
func (sid SourceID) IsZero() bool { return sid == SourceID{} }

// String returns the canonical textual form of the identifier.
func (sid SourceID) String() string { return uuid.UUID(sid).String() }
