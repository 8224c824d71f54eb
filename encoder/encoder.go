//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package encoder provides a generic interface to encode the abstract syntax
// tree into some text form.
package encoder

import (
	"fmt"
	"io"
	"slices"

	"zettelstore.de/mdast/ast"
)

// Encoder is an interface that allows to encode block and inline sequences.
type Encoder interface {
	WriteBlocks(io.Writer, ast.BlockSlice) (int, error)
	WriteInlines(io.Writer, ast.InlineSlice) (int, error)
}

// Create builds a new encoder for the given encoding name. It returns nil,
// if no such encoder was registered.
func Create(enc string) Encoder {
	if info, ok := registry[enc]; ok {
		return info.Create()
	}
	return nil
}

// Info stores some data about an encoder.
type Info struct {
	Create  func() Encoder
	Default bool
}

var registry = map[string]Info{}
var defEncoding string

// Register the encoder for later retrieval.
func Register(enc string, info Info) {
	if _, ok := registry[enc]; ok {
		panic(fmt.Sprintf("Encoder %q already registered", enc))
	}
	if info.Default {
		if defEncoding != "" && defEncoding != enc {
			panic(fmt.Sprintf("Default encoder already set: %q, new encoding: %q", defEncoding, enc))
		}
		defEncoding = enc
	}
	registry[enc] = info
}

// GetEncodings returns all registered encodings, ordered by name.
func GetEncodings() []string {
	result := make([]string, 0, len(registry))
	for enc := range registry {
		result = append(result, enc)
	}
	slices.Sort(result)
	return result
}

// GetDefaultEncoding returns the encoding that should be used as default.
func GetDefaultEncoding() string {
	if defEncoding != "" {
		return defEncoding
	}
	panic("No default encoding given")
}
