//-----------------------------------------------------------------------------
// Copyright (c) 2026-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"zettelstore.de/mdast/ast"
)

func TestSourceID(t *testing.T) {
	t.Parallel()
	var zero ast.SourceID
	assert.True(t, zero.IsZero())

	a := ast.NewSourceID([]byte("- [x] done"))
	assert.False(t, a.IsZero())
	assert.Equal(t, a, ast.NewSourceID([]byte("- [x] done")))
	assert.NotEqual(t, a, ast.NewSourceID([]byte("- [ ] done")))

	u, err := uuid.Parse(a.String())
	assert.NoError(t, err)
	assert.Equal(t, uuid.Version(5), u.Version())
}

func TestSourceIDNormalized(t *testing.T) {
	t.Parallel()
	composed := ast.NewSourceID([]byte("- [ ] caf\u00e9"))
	decomposed := ast.NewSourceID([]byte("- [ ] cafe\u0301"))
	assert.Equal(t, composed, decomposed)
}
