//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package cmd

import (
	"fmt"

	"zettelstore.de/mdast/encoder"
)

// EncodingsCmd lists the registered encodings.
type EncodingsCmd struct{}

// Run executes the encodings command.
func (*EncodingsCmd) Run(env *Env) error {
	def := encoder.GetDefaultEncoding()
	for _, enc := range encoder.GetEncodings() {
		if enc == def {
			fmt.Fprintf(env.Stdout, "%s (default)\n", enc)
		} else {
			fmt.Fprintln(env.Stdout, enc)
		}
	}
	return nil
}
