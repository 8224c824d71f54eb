//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package cmd provides the commands of the mdast program.
package cmd

// Mention all needed encoders to have them registered.
import (
	_ "zettelstore.de/mdast/encoder/jsonenc"   // Allow to use JSON encoder.
	_ "zettelstore.de/mdast/encoder/nativeenc" // Allow to use native encoder.
	_ "zettelstore.de/mdast/encoder/textenc"   // Allow to use text encoder.
	_ "zettelstore.de/mdast/encoder/treeenc"   // Allow to use tree encoder.
)
