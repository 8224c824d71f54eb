//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package main is the starting point for the mdast command.
package main

import (
	"os"

	"zettelstore.de/mdast/cmd"
)

// Version variable. Will be filled by build process.
var buildVersion = "dev"

func main() {
	os.Exit(cmd.Main("mdast", buildVersion))
}
