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
	"io"
	"os"
)

// ---------- Subcommand: dump -----------------------------------------------

// DumpCmd writes the syntax tree of a Markdown file.
type DumpCmd struct {
	Encoding string `short:"e" help:"Output encoding: ${encodings}." enum:"${encodings}" default:"${default_encoding}"`
	Inline   bool   `help:"Encode only the inlines of the first paragraph."`
	File     string `arg:"" optional:"" help:"Markdown file, standard input if missing." type:"path"`
}

// Run executes the dump command.
func (d *DumpCmd) Run(env *Env) error {
	encdr, err := env.NewEncoder(d.Encoding)
	if err != nil {
		return err
	}
	src, err := readInput(d.File, env.Stdin)
	if err != nil {
		return err
	}
	bs, err := env.NewParser(nil).ParseBlocks(string(src))
	if err != nil {
		return err
	}
	if d.Inline {
		_, err = encdr.WriteInlines(env.Stdout, bs.FirstParagraphInlines())
	} else {
		_, err = encdr.WriteBlocks(env.Stdout, bs)
	}
	if err != nil {
		return err
	}
	if d.Encoding != "tree" {
		_, err = io.WriteString(env.Stdout, "\n")
	}
	return err
}

func readInput(file string, stdin io.Reader) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(file)
}
