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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/fsnotify/fsnotify"

	"zettelstore.de/mdast/ast"
	"zettelstore.de/mdast/encoder"
)

// ---------- Subcommand: watch ----------------------------------------------

// WatchCmd parses a file again on every change.
type WatchCmd struct {
	Encoding string `short:"e" help:"Write changed trees in this encoding: ${encodings}." enum:",${encodings}" default:""`
	File     string `arg:"" help:"Markdown file to watch." type:"existingfile"`
}

// Run executes the watch command.
func (wc *WatchCmd) Run(env *Env) error {
	var encdr encoder.Encoder
	if wc.Encoding != "" {
		var err error
		if encdr, err = env.NewEncoder(wc.Encoding); err != nil {
			return err
		}
	}
	return watchFile(env.Ctx, env, wc.File, func(r watchReport) {
		if r.err != nil {
			env.Logger.Warn("conversion failed", "file", wc.File, "error", r.err)
			return
		}
		if !r.changed {
			env.Logger.Debug("document unchanged", "file", wc.File)
			return
		}
		env.Logger.Info("document changed", "file", wc.File,
			"blocks", len(r.blocks), "hash", strconv.FormatUint(ast.HashBlocks(r.blocks), 16))
		if encdr != nil {
			encdr.WriteBlocks(env.Stdout, r.blocks)
			fmt.Fprintln(env.Stdout)
		}
	})
}

// watchReport is the outcome of parsing the watched file once.
type watchReport struct {
	blocks  ast.BlockSlice
	changed bool // the tree differs from the last successfully parsed one
	err     error
}

// watchFile parses the file and reports the result. It parses the file again
// after every write, until the context is done. The first report is always
// a change.
func watchFile(ctx context.Context, env *Env, path string, report func(watchReport)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace the file, so the directory is watched.
	if err = watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("watch directory of %s: %w", path, err)
	}
	env.Logger.Info("start watching", "file", absPath)

	p := env.NewParser(nil)
	var last ast.BlockSlice
	parsed := false
	update := func() {
		src, err := os.ReadFile(absPath)
		if err != nil {
			report(watchReport{err: err})
			return
		}
		bs, err := p.ParseBlocks(string(src))
		if err != nil {
			report(watchReport{err: err})
			return
		}
		changed := !parsed || !ast.EqualBlocks(last, bs)
		last, parsed = bs, true
		report(watchReport{blocks: bs, changed: changed})
	}
	update()

	name := filepath.Base(absPath)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				update()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			env.Logger.Error("file watcher", "error", err)
		}
	}
}
