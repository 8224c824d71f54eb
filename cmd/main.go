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
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"zettelstore.de/mdast/config"
	"zettelstore.de/mdast/encoder"
	"zettelstore.de/mdast/encoder/treeenc"
	"zettelstore.de/mdast/parser"
)

// CLI defines the global flags and all commands.
type CLI struct {
	Config      string           `short:"c" help:"Configuration file (YAML)." placeholder:"FILE"`
	LogLevel    string           `help:"Log level: debug, info, warn, error, or disabled." placeholder:"LEVEL"`
	FailUnknown bool             `help:"Fail on markup nodes of an unknown kind instead of dropping them."`
	MaxDepth    int              `help:"Maximum nesting depth of the markup tree." placeholder:"N"`
	Version     kong.VersionFlag `help:"Show version and exit."`

	Dump      DumpCmd      `cmd:"" default:"withargs" help:"Parse Markdown and write the encoded syntax tree."`
	Watch     WatchCmd     `cmd:"" help:"Parse a Markdown file whenever it changes and report tree changes."`
	Serve     ServeCmd     `cmd:"" help:"Serve the HTTP API."`
	Encodings EncodingsCmd `cmd:"" help:"List all available encodings."`
}

// Env is the environment of a running command.
type Env struct {
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// loadConfig reads the configuration file, if one was given, and applies
// the global flags.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if c.Config != "" {
		var err error
		if cfg, err = config.Load(c.Config); err != nil {
			return nil, err
		}
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.FailUnknown {
		cfg.Parser.UnknownNodes = parser.PolicyFail.String()
	}
	if c.MaxDepth > 0 {
		cfg.Parser.MaxDepth = c.MaxDepth
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewParser creates a parser with the configuration of the environment.
func (env *Env) NewParser(obs parser.Observer) *parser.Parser {
	return parser.New(env.Config.ParserConfig(env.Logger, obs))
}

// NewEncoder creates the encoder for the given encoding. The tree encoder
// is styled, if the standard output is a terminal.
func (env *Env) NewEncoder(enc string) (encoder.Encoder, error) {
	if enc == "tree" && isTerminal(env.Stdout) {
		return treeenc.NewStyled(), nil
	}
	if encdr := encoder.Create(enc); encdr != nil {
		return encdr, nil
	}
	return nil, fmt.Errorf("unknown encoding %q", enc)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Main is the real entrypoint of the mdast command.
func Main(progName, version string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return run(ctx, progName, version, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, progName, version string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI
	exitCode := -1
	k, err := kong.New(&cli,
		kong.Name(progName),
		kong.Description("Convert Markdown into typed syntax trees."),
		kong.Vars{
			"version":          version,
			"encodings":        strings.Join(encoder.GetEncodings(), ","),
			"default_encoding": encoder.GetDefaultEncoding(),
		},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	kctx, err := k.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return 2
	}

	cfg, err := cli.loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return 2
	}
	env := &Env{
		Ctx:    ctx,
		Config: cfg,
		Logger: cfg.Logger(stderr),
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}
	if err = kctx.Run(env); err != nil {
		env.Logger.Error("command failed", "command", kctx.Command(), "error", err)
		return 1
	}
	return 0
}
