//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package config provides the configuration of the mdast commands.
//
// A configuration is read from a YAML file. Values that are not given in the
// file keep their default value. Environment variables in the file are
// expanded before it is parsed.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"zettelstore.de/mdast/logger"
	"zettelstore.de/mdast/parser"
	"zettelstore.de/mdast/parser/markdown"
)

// Config contains all configuration data.
type Config struct {
	Parser   Parser   `yaml:"parser"`
	Markdown Markdown `yaml:"markdown"`
	Log      Log      `yaml:"log"`
	Serve    Serve    `yaml:"serve"`
}

// Parser configures the conversion into abstract syntax trees.
type Parser struct {
	UnknownNodes    string `yaml:"unknown_nodes"` // "drop" or "fail"
	MaxDepth        int    `yaml:"max_depth"`
	KeepListSpacing bool   `yaml:"keep_list_spacing"`
}

// Markdown enables extensions of the Markdown parser.
type Markdown struct {
	Table          bool `yaml:"table"`
	Strikethrough  bool `yaml:"strikethrough"`
	TaskList       bool `yaml:"tasklist"`
	Linkify        bool `yaml:"linkify"`
	Footnote       bool `yaml:"footnote"`
	DefinitionList bool `yaml:"definition_list"`
	Typographer    bool `yaml:"typographer"`
}

// Log configures logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text", "logfmt", or "json"
}

// Serve configures the HTTP API.
type Serve struct {
	Addr         string `yaml:"addr"`
	MaxBodyBytes int64  `yaml:"max_body_bytes"`
}

// Some default values.
const (
	DefaultAddr         = "127.0.0.1:23125"
	DefaultMaxBodyBytes = 1 << 20
)

// Default returns the configuration that is used without a config file.
func Default() *Config {
	md := markdown.DefaultOptions()
	return &Config{
		Parser: Parser{
			UnknownNodes: parser.PolicyDrop.String(),
			MaxDepth:     parser.DefaultMaxDepth,
		},
		Markdown: Markdown{
			Table:         md.Table,
			Strikethrough: md.Strikethrough,
			TaskList:      md.TaskList,
		},
		Log: Log{
			Level:  logger.InfoLevel.String(),
			Format: logger.FormatText.String(),
		},
		Serve: Serve{
			Addr:         DefaultAddr,
			MaxBodyBytes: DefaultMaxBodyBytes,
		},
	}
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse returns the validated configuration of the YAML data. Unknown keys
// are an error.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(data)))))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks all values. It reports every invalid value.
func (cfg *Config) Validate() error {
	var errs []error
	if _, err := parser.ParsePolicy(cfg.Parser.UnknownNodes); err != nil {
		errs = append(errs, fmt.Errorf("parser.unknown_nodes: %w", err))
	}
	if cfg.Parser.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("parser.max_depth must be positive, got %d", cfg.Parser.MaxDepth))
	}
	if logger.ParseLevel(cfg.Log.Level) == logger.NoLevel {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", cfg.Log.Level))
	}
	if _, ok := logger.ParseFormat(cfg.Log.Format); !ok {
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", cfg.Log.Format))
	}
	if cfg.Serve.Addr == "" {
		errs = append(errs, errors.New("serve.addr must not be empty"))
	}
	if cfg.Serve.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("serve.max_body_bytes must be positive, got %d", cfg.Serve.MaxBodyBytes))
	}
	return errors.Join(errs...)
}

// MarkdownOptions returns the options for the Markdown parser.
func (cfg *Config) MarkdownOptions() markdown.Options {
	md := cfg.Markdown
	return markdown.Options{
		Table:          md.Table,
		Strikethrough:  md.Strikethrough,
		TaskList:       md.TaskList,
		Linkify:        md.Linkify,
		Footnote:       md.Footnote,
		DefinitionList: md.DefinitionList,
		Typographer:    md.Typographer,
	}
}

// ParserConfig returns the configuration of a parser. The configuration must
// be valid.
func (cfg *Config) ParserConfig(log *slog.Logger, obs parser.Observer) parser.Config {
	policy, _ := parser.ParsePolicy(cfg.Parser.UnknownNodes)
	return parser.Config{
		UnknownNodes:    policy,
		MaxDepth:        cfg.Parser.MaxDepth,
		KeepListSpacing: cfg.Parser.KeepListSpacing,
		Markdown:        cfg.MarkdownOptions(),
		Logger:          log,
		Observer:        obs,
	}
}

// Logger creates the logger that writes to w.
func (cfg *Config) Logger(w io.Writer) *slog.Logger {
	format, _ := logger.ParseFormat(cfg.Log.Format)
	return logger.New(w, logger.ParseLevel(cfg.Log.Level), format)
}
