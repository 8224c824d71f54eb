//-----------------------------------------------------------------------------
// Copyright (c) 2021-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package logger creates structured loggers.
//
// Loggers are of type *slog.Logger, so that library code does not depend on
// a specific logging package. Output is formatted by charmbracelet/log.
package logger

import (
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Level defines the possible log levels
type Level uint8

// Constants for Level
const (
	NoLevel    Level = iota // the absent log level
	DebugLevel              // Log internal activities, e.g. dropped nodes
	InfoLevel               // Log normal activities
	WarnLevel               // Log event that can be easily recovered
	ErrorLevel              // Log errors
	NeverLevel              // Logging is disabled
)

var strLevel = [...]string{
	"",
	"debug",
	"info",
	"warn",
	"error",
	"disabled",
}

// IsValid returns true, if the level is a valid level
func (l Level) IsValid() bool { return DebugLevel <= l && l <= NeverLevel }

func (l Level) String() string {
	if l.IsValid() {
		return strLevel[l]
	}
	return strconv.Itoa(int(l))
}

// ParseLevel returns the recognized level. A prefix of at least three
// characters is sufficient.
func ParseLevel(text string) Level {
	text = strings.ToLower(text)
	for lv := DebugLevel; lv <= NeverLevel; lv++ {
		if len(text) > 2 && strings.HasPrefix(strLevel[lv], text) {
			return lv
		}
	}
	return NoLevel
}

func (l Level) charm() log.Level {
	switch l {
	case DebugLevel:
		return log.DebugLevel
	case WarnLevel:
		return log.WarnLevel
	case ErrorLevel:
		return log.ErrorLevel
	}
	return log.InfoLevel
}

// Format specifies the output format of a logger.
type Format uint8

// Constants for Format
const (
	FormatText Format = iota
	FormatLogfmt
	FormatJSON
)

var strFormat = [...]string{"text", "logfmt", "json"}

func (f Format) String() string {
	if int(f) < len(strFormat) {
		return strFormat[f]
	}
	return strconv.Itoa(int(f))
}

// ParseFormat returns the recognized format, and false if text is not a
// valid format.
func ParseFormat(text string) (Format, bool) {
	for i, s := range strFormat {
		if s == text {
			return Format(i), true
		}
	}
	return FormatText, text == ""
}

func (f Format) charm() log.Formatter {
	switch f {
	case FormatLogfmt:
		return log.LogfmtFormatter
	case FormatJSON:
		return log.JSONFormatter
	}
	return log.TextFormatter
}

// New creates a logger that writes to w.
func New(w io.Writer, level Level, format Format) *slog.Logger {
	if level == NeverLevel {
		return Discard()
	}
	cl := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level.charm(),
		Formatter:       format.charm(),
	})
	return slog.New(cl)
}

// Discard returns a logger that discards all output.
func Discard() *slog.Logger { return slog.New(slog.DiscardHandler) }
