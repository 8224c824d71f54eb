//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package server provides the HTTP API that converts Markdown into encoded
// syntax trees.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	prom "github.com/prometheus/client_golang/prometheus"

	"zettelstore.de/mdast/logger"
	"zettelstore.de/mdast/metrics"
	"zettelstore.de/mdast/parser"
)

// Some constants for the API.
const (
	PathBlocks  = "/v1/blocks"
	PathHealth  = "/health"
	PathMetrics = "/metrics"

	QueryKeyEncoding = "enc"
	DefaultEncoding  = "json"
)

// Config specifies the collaborators of a server.
type Config struct {
	Parser       *parser.Parser    // nil means the default configuration
	Logger       *slog.Logger      // nil means no logging
	Registry     *prom.Registry    // nil disables the metrics endpoint
	Recorder     *metrics.Recorder // may be nil
	MaxBodyBytes int64             // maximum size of a request body
}

// Server is the HTTP API server.
type Server struct {
	router  chi.Router
	parser  *parser.Parser
	log     *slog.Logger
	rec     *metrics.Recorder
	maxBody int64
}

// New creates and configures the HTTP API server.
func New(cfg Config) *Server {
	s := &Server{
		parser:  cfg.Parser,
		log:     cfg.Logger,
		rec:     cfg.Recorder,
		maxBody: cfg.MaxBodyBytes,
	}
	if s.parser == nil {
		s.parser = parser.New(parser.DefaultConfig())
	}
	if s.log == nil {
		s.log = logger.Discard()
	}
	s.setupRoutes(cfg.Registry)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes(reg *prom.Registry) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.log, s.rec))

	r.Get(PathHealth, s.handleHealth)
	r.Post(PathBlocks, s.handleBlocks)
	if reg != nil {
		r.Method(http.MethodGet, PathMetrics, metrics.Handler(reg))
	}
	s.router = r
}
