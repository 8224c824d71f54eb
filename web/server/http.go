//-----------------------------------------------------------------------------
// Copyright (c) 2020-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// Server timeout values
const (
	shutdownTimeout = 5 * time.Second
	readTimeout     = 5 * time.Second
	writeTimeout    = 10 * time.Second
	idleTimeout     = 120 * time.Second
)

// HTTPServer is a HTTP server.
type HTTPServer struct {
	*http.Server
	done chan error
}

// NewHTTPServer creates a new HTTP server object.
func NewHTTPServer(addr string, handler http.Handler) *HTTPServer {
	if addr == "" {
		addr = ":http"
	}
	return &HTTPServer{
		Server: &http.Server{
			Addr:    addr,
			Handler: handler,

			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
			IdleTimeout:  idleTimeout,
		},
		done: make(chan error, 1),
	}
}

// Run starts the web server, but does not wait for its completion. It
// returns the address the server listens on.
func (srv *HTTPServer) Run() (net.Addr, error) {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return nil, err
	}
	go func() {
		err := srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		srv.done <- err
	}()
	return ln.Addr(), nil
}

// Done returns a channel that receives the result of serving.
func (srv *HTTPServer) Done() <-chan error { return srv.done }

// Stop the web server.
func (srv *HTTPServer) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(ctx)
}
