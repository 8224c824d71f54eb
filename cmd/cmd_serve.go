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
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"zettelstore.de/mdast/metrics"
	"zettelstore.de/mdast/web/server"
)

// ---------- Subcommand: serve ----------------------------------------------

// ServeCmd runs the HTTP API until the command is interrupted.
type ServeCmd struct {
	Addr string `short:"a" help:"Listen address, overrides serve.addr." placeholder:"HOST:PORT"`
}

// Run executes the serve command.
func (s *ServeCmd) Run(env *Env) error {
	addr := env.Config.Serve.Addr
	if s.Addr != "" {
		addr = s.Addr
	}
	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(reg)

	srv := server.NewHTTPServer(addr, server.New(server.Config{
		Parser:       env.NewParser(rec),
		Logger:       env.Logger,
		Registry:     reg,
		Recorder:     rec,
		MaxBodyBytes: env.Config.Serve.MaxBodyBytes,
	}))
	listenAddr, err := srv.Run()
	if err != nil {
		return err
	}
	env.Logger.Info("start service", "addr", listenAddr.String())

	select {
	case <-env.Ctx.Done():
		env.Logger.Info("stop service", "addr", listenAddr.String())
		return srv.Stop()
	case err = <-srv.Done():
		return err
	}
}
