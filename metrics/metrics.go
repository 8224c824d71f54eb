//-----------------------------------------------------------------------------
// Copyright (c) 2025-present Detlef Stern
//
// This file is part of mdast.
//
// mdast is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package metrics records Prometheus metrics about building syntax trees and
// serving them.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mdast"

// Recorder observes the parser and the HTTP API. A nil *Recorder records
// nothing.
type Recorder struct {
	documents prom.Counter
	failures  *prom.CounterVec
	dropped   *prom.CounterVec
	duration  prom.Histogram
	requests  *prom.CounterVec
}

// New creates a recorder and registers its metrics with reg.
func New(reg prom.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		documents: f.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "documents_built_total",
			Help:      "Number of documents converted into block sequences",
		}),
		failures: f.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "build_failures_total",
			Help:      "Failed conversions by reason",
		}, []string{"reason"}),
		dropped: f.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "nodes_dropped_total",
			Help:      "Markup nodes of an unknown kind that were dropped, by kind",
		}, []string{"kind"}),
		duration: f.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of successful conversions",
			Buckets:   prom.ExponentialBuckets(0.0001, 4, 8),
		}),
		requests: f.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Requests of the HTTP API by status code",
		}, []string{"code"}),
	}
}

// DocumentBuilt records a successful conversion.
func (r *Recorder) DocumentBuilt(d time.Duration) {
	if r == nil {
		return
	}
	r.documents.Inc()
	r.duration.Observe(d.Seconds())
}

// BuildFailed records a failed conversion.
func (r *Recorder) BuildFailed(reason string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(reason).Inc()
}

// NodeDropped records a dropped node.
func (r *Recorder) NodeDropped(kind string) {
	if r == nil {
		return
	}
	r.dropped.WithLabelValues(kind).Inc()
}

// RequestServed records the status code of an HTTP response.
func (r *Recorder) RequestServed(code int) {
	if r == nil {
		return
	}
	r.requests.WithLabelValues(strconv.Itoa(code)).Inc()
}

// Handler returns an http.Handler that serves the metrics of reg.
func Handler(reg *prom.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}
