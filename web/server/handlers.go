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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"zettelstore.de/mdast/encoder"
)

// Content types of responses.
const (
	ContentTypeJSON = "application/json"
	ContentTypeText = "text/plain; charset=utf-8"
)

func (*Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.Write([]byte(`{"status":"ok"}`))
}

// handleBlocks converts the Markdown request body and responds with the
// encoded block sequence.
func (s *Server) handleBlocks(w http.ResponseWriter, r *http.Request) {
	enc := r.URL.Query().Get(QueryKeyEncoding)
	if enc == "" {
		enc = DefaultEncoding
	}
	encdr := encoder.Create(enc)
	if encdr == nil {
		jsonError(w, fmt.Sprintf("unknown encoding %q", enc), http.StatusBadRequest)
		return
	}

	if s.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxBody)
	}
	src, err := io.ReadAll(r.Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			jsonError(w, fmt.Sprintf("body exceeds max size (%d bytes)", mbe.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return
	}

	bs, err := s.parser.ParseBlocks(string(src))
	if err != nil {
		s.log.Warn("conversion failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	var buf bytes.Buffer
	if _, err = encdr.WriteBlocks(&buf, bs); err != nil {
		jsonError(w, "failed to encode", http.StatusInternalServerError)
		return
	}
	if enc == "json" {
		w.Header().Set("Content-Type", ContentTypeJSON)
	} else {
		w.Header().Set("Content-Type", ContentTypeText)
	}
	w.Write(buf.Bytes())
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
