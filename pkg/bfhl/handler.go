// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package bfhl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/bfhl-api/bfhl/pkg/defaults"
	"github.com/bfhl-api/bfhl/pkg/serializer"
	"github.com/bfhl-api/bfhl/pkg/server"
)

// Handler exposes a Dispatcher over HTTP.
type Handler struct {
	dispatcher *Dispatcher
}

// NewHandler returns HTTP handlers backed by d.
func NewHandler(d *Dispatcher) *Handler {
	return &Handler{dispatcher: d}
}

// HandleBFHL serves POST /bfhl. Every outcome, including method and size
// violations, is written as a Response envelope.
func (h *Handler) HandleBFHL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		serializer.RespondJSON(w, http.StatusMethodNotAllowed, h.dispatcher.failure(MsgMethodNotAllowed))
		return
	}

	// Add request-scoped timeout
	ctx, cancel := context.WithTimeout(r.Context(), defaults.DispatchTimeout)
	defer cancel()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.dispatcher.config.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			slog.Info("request body too large",
				"requestID", server.RequestIDFromContext(ctx),
				"limit", tooLarge.Limit,
			)
			serializer.RespondJSON(w, http.StatusRequestEntityTooLarge, h.dispatcher.failure(MsgBodyTooLarge))
			return
		}
		slog.Info("failed to read request body",
			"requestID", server.RequestIDFromContext(ctx),
			"error", err,
		)
		serializer.RespondJSON(w, http.StatusBadRequest, h.dispatcher.failure(MsgInvalidInput))
		return
	}

	status, resp := h.dispatcher.Dispatch(ctx, body)
	serializer.RespondJSON(w, status, resp)
}

// HandleHealth serves GET /health with the service identity.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		serializer.RespondJSON(w, http.StatusMethodNotAllowed, h.dispatcher.failure(MsgMethodNotAllowed))
		return
	}

	serializer.RespondJSON(w, http.StatusOK, &Response{
		IsSuccess:     true,
		OfficialEmail: h.dispatcher.config.OfficialEmail,
	})
}
