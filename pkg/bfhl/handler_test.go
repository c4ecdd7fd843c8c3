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
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bfhl-api/bfhl/pkg/ai"
	"github.com/bfhl-api/bfhl/pkg/server"
)

func TestHandleBFHL(t *testing.T) {
	h := NewHandler(newTestDispatcher(nil))

	tests := []struct {
		name       string
		method     string
		body       string
		wantStatus int
		wantJSON   string
		wantAllow  string
	}{
		{"prime", http.MethodPost, `{"prime":[2,3,4,5,6]}`, http.StatusOK, success(`[2,3,5]`), ""},
		{"two keys", http.MethodPost, `{"fibonacci":5,"prime":[2,3]}`, http.StatusBadRequest, failure(MsgKeyArity), ""},
		{"empty body", http.MethodPost, ``, http.StatusBadRequest, failure(MsgKeyArity), ""},
		{"GET not allowed", http.MethodGet, ``, http.StatusMethodNotAllowed, failure(MsgMethodNotAllowed), http.MethodPost},
		{"PUT not allowed", http.MethodPut, `{"prime":[2]}`, http.StatusMethodNotAllowed, failure(MsgMethodNotAllowed), http.MethodPost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/bfhl", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.HandleBFHL(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantJSON, w.Body.String())
			assert.Equal(t, tt.wantAllow, w.Header().Get("Allow"))
		})
	}
}

func TestHandleBFHLBodyTooLarge(t *testing.T) {
	d := NewDispatcher(Config{OfficialEmail: testEmail, MaxBodyBytes: 16}, nil)
	h := NewHandler(d)

	req := httptest.NewRequest(http.MethodPost, "/bfhl",
		strings.NewReader(`{"prime":[2,3,5,7,11,13,17,19]}`))
	w := httptest.NewRecorder()

	h.HandleBFHL(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, failure(MsgBodyTooLarge), w.Body.String())
}

func TestHandleBFHLPassesRequestContext(t *testing.T) {
	type ctxKey struct{}

	var got any
	var hasDeadline bool
	h := NewHandler(newTestDispatcher(ai.CompleterFunc(func(ctx context.Context, _ string) (string, error) {
		got = ctx.Value(ctxKey{})
		_, hasDeadline = ctx.Deadline()
		return "Yes", nil
	})))

	req := httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(`{"AI":"Is water wet?"}`))
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "marker"))
	w := httptest.NewRecorder()

	h.HandleBFHL(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, success(`"Yes"`), w.Body.String())
	assert.Equal(t, "marker", got)
	assert.True(t, hasDeadline, "dispatch should run under a deadline")
}

func TestHandleHealth(t *testing.T) {
	h := NewHandler(newTestDispatcher(nil))

	t.Run("GET", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"is_success":true,"official_email":"someone@example.com"}`, w.Body.String())
	})

	t.Run("POST not allowed", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.HandleHealth(w, httptest.NewRequest(http.MethodPost, "/health", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
		assert.JSONEq(t, failure(MsgMethodNotAllowed), w.Body.String())
	})
}

func TestHandlersBehindServer(t *testing.T) {
	h := NewHandler(newTestDispatcher(nil))
	s := server.New(server.WithHandler(map[string]http.HandlerFunc{
		"/bfhl":   h.HandleBFHL,
		"/health": h.HandleHealth,
	}))
	routed := s.Handler()

	t.Run("bfhl gets middleware", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/bfhl", strings.NewReader(`{"hcf":[12,18]}`))
		w := httptest.NewRecorder()

		routed.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, success(`6`), w.Body.String())
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("health replaces default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()

		routed.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"is_success":true,"official_email":"someone@example.com"}`, w.Body.String())
	})
}
