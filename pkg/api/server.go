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

package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/bfhl-api/bfhl/pkg/ai"
	"github.com/bfhl-api/bfhl/pkg/bfhl"
	"github.com/bfhl-api/bfhl/pkg/server"
)

const (
	name           = "bfhld"
	versionDefault = "dev"
)

// Settings is the fully resolved service configuration.
type Settings struct {
	// Version is reported on the root route.
	Version string

	// Dispatch configures the /bfhl dispatcher.
	Dispatch bfhl.Config

	// Gemini configures the AI completer. A blank APIKey leaves AI
	// requests unconfigured.
	Gemini ai.Config

	// Server overrides; zero values keep the server defaults.
	Port      int
	RateLimit float64
	RateBurst int
}

// Serve starts the API server and blocks until ctx is canceled or the
// process receives SIGINT/SIGTERM.
func Serve(ctx context.Context, s Settings) error {
	if s.Version == "" {
		s.Version = versionDefault
	}

	d, err := NewDispatcher(ctx, s)
	if err != nil {
		return err
	}

	srv := server.New(
		server.WithConfig(serverConfig(s)),
		server.WithName(name),
		server.WithVersion(s.Version),
		server.WithHandler(Routes(bfhl.NewHandler(d))),
	)

	if err := srv.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// NewDispatcher builds the dispatcher and, when an API key is present, its
// Gemini completer.
func NewDispatcher(ctx context.Context, s Settings) (*bfhl.Dispatcher, error) {
	var completer ai.Completer

	client, err := ai.NewGeminiClient(ctx, s.Gemini)
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		slog.Warn("gemini api key not set, AI requests will be rejected")
	case err != nil:
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	default:
		slog.Info("AI completer configured", "model", client.Model())
		completer = client
	}

	return bfhl.NewDispatcher(s.Dispatch, completer), nil
}

// Routes returns the application routes served by bfhld.
func Routes(h *bfhl.Handler) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/bfhl":   h.HandleBFHL,
		"/health": h.HandleHealth,
	}
}

func serverConfig(s Settings) *server.Config {
	cfg := server.NewConfig()
	if s.Port > 0 {
		cfg.Port = s.Port
	}
	if s.RateLimit > 0 {
		cfg.RateLimit = rate.Limit(s.RateLimit)
	}
	if s.RateBurst > 0 {
		cfg.RateLimitBurst = s.RateBurst
	}
	return cfg
}
