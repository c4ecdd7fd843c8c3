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

// Package server provides the reusable HTTP server that hosts the bfhl API.
//
// It owns listening, routing, graceful shutdown and the cross-cutting
// middleware; application packages only contribute handlers.
//
// # Architecture
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for log correlation
//   - Panic recovery as a last-resort 500
//   - Graceful shutdown on SIGINT/SIGTERM
//   - Liveness, readiness and Prometheus endpoints
//
// # Usage
//
//	s := server.New(
//	    server.WithName("bfhld"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/bfhl": handler.HandleBFHL,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Custom configuration:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	cfg.RateLimit = 200
//	cfg.RateLimitBurst = 400
//	s := server.New(server.WithConfig(cfg))
//
// # Endpoints
//
// Routes added with WithHandler are wrapped in the middleware chain
// (metrics, API version, request ID, panic recovery, rate limit, logging).
// The system routes are not:
//
//	GET /health   liveness; an application "/health" handler replaces the default
//	GET /ready    200 once listening, 503 otherwise
//	GET /metrics  Prometheus exposition
//	GET /         service name, version and registered routes
//
// Any path that no route matches gets a 404 NOT_FOUND error body.
//
// # Observability
//
// Request ID Tracking:
//
//	Requests accept an optional X-Request-Id header (UUID format).
//	Missing or malformed IDs are replaced with a fresh UUID. The ID is
//	echoed in the X-Request-Id response header, attached to the request
//	context (see RequestIDFromContext) and included in error bodies.
//
// Rate Limiting:
//
//	X-RateLimit-Limit:     requests allowed per second
//	X-RateLimit-Remaining: tokens left in the bucket
//	X-RateLimit-Reset:     Unix timestamp when the bucket refills
//
//	When rate limited, returns 429 with Retry-After header.
//
// # Error Handling
//
// Server-level failures use a consistent JSON structure:
//
//	{
//	  "code": "RATE_LIMIT_EXCEEDED",
//	  "message": "Rate limit exceeded",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-12T12:00:00Z",
//	  "retryable": true
//	}
//
// Application handlers may write their own bodies; WriteError and
// WriteErrorFromErr are available for those that want this shape.
//
// # Configuration
//
// NewConfig reads PORT and SHUTDOWN_TIMEOUT_SECONDS from the environment
// and falls back to pkg/defaults for everything else.
package server
