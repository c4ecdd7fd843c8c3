// Package api assembles the bfhld HTTP service.
//
// It is a thin layer over pkg/server: it builds the AI completer and the
// bfhl dispatcher from Settings, registers the application routes and
// hands lifecycle management to the server.
//
// # Usage
//
//	err := api.Serve(ctx, api.Settings{
//	    Version:  version,
//	    Dispatch: bfhl.Config{OfficialEmail: "someone@example.com"},
//	    Gemini:   ai.Config{APIKey: os.Getenv("GEMINI_API_KEY")},
//	})
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - POST /bfhl - Dispatch a single-key operation body
//
// System Endpoints (no rate limiting):
//   - GET /health  - Service identity envelope
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// Example:
//
//	curl -s -X POST localhost:3000/bfhl \
//	  -H 'Content-Type: application/json' \
//	  -d '{"prime":[2,3,4,5,6]}'
//
// A missing Gemini API key is not fatal: the service starts and AI requests
// are answered with 500 "Gemini API key not configured".
package api
