// Package defaults provides centralized configuration constants for the bfhl service.
//
// This package defines timeout values, request limits, and AI collaborator
// defaults used across the codebase. Centralizing these values ensures
// consistency and makes tuning easier.
//
// # Categories
//
//   - Server timeouts: For HTTP server configuration
//   - AI timeouts: For the Gemini generateContent round trip
//   - HTTP client timeouts: For the outbound transport used by the AI client
//   - Limits: Port, rate limiting, body size, Fibonacci term cap
//
// # Usage
//
//	import "github.com/bfhl-api/bfhl/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.AIRequestTimeout)
//	defer cancel()
//
// # Guidelines
//
//   - AIRequestTimeout must stay below ServerWriteTimeout so that a timed out
//     AI call can still be reported to the client.
//   - Server shutdown: 30s for graceful shutdown
package defaults
