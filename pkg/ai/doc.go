// Package ai wraps the generative text collaborator used by the AI operation.
//
// The rest of the service depends only on the Completer interface. The
// production implementation, GeminiClient, uses the google.golang.org/genai
// SDK against the Gemini API and classifies failures into two categories:
//
//   - ErrQuotaExceeded: the API answered HTTP 429
//   - ErrUpstream: anything else (transport error, non-2xx, bad payload)
//
// Both are returned wrapped in a *errors.StructuredError so callers can use
// errors.Is on the sentinel or switch on the error code.
//
// Calls are never retried.
//
// # Usage
//
//	c, err := ai.NewGeminiClient(ctx, ai.Config{APIKey: key})
//	if errors.Is(err, ai.ErrNotConfigured) {
//	    // run without AI support
//	}
//	text, err := c.Complete(ctx, "What is the capital of France?")
//	answer := ai.FirstToken(text)
package ai
