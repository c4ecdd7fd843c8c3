// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUpstream,
//	    "gemini generateContent failed",
//	    cause,
//	    map[string]any{
//	        "model": "gemini-2.0-flash",
//	        "status": 503,
//	    },
//	)
package errors
