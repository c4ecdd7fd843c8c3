// Package cli implements the bfhld command line.
//
// # Commands
//
// serve (default) - Run the HTTP API:
//
//	bfhld [serve] [--port 3000] [--email me@example.com]
//
// eval - Dispatch one /bfhl body locally and print the status and envelope:
//
//	bfhld eval --body '{"fibonacci": 7}' [--output FILE] [--format json|yaml|table]
//	echo '{"hcf": [12, 18]}' | bfhld eval --body -
//
// # Configuration
//
// Each global flag has an environment variable. A YAML file given with
// --config (or BFHL_CONFIG) supplies values for anything not set on the
// command line or in the environment.
//
//	--config               BFHL_CONFIG
//	--email                OFFICIAL_EMAIL
//	--gemini-api-key       GEMINI_API_KEY
//	--gemini-model         GEMINI_MODEL
//	--gemini-base-url      GEMINI_BASE_URL
//	--ai-timeout           AI_TIMEOUT
//	--port, -p             PORT
//	--rate-limit           RATE_LIMIT
//	--rate-burst           RATE_LIMIT_BURST
//	--max-fibonacci-terms  MAX_FIBONACCI_TERMS
//	--max-body-bytes       MAX_BODY_BYTES
//	--log-level            LOG_LEVEL
//
// # Exit Codes
//
//	0  Success, including eval runs whose envelope reports a failure
//	1  Invalid arguments, bad configuration or server error
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/bfhl-api/bfhl/pkg/cli.version=1.0.0'"
package cli
