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

package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/bfhl-api/bfhl/pkg/defaults"
	"github.com/bfhl-api/bfhl/pkg/serializer"
)

// Global flag names.
const (
	flagConfig            = "config"
	flagEmail             = "email"
	flagGeminiAPIKey      = "gemini-api-key"
	flagGeminiModel       = "gemini-model"
	flagGeminiBaseURL     = "gemini-base-url"
	flagAITimeout         = "ai-timeout"
	flagPort              = "port"
	flagRateLimit         = "rate-limit"
	flagRateBurst         = "rate-burst"
	flagMaxFibonacciTerms = "max-fibonacci-terms"
	flagMaxBodyBytes      = "max-body-bytes"
	flagLogLevel          = "log-level"
)

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    flagConfig,
			Aliases: []string{"c"},
			Usage:   "Path to a YAML config file",
			Sources: cli.EnvVars("BFHL_CONFIG"),
		},
		&cli.StringFlag{
			Name:    flagEmail,
			Usage:   "Official email echoed in every response",
			Sources: cli.EnvVars("OFFICIAL_EMAIL"),
		},
		&cli.StringFlag{
			Name:    flagGeminiAPIKey,
			Usage:   "Gemini API key; AI requests fail with 500 when unset",
			Sources: cli.EnvVars("GEMINI_API_KEY"),
		},
		&cli.StringFlag{
			Name:    flagGeminiModel,
			Usage:   "Gemini model used for AI requests",
			Value:   defaults.GeminiModel,
			Sources: cli.EnvVars("GEMINI_MODEL"),
		},
		&cli.StringFlag{
			Name:    flagGeminiBaseURL,
			Usage:   "Override the Gemini API base URL (proxies, testing)",
			Sources: cli.EnvVars("GEMINI_BASE_URL"),
		},
		&cli.DurationFlag{
			Name:    flagAITimeout,
			Usage:   "Timeout for a single AI request",
			Value:   defaults.AIRequestTimeout,
			Sources: cli.EnvVars("AI_TIMEOUT"),
		},
		&cli.IntFlag{
			Name:    flagPort,
			Aliases: []string{"p"},
			Usage:   "HTTP listen port",
			Value:   defaults.ServerPort,
			Sources: cli.EnvVars("PORT"),
		},
		&cli.FloatFlag{
			Name:    flagRateLimit,
			Usage:   "Sustained request rate limit (requests per second)",
			Value:   defaults.RateLimit,
			Sources: cli.EnvVars("RATE_LIMIT"),
		},
		&cli.IntFlag{
			Name:    flagRateBurst,
			Usage:   "Request burst size",
			Value:   defaults.RateLimitBurst,
			Sources: cli.EnvVars("RATE_LIMIT_BURST"),
		},
		&cli.IntFlag{
			Name:    flagMaxFibonacciTerms,
			Usage:   "Largest fibonacci count a request may ask for",
			Value:   defaults.MaxFibonacciTerms,
			Sources: cli.EnvVars("MAX_FIBONACCI_TERMS"),
		},
		&cli.Int64Flag{
			Name:    flagMaxBodyBytes,
			Usage:   "Largest accepted /bfhl request body in bytes",
			Value:   defaults.MaxBodyBytes,
			Sources: cli.EnvVars("MAX_BODY_BYTES"),
		},
		&cli.StringFlag{
			Name:    flagLogLevel,
			Usage:   "Log level (debug, info, warn, error)",
			Value:   "info",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
	}
}

// outputFlag and formatFlag return fresh flags so each command tree owns
// its parsed state.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: string(serializer.FormatJSON),
		Usage: fmt.Sprintf("Output format (supported: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}
