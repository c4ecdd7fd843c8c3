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
	"context"

	"github.com/urfave/cli/v3"

	"github.com/bfhl-api/bfhl/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the bfhl HTTP API (default when no command is given).",
		Description: `Starts the HTTP server on --port and serves:
  POST /bfhl    run one operation (fibonacci, prime, lcm, hcf, AI)
  GET  /health  liveness with the configured official email
  GET  /ready   readiness
  GET  /metrics Prometheus metrics

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	settings, logLevel, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	initLogger(logLevel)

	return api.Serve(ctx, settings)
}
