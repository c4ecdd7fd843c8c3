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
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/bfhl-api/bfhl/pkg/api"
	"github.com/bfhl-api/bfhl/pkg/bfhl"
	"github.com/bfhl-api/bfhl/pkg/serializer"
)

// evalResult is what eval prints: the HTTP status /bfhl would answer with
// and the response envelope.
type evalResult struct {
	Status   int            `json:"status" yaml:"status"`
	Response *bfhl.Response `json:"response" yaml:"response"`
}

func evalCmd() *cli.Command {
	return &cli.Command{
		Name:  "eval",
		Usage: "Evaluate a single /bfhl request body without starting the server.",
		Description: `Runs the same dispatcher the server uses on one JSON body and prints
the status code and response envelope.

Examples:

  bfhld eval --body '{"fibonacci": 7}'
  echo '{"lcm": [4, 6]}' | bfhld eval --body - --format yaml

The command exits 0 whenever the body was dispatched, including when the
envelope reports a failure; the status field carries the outcome.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "body",
				Aliases:  []string{"b"},
				Usage:    "JSON request body, or - to read it from stdin",
				Required: true,
			},
			outputFlag(),
			formatFlag(),
		},
		Action: evalAction,
	}
}

func evalAction(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	settings, logLevel, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	initLogger(logLevel)

	body, err := readBody(cmd)
	if err != nil {
		return err
	}

	d, err := api.NewDispatcher(ctx, settings)
	if err != nil {
		return err
	}

	status, resp := d.Dispatch(ctx, body)
	slog.Debug("evaluated request", "status", status, "success", resp.IsSuccess)

	w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			slog.Warn("failed to close serializer", "error", closeErr)
		}
	}()

	if err := w.Serialize(ctx, evalResult{Status: status, Response: resp}); err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	return nil
}

func readBody(cmd *cli.Command) ([]byte, error) {
	body := cmd.String("body")
	if body != "-" {
		return []byte(body), nil
	}

	var r io.Reader = os.Stdin
	if root := cmd.Root(); root != nil && root.Reader != nil {
		r = root.Reader
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read body from stdin: %w", err)
	}
	return b, nil
}
