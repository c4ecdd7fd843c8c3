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
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/bfhl-api/bfhl/pkg/ai"
	"github.com/bfhl-api/bfhl/pkg/api"
	"github.com/bfhl-api/bfhl/pkg/bfhl"
)

// fileConfig is the YAML config file layout. Every field is optional.
//
//	email: me@example.com
//	logLevel: info
//	gemini:
//	  apiKey: ...
//	  model: gemini-2.0-flash
//	  timeout: 30s
//	server:
//	  port: 3000
//	  rateLimit: 100
//	  rateBurst: 200
//	limits:
//	  maxFibonacciTerms: 1000
//	  maxBodyBytes: 1048576
type fileConfig struct {
	Email    string `yaml:"email"`
	LogLevel string `yaml:"logLevel"`

	Gemini struct {
		APIKey  string        `yaml:"apiKey"`
		Model   string        `yaml:"model"`
		BaseURL string        `yaml:"baseURL"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"gemini"`

	Server struct {
		Port      int     `yaml:"port"`
		RateLimit float64 `yaml:"rateLimit"`
		RateBurst int     `yaml:"rateBurst"`
	} `yaml:"server"`

	Limits struct {
		MaxFibonacciTerms int   `yaml:"maxFibonacciTerms"`
		MaxBodyBytes      int64 `yaml:"maxBodyBytes"`
	} `yaml:"limits"`
}

// loadFileConfig reads path. An empty path yields an empty config.
func loadFileConfig(path string) (*fileConfig, error) {
	fc := &fileConfig{}
	if path == "" {
		return fc, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %q: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	return fc, nil
}

// pick returns the flag value when it was set on the command line or via
// its environment variable, then the file value when non-zero, then the
// flag default.
func pick[T comparable](cmd *cli.Command, flag string, fromFile T, get func(string) T) T {
	if cmd.IsSet(flag) {
		return get(flag)
	}
	var zero T
	if fromFile != zero {
		return fromFile
	}
	return get(flag)
}

// resolveSettings merges flags, environment and the config file into the
// service settings. The resolved log level is returned alongside.
func resolveSettings(cmd *cli.Command) (api.Settings, string, error) {
	fc, err := loadFileConfig(cmd.String(flagConfig))
	if err != nil {
		return api.Settings{}, "", err
	}

	s := api.Settings{
		Version: version,
		Dispatch: bfhl.Config{
			OfficialEmail:     pick(cmd, flagEmail, fc.Email, cmd.String),
			MaxFibonacciTerms: pick(cmd, flagMaxFibonacciTerms, fc.Limits.MaxFibonacciTerms, cmd.Int),
			MaxBodyBytes:      pick(cmd, flagMaxBodyBytes, fc.Limits.MaxBodyBytes, cmd.Int64),
		},
		Gemini: ai.Config{
			APIKey:  pick(cmd, flagGeminiAPIKey, fc.Gemini.APIKey, cmd.String),
			Model:   pick(cmd, flagGeminiModel, fc.Gemini.Model, cmd.String),
			BaseURL: pick(cmd, flagGeminiBaseURL, fc.Gemini.BaseURL, cmd.String),
			Timeout: pick(cmd, flagAITimeout, fc.Gemini.Timeout, cmd.Duration),
		},
		Port:      pick(cmd, flagPort, fc.Server.Port, cmd.Int),
		RateLimit: pick(cmd, flagRateLimit, fc.Server.RateLimit, cmd.Float),
		RateBurst: pick(cmd, flagRateBurst, fc.Server.RateBurst, cmd.Int),
	}

	if s.Port < 0 || s.Port > 65535 {
		return api.Settings{}, "", fmt.Errorf("invalid port %d", s.Port)
	}

	return s, pick(cmd, flagLogLevel, fc.LogLevel, cmd.String), nil
}
