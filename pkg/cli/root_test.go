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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v3"
)

func hasName(flag cli.Flag, name string) bool {
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, name, cmd.Name)
	assert.NotNil(t, cmd.Action, "root command should serve by default")

	var commands []string
	for _, c := range cmd.Commands {
		commands = append(commands, c.Name)
	}
	assert.ElementsMatch(t, []string{"serve", "eval"}, commands)

	for _, want := range []string{
		flagConfig, flagEmail, flagGeminiAPIKey, flagGeminiModel,
		flagGeminiBaseURL, flagAITimeout, flagPort, flagRateLimit,
		flagRateBurst, flagMaxFibonacciTerms, flagMaxBodyBytes, flagLogLevel,
	} {
		found := false
		for _, f := range cmd.Flags {
			if hasName(f, want) {
				found = true
				break
			}
		}
		assert.True(t, found, "missing global flag %q", want)
	}
}

func TestEvalCmdFlags(t *testing.T) {
	cmd := evalCmd()

	for _, want := range []string{"body", "b", "output", "o", "format"} {
		found := false
		for _, f := range cmd.Flags {
			if hasName(f, want) {
				found = true
				break
			}
		}
		assert.True(t, found, "missing eval flag %q", want)
	}
}
