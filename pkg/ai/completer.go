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

package ai

import (
	"context"
	"errors"
	"strings"
)

// UnknownAnswer is returned by FirstToken when the completion has no text.
const UnknownAnswer = "Unknown"

var (
	// ErrNotConfigured is returned when no API key is available.
	ErrNotConfigured = errors.New("gemini api key not configured")

	// ErrQuotaExceeded marks an upstream rate-limit (HTTP 429) response.
	ErrQuotaExceeded = errors.New("ai quota exceeded")

	// ErrUpstream marks every other upstream failure.
	ErrUpstream = errors.New("ai service error")
)

// Completer turns a prompt into generated text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts an ordinary function to the Completer interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f(ctx, prompt).
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// FirstToken returns the first whitespace-delimited token of text, or
// UnknownAnswer if there is none.
func FirstToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return UnknownAnswer
	}
	return fields[0]
}
