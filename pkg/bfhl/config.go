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

package bfhl

import "github.com/bfhl-api/bfhl/pkg/defaults"

// Config is fixed at startup and shared by every request.
type Config struct {
	// OfficialEmail is echoed in every response envelope.
	OfficialEmail string `json:"officialEmail" yaml:"officialEmail"`

	// MaxFibonacciTerms caps the fibonacci count. This is the one fibonacci
	// input that fails: an integer count above the cap is rejected with 400
	// "Invalid input format", while every other unusable count (negative,
	// fractional, non-numeric) answers with an empty sequence.
	MaxFibonacciTerms int `json:"maxFibonacciTerms" yaml:"maxFibonacciTerms"`

	// MaxBodyBytes caps the /bfhl request body.
	MaxBodyBytes int64 `json:"maxBodyBytes" yaml:"maxBodyBytes"`
}

// withDefaults fills unset limits.
func (c Config) withDefaults() Config {
	if c.MaxFibonacciTerms <= 0 {
		c.MaxFibonacciTerms = defaults.MaxFibonacciTerms
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = defaults.MaxBodyBytes
	}
	return c
}
