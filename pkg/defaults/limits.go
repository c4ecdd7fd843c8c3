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

package defaults

// Listener defaults.
const (
	// ServerPort is used when neither PORT nor --port is provided.
	ServerPort = 3000

	// RateLimit is the default sustained request rate (requests per second).
	RateLimit = 100

	// RateLimitBurst is the default token bucket size.
	RateLimitBurst = 200
)

// Request limits for the bfhl endpoint.
const (
	// MaxBodyBytes caps the size of a /bfhl request body.
	MaxBodyBytes int64 = 1 << 20

	// MaxFibonacciTerms caps the number of terms a single request may ask for.
	MaxFibonacciTerms = 1000
)

// AI collaborator defaults.
const (
	// GeminiModel is the generative model used for AI prompts.
	GeminiModel = "gemini-2.0-flash"

	// GeminiAPIVersion is the Gemini REST API version.
	GeminiAPIVersion = "v1"
)
