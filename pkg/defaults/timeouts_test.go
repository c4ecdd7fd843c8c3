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

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 120 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},

		// AI timeouts
		{"AIRequestTimeout", AIRequestTimeout, 5 * time.Second, 90 * time.Second},

		// HTTP client timeouts
		{"HTTPConnectTimeout", HTTPConnectTimeout, 1 * time.Second, 15 * time.Second},
		{"HTTPTLSHandshakeTimeout", HTTPTLSHandshakeTimeout, 1 * time.Second, 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}

	if ServerReadHeaderTimeout > ServerReadTimeout {
		t.Errorf("ServerReadHeaderTimeout (%v) should not exceed ServerReadTimeout (%v)",
			ServerReadHeaderTimeout, ServerReadTimeout)
	}
}

func TestAITimeoutFitsInsideWriteTimeout(t *testing.T) {
	// an AI call that times out must still leave room to write the error envelope
	if AIRequestTimeout >= ServerWriteTimeout {
		t.Errorf("AIRequestTimeout (%v) should be less than ServerWriteTimeout (%v)",
			AIRequestTimeout, ServerWriteTimeout)
	}
	if DispatchTimeout <= AIRequestTimeout || DispatchTimeout >= ServerWriteTimeout {
		t.Errorf("DispatchTimeout (%v) should sit between AIRequestTimeout (%v) and ServerWriteTimeout (%v)",
			DispatchTimeout, AIRequestTimeout, ServerWriteTimeout)
	}
}

func TestLimits(t *testing.T) {
	if MaxFibonacciTerms <= 0 {
		t.Errorf("MaxFibonacciTerms must be positive, got %d", MaxFibonacciTerms)
	}
	if MaxBodyBytes < 1024 {
		t.Errorf("MaxBodyBytes (%d) is unreasonably small", MaxBodyBytes)
	}
	if RateLimitBurst < RateLimit {
		t.Errorf("RateLimitBurst (%d) should not be below RateLimit (%d)", RateLimitBurst, RateLimit)
	}
	if ServerPort != 3000 {
		t.Errorf("ServerPort = %d, want 3000", ServerPort)
	}
}
