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

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToNumber(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		raw  string
		want float64
	}{
		// numbers
		{`5`, 5},
		{`-3.5`, -3.5},
		{`1e3`, 1000},
		{`1e400`, math.Inf(1)},
		// literals
		{`true`, 1},
		{`false`, 0},
		{`null`, 0},
		// strings
		{`"12"`, 12},
		{`" 12 "`, 12},
		{`"\t42\n"`, 42},
		{`""`, 0},
		{`"   "`, 0},
		{`"+5"`, 5},
		{`".5"`, 0.5},
		{`"5."`, 5},
		{`"007"`, 7},
		{`"0x1A"`, 26},
		{`"0o17"`, 15},
		{`"0b101"`, 5},
		{`"Infinity"`, math.Inf(1)},
		{`"-Infinity"`, math.Inf(-1)},
		{`"-0x10"`, nan},
		{`"0x"`, nan},
		{`"1_000"`, nan},
		{`"abc"`, nan},
		{`"inf"`, nan},
		{`"NaN"`, nan},
		{`"1e"`, nan},
		{`"12px"`, nan},
		// arrays
		{`[]`, 0},
		{`[7]`, 7},
		{`["8"]`, 8},
		{`[[9]]`, 9},
		{`[null]`, 0},
		{`[""]`, 0},
		{`[true]`, nan},
		{`[1,2]`, nan},
		// objects
		{`{}`, nan},
		{`{"a":1}`, nan},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got := toNumber(json.RawMessage(tt.raw))
			if math.IsNaN(tt.want) {
				assert.True(t, math.IsNaN(got), "toNumber(%s) = %v, want NaN", tt.raw, got)
				return
			}
			assert.Equal(t, tt.want, got, "toNumber(%s)", tt.raw)
		})
	}
}

func TestToBigInt(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{-42, "-42"},
		{1e20, "100000000000000000000"},
		{9007199254740992, "9007199254740992"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toBigInt(tt.in).String(), "toBigInt(%v)", tt.in)
	}
}
