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
	"net/http"
	"testing"
)

// FuzzDispatch checks the envelope holds for arbitrary bodies.
func FuzzDispatch(f *testing.F) {
	f.Add(`{"fibonacci": 7}`)
	f.Add(`{"prime": [2, 4, 7]}`)
	f.Add(`{"lcm": [4, 6]}`)
	f.Add(`{"hcf": []}`)
	f.Add(`{"AI": "hi"}`)
	f.Add(`{"fibonacci": "0x10"}`)
	f.Add(`{"lcm": [1e308, 3]}`)
	f.Add(`{"a": 1, "b": 2}`)
	f.Add(`[]`)
	f.Add(`null`)
	f.Add(``)
	f.Add(`{`)

	d := newTestDispatcher(nil)

	f.Fuzz(func(t *testing.T, body string) {
		status, resp := d.Dispatch(t.Context(), []byte(body))
		if resp == nil {
			t.Fatalf("Dispatch(%q) returned nil response", body)
		}
		if resp.OfficialEmail != testEmail {
			t.Errorf("Dispatch(%q) official_email = %q", body, resp.OfficialEmail)
		}
		if resp.IsSuccess != (status == http.StatusOK) {
			t.Errorf("Dispatch(%q) is_success = %v with status %d", body, resp.IsSuccess, status)
		}
		if resp.IsSuccess && resp.Message != "" {
			t.Errorf("Dispatch(%q) success carries message %q", body, resp.Message)
		}
		if !resp.IsSuccess && resp.Message == "" {
			t.Errorf("Dispatch(%q) failure without message", body)
		}
		if _, err := json.Marshal(resp); err != nil {
			t.Errorf("Dispatch(%q) response does not encode: %v", body, err)
		}
	})
}

// FuzzToNumber checks a string coerces the same on its own and as the
// only element of an array.
func FuzzToNumber(f *testing.F) {
	for _, s := range []string{"", " ", "12", " 12 ", "1e3", ".5", "5.", "0x1F", "0b101", "0o17", "-Infinity", "abc", "1_000", "\uFEFF7"} {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		raw, err := json.Marshal(s)
		if err != nil {
			t.Skip()
		}
		alone := toNumber(raw)
		wrapped := toNumber(json.RawMessage("[" + string(raw) + "]"))

		if math.IsNaN(alone) != math.IsNaN(wrapped) || (!math.IsNaN(alone) && alone != wrapped) {
			t.Errorf("toNumber(%s) = %v but toNumber([%s]) = %v", raw, alone, raw, wrapped)
		}
	})
}
