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
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	decimalLiteral = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)$`)
	radixLiteral   = regexp.MustCompile(`^0(?:[xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// toNumber coerces a JSON value to a float64 with loose, JavaScript
// Number() rules: null and false are 0, true is 1, strings are parsed
// leniently, a single-element array takes the value of its element, and
// anything else is NaN.
func toNumber(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return math.NaN()
	}

	switch raw[0] {
	case 'n', 'f':
		return 0
	case 't':
		return 1
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return math.NaN()
		}
		return parseNumber(s)
	case '[':
		return arrayToNumber(raw)
	case '{':
		return math.NaN()
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN()
		}
		return f
	}
}

// arrayToNumber follows the array -> string -> number path: [] is "" (0),
// [x] is x's string form, and anything longer contains a comma (NaN).
func arrayToNumber(raw json.RawMessage) float64 {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return math.NaN()
	}

	switch len(elems) {
	case 0:
		return 0
	case 1:
		return elementToNumber(elems[0])
	default:
		return math.NaN()
	}
}

// elementToNumber coerces the sole element of an array. Unlike a top-level
// value it is stringified first, so null becomes "" and booleans become
// words.
func elementToNumber(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return math.NaN()
	}

	switch raw[0] {
	case 'n':
		return 0
	case 't', 'f':
		return math.NaN()
	default:
		return toNumber(raw)
	}
}

// parseNumber parses a string the way Number(string) does.
func parseNumber(s string) float64 {
	s = strings.TrimFunc(s, isSpace)
	if s == "" {
		return 0
	}

	if radixLiteral.MatchString(s) {
		base := 16
		switch s[1] {
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		n, ok := new(big.Int).SetString(s[2:], base)
		if !ok {
			return math.NaN()
		}
		f, _ := new(big.Float).SetInt(n).Float64()
		return f
	}

	if !decimalLiteral.MatchString(s) {
		return math.NaN()
	}

	if strings.HasSuffix(s, "Infinity") {
		if s[0] == '-' {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return r == '\uFEFF' || unicode.IsSpace(r)
}

// toBigInt converts an integral float64 exactly. Callers check
// numeric.IsInteger first.
func toBigInt(x float64) *big.Int {
	n, _ := new(big.Float).SetFloat64(x).Int(nil)
	return n
}
