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

package numeric

import (
	"math"
	"math/big"
)

// IsInteger reports whether x is a finite value with no fractional part.
func IsInteger(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}
	return x == math.Trunc(x)
}

// Fibonacci returns the first n terms of 0, 1, 1, 2, 3, ...
//
// If n is not a non-negative integer the result is an empty slice. The slice
// is never nil so it always serializes as [].
func Fibonacci(n float64) []*big.Int {
	if !IsInteger(n) || n < 0 {
		return []*big.Int{}
	}

	count := int(n)
	res := make([]*big.Int, 0, count)
	a, b := big.NewInt(0), big.NewInt(1)
	for range count {
		res = append(res, new(big.Int).Set(a))
		a.Add(a, b)
		a, b = b, a
	}
	return res
}
