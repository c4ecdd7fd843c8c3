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

// maxExactOdd is 2^53. Every float64 integer above it is even.
const maxExactOdd = 1 << 53

// IsPrime reports whether n is an integer >= 2 with no divisor in
// [2, floor(sqrt(n))]. Non-integers and values below 2 are not prime.
func IsPrime(n float64) bool {
	if !IsInteger(n) || n < 2 {
		return false
	}
	if n > maxExactOdd {
		return false
	}
	return isPrimeUint(uint64(n))
}

func isPrimeUint(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	for i := uint64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
