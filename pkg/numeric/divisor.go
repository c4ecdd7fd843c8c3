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

import "math/big"

// BinaryFunc combines two integers into a new one. Implementations must not
// modify their arguments.
type BinaryFunc func(a, b *big.Int) *big.Int

// GCD returns the greatest common divisor of |a| and |b| using the Euclidean
// algorithm. GCD(a, 0) is |a|.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Rem(x, y)
		x, y = y, x
	}
	return x
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	prod := new(big.Int).Mul(a, b)
	prod.Abs(prod)
	return prod.Quo(prod, GCD(a, b))
}

// Reduce folds fn over nums from left to right. The seed is nums[0], and the
// fold still visits nums[0], so Reduce([x], GCD) is |x|. An empty input
// reduces to 0.
func Reduce(nums []*big.Int, fn BinaryFunc) *big.Int {
	if len(nums) == 0 {
		return new(big.Int)
	}
	acc := new(big.Int).Set(nums[0])
	for _, n := range nums {
		acc = fn(acc, n)
	}
	return acc
}
