// Copyright © 2020 AMIS Technologies
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package utils

import "math/big"

// ExtendedEuclidean returns (gcd, x, y) such that gcd = a*x + b*y.
func ExtendedEuclidean(a, b *big.Int) (gcd, x, y *big.Int) {
	gcd = new(big.Int)
	x = new(big.Int)
	y = new(big.Int)
	gcd.GCD(x, y, a, b)
	return gcd, x, y
}

// Gcd calculates the greatest common divisor via the Euclidean algorithm.
func Gcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// IsRelativePrime returns whether a and b are coprime.
func IsRelativePrime(a, b *big.Int) bool {
	return Gcd(a, b).Cmp(big1) == 0
}
