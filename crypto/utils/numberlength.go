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

// NumberLength is a bit length with a derived byte length (ceiling division by 8).
type NumberLength struct {
	bits int
}

// NumberLengthFromBits builds a NumberLength from a bit count.
func NumberLengthFromBits(bits int) NumberLength {
	return NumberLength{bits: bits}
}

// NumberLengthFromBytes builds a NumberLength from a byte count.
func NumberLengthFromBytes(bytes int) NumberLength {
	return NumberLength{bits: bytes * 8}
}

// NumberLengthOf derives the bit length of x: floor(log2(max(x,1)))+1, zero maps to zero.
func NumberLengthOf(x *big.Int) NumberLength {
	if x.Sign() == 0 {
		return NumberLength{bits: 0}
	}
	return NumberLength{bits: new(big.Int).Abs(x).BitLen()}
}

// Bits returns the bit length.
func (l NumberLength) Bits() int {
	return l.bits
}

// Bytes returns the ceiling byte length: bits>>3, plus one if any of the low three bits is set.
func (l NumberLength) Bytes() int {
	b := l.bits >> 3
	if l.bits&0x7 != 0 {
		b++
	}
	return b
}

// Equal compares two NumberLength values by bit count.
func (l NumberLength) Equal(other NumberLength) bool {
	return l.bits == other.bits
}
