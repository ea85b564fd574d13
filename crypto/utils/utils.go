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

// Package utils gathers the arbitrary-precision helpers the group algebras
// are built on: number lengths, extended-Euclid modular inverse, the
// injected RandomSource, and the Miller-Rabin primality test with safe-prime
// search.
package utils

import (
	"errors"
	"math/big"
)

var (
	// ErrInvalidInput is returned if the input is invalid.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotInRange is returned if the value is not in the given range.
	ErrNotInRange = errors.New("not in range")
	// ErrLargerFloor is returned if the floor is larger than ceil.
	ErrLargerFloor = errors.New("larger floor")
	// ErrExceedMaxRetry is returned if we retried over the retry budget.
	ErrExceedMaxRetry = errors.New("exceed max retries")

	big0 = big.NewInt(0)
	big1 = big.NewInt(1)
	big2 = big.NewInt(2)
	big4 = big.NewInt(4)
)

// InRange checks whether checkValue lies in [floor, ceil).
func InRange(checkValue, floor, ceil *big.Int) error {
	if ceil.Cmp(floor) < 1 {
		return ErrLargerFloor
	}
	if checkValue.Cmp(floor) < 0 {
		return ErrNotInRange
	}
	if checkValue.Cmp(ceil) > -1 {
		return ErrNotInRange
	}
	return nil
}
