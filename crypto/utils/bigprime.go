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

import (
	"errors"
	"math/big"
)

// ErrNotPrime is returned when a value fails the primality test on the certified path.
var ErrNotPrime = errors.New("value did not pass the primality test")

// BigPrime is a newtype guarding "this integer has passed the primality test"
// (or was marked unchecked by the caller).
type BigPrime struct {
	value   *big.Int
	checked bool
}

// NewBigPrime certifies n with the default error bound and wraps it. It fails
// with ErrNotPrime if n does not pass IsProbablyPrime.
func NewBigPrime(n *big.Int, rng *RandomSource) (*BigPrime, error) {
	ok, err := IsProbablyPrime(n, rng, DefaultPrimalityError)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotPrime
	}
	return &BigPrime{value: new(big.Int).Set(n), checked: true}, nil
}

// UncheckedBigPrime wraps n as a BigPrime without running the primality
// test, trusting the caller (e.g. well-known built-in curve orders).
func UncheckedBigPrime(n *big.Int) *BigPrime {
	return &BigPrime{value: new(big.Int).Set(n), checked: false}
}

// Int returns the wrapped value. Callers must not mutate the result.
func (p *BigPrime) Int() *big.Int {
	return p.value
}

// Checked reports whether this value actually ran the primality test.
func (p *BigPrime) Checked() bool {
	return p.checked
}

// Cmp compares the wrapped values.
func (p *BigPrime) Cmp(other *BigPrime) int {
	return p.value.Cmp(other.value)
}
