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

	"github.com/getamis/galgebra/logger"
)

// ErrSmallSafePrime is returned if the requested safe-prime size is too small.
var ErrSmallSafePrime = errors.New("safe-prime size must be at least 3 bits")

// SafePrime pairs p = 2q+1 where both p and q are prime.
type SafePrime struct {
	P *BigPrime
	Q *BigPrime
}

// GenerateRandomSafePrime scans candidate odd q of bit length pbits-1,
// accepting the first candidate where both q and p=2q+1 pass
// IsProbablyPrime, exactly the "scan candidate q, test q and 2q+1"
// strategy multiplicative.CreateForSecurity needs.
func GenerateRandomSafePrime(rng *RandomSource, pbits int) (*SafePrime, error) {
	if pbits < 3 {
		return nil, ErrSmallSafePrime
	}

	q, err := rng.WithBitLength(pbits - 1)
	if err != nil {
		return nil, err
	}
	q.SetBit(q, 0, 1)

	retries := 0
	for {
		p := new(big.Int).Lsh(q, 1)
		p.Add(p, big1)
		if p.BitLen() == pbits {
			qOk, err := IsProbablyPrime(q, rng, DefaultPrimalityError)
			if err != nil {
				return nil, err
			}
			if qOk {
				pOk, err := IsProbablyPrime(p, rng, DefaultPrimalityError)
				if err != nil {
					return nil, err
				}
				if pOk {
					logger.Logger().Debug("found random safe prime", "bits", pbits, "retries", retries)
					return &SafePrime{
						P: &BigPrime{value: p, checked: true},
						Q: &BigPrime{value: q, checked: true},
					}, nil
				}
			}
		}
		retries++
		q.Add(q, big2)
	}
}
