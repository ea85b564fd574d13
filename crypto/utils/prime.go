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
	"math"
	"math/big"

	"github.com/getamis/galgebra/logger"
)

// DefaultPrimalityError is the default false-positive probability bound for IsProbablyPrime.
const DefaultPrimalityError = 1e-10

// smallPrimes is the hard-coded trial-division sieve, primes in [3, 113].
var smallPrimes = []int64{
	3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53,
	59, 61, 67, 71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
}

// IsCompositeWitness reports whether a is a Miller-Rabin witness of
// compositeness for n = q*2^k + 1: true iff neither a^q mod n = 1 nor any of
// a^(q*2^i) mod n = n-1 for i in [0,k).
func IsCompositeWitness(a, q *big.Int, k int, n *big.Int) bool {
	x := new(big.Int).Exp(a, q, n)
	nMinus1 := new(big.Int).Sub(n, big1)
	if x.Cmp(big1) == 0 {
		return false
	}
	for i := 0; i < k; i++ {
		if x.Cmp(nMinus1) == 0 {
			return false
		}
		x = new(big.Int).Exp(x, big2, n)
	}
	return true
}

// IsProbablyPrime runs the Miller-Rabin test with the given false-positive
// probability bound eps, per spec.md section 4.2.
func IsProbablyPrime(n *big.Int, rng *RandomSource, eps float64) (bool, error) {
	if n.Sign() <= 0 {
		return false, nil
	}
	if n.Bit(0) == 0 {
		return n.Cmp(big2) == 0, nil
	}
	if isPowerOfTwo(n) {
		return false, nil
	}

	for _, sp := range smallPrimes {
		p := big.NewInt(sp)
		if n.Cmp(p) == 0 {
			return true, nil
		}
		m := new(big.Int).Mod(n, p)
		if m.Sign() == 0 {
			return false, nil
		}
	}

	nMinus1 := new(big.Int).Sub(n, big1)
	q := new(big.Int).Set(nMinus1)
	k := 0
	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		k++
	}

	rounds := 1 + int(math.Ceil(-math.Log(eps)/math.Log(4)))
	two := big.NewInt(2)
	upper := new(big.Int).Sub(n, two)
	for i := 0; i < rounds; i++ {
		a, err := rng.Between(two, upper)
		if err != nil {
			return false, err
		}
		if IsCompositeWitness(a, q, k, n) {
			logger.Logger().Debug("Miller-Rabin witness found compositeness", "round", i)
			return false, nil
		}
	}
	logger.Logger().Debug("Miller-Rabin rounds all passed", "rounds", rounds)
	return true, nil
}

func isPowerOfTwo(n *big.Int) bool {
	if n.Sign() <= 0 {
		return false
	}
	m := new(big.Int).Sub(n, big1)
	m.And(m, n)
	return m.Sign() == 0
}

// RandomPrimeOfLength samples a probable prime of the given bit length. It
// draws an odd candidate of exactly that bit length with the top bit set,
// reduces it into the residue class 1 or 5 mod 6 (any other residue implies
// divisibility by 2 or 3), and steps by the alternating 4,2,4,2,... pattern
// that preserves that residue class until IsProbablyPrime accepts.
func RandomPrimeOfLength(rng *RandomSource, length int) (*BigPrime, error) {
	candidate, err := rng.WithBitLength(length)
	if err != nil {
		return nil, err
	}
	candidate.SetBit(candidate, 0, 1)

	six := big.NewInt(6)
	mod6 := new(big.Int).Mod(candidate, six).Int64()
	switch mod6 {
	case 1, 5:
		// already in an admissible residue class
	case 3:
		candidate.Add(candidate, big2)
	default:
		// even residues (0,2,4) cannot occur since candidate is odd; shift
		// to the nearest class 1 or 5 by adding the odd distance.
		candidate.Add(candidate, big2)
	}

	step := int64(4)
	if new(big.Int).Mod(candidate, six).Int64() == 1 {
		step = 4
	} else {
		step = 2
	}

	retries := 0
	for {
		ok, err := IsProbablyPrime(candidate, rng, DefaultPrimalityError)
		if err != nil {
			return nil, err
		}
		if ok {
			logger.Logger().Debug("found random prime", "length", length, "retries", retries)
			return &BigPrime{value: candidate, checked: true}, nil
		}
		retries++
		candidate = new(big.Int).Add(candidate, big.NewInt(step))
		if step == 4 {
			step = 2
		} else {
			step = 4
		}
	}
}
