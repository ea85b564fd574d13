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
	"io"
	"math/big"
)

// RandomSource draws uniform bytes from an injected reader. Its mutability
// is the caller's responsibility; a RandomSource is used by one caller at a
// time and does no locking of its own.
type RandomSource struct {
	reader io.Reader
}

// NewRandomSource wraps an io.Reader (typically crypto/rand.Reader) as a RandomSource.
func NewRandomSource(reader io.Reader) *RandomSource {
	return &RandomSource{reader: reader}
}

// Bytes fills buf with uniform random bytes.
func (r *RandomSource) Bytes(buf []byte) error {
	_, err := io.ReadFull(r.reader, buf)
	return err
}

// Between returns a uniform integer in [lo, hi] by rejection sampling.
func (r *RandomSource) Between(lo, hi *big.Int) (*big.Int, error) {
	if hi.Cmp(lo) < 0 {
		return nil, ErrInvalidInput
	}
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, big1)
	bitLen := span.BitLen()
	byteLen := (bitLen + 7) / 8
	buf := make([]byte, byteLen)
	mask := byte(0xff)
	if bitLen%8 != 0 {
		mask = byte(1<<uint(bitLen%8)) - 1
	}
	for {
		if err := r.Bytes(buf); err != nil {
			return nil, err
		}
		if byteLen > 0 {
			buf[0] &= mask
		}
		candidate := new(big.Int).SetBytes(buf)
		if candidate.Cmp(span) < 0 {
			return candidate.Add(candidate, lo), nil
		}
	}
}

// WithBitLength produces a uniformly random integer of exactly n bits, with
// the top bit forced to 1.
func (r *RandomSource) WithBitLength(n int) (*big.Int, error) {
	if n <= 0 {
		return nil, ErrInvalidInput
	}
	byteLen := (n + 7) / 8
	buf := make([]byte, byteLen)
	if err := r.Bytes(buf); err != nil {
		return nil, err
	}
	excess := byteLen*8 - n
	topMask := byte(0xff) >> uint(excess)
	buf[0] &= topMask
	topBit := byte(1) << uint(7-excess)
	buf[0] |= topBit
	return new(big.Int).SetBytes(buf), nil
}

// RandomPrime returns a probable prime of bit length n, per the primality
// test's error bound defaults.
func (r *RandomSource) RandomPrime(n int) (*BigPrime, error) {
	return RandomPrimeOfLength(r, n)
}
