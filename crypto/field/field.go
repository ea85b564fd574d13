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

// Package field implements fixed-modulus prime-field arithmetic: add, sub,
// mul, square, pow and inverse, all reduced into [0, p). It is the shared
// arithmetic layer underneath every concrete group algebra.
package field

import (
	"math/big"

	"github.com/getamis/galgebra/crypto/utils"
)

// Field is a prime-field context: a fixed modulus plus its element byte length.
type Field struct {
	modulus           *utils.BigPrime
	elementByteLength int
}

// New builds a Field over the given prime modulus.
func New(modulus *utils.BigPrime) *Field {
	return &Field{
		modulus:           modulus,
		elementByteLength: utils.NumberLengthOf(modulus.Int()).Bytes(),
	}
}

// Modulus returns the field's prime modulus.
func (f *Field) Modulus() *big.Int {
	return f.modulus.Int()
}

// ElementByteLength returns the fixed-width byte length of an element.
func (f *Field) ElementByteLength() int {
	return f.elementByteLength
}

func (f *Field) reduce(x *big.Int) *big.Int {
	r := new(big.Int).Mod(x, f.modulus.Int())
	if r.Sign() < 0 {
		r.Add(r, f.modulus.Int())
	}
	return r
}

// Add returns (x+y) mod p.
func (f *Field) Add(x, y *big.Int) *big.Int {
	return f.reduce(new(big.Int).Add(x, y))
}

// Sub returns (x-y) mod p.
func (f *Field) Sub(x, y *big.Int) *big.Int {
	return f.reduce(new(big.Int).Sub(x, y))
}

// Mul returns (x*y) mod p.
func (f *Field) Mul(x, y *big.Int) *big.Int {
	return f.reduce(new(big.Int).Mul(x, y))
}

// Square returns (x*x) mod p.
func (f *Field) Square(x *big.Int) *big.Int {
	return f.Mul(x, x)
}

// Negate returns (-x) mod p.
func (f *Field) Negate(x *big.Int) *big.Int {
	return f.reduce(new(big.Int).Neg(x))
}

// Pow returns (x^k) mod p.
func (f *Field) Pow(x, k *big.Int) *big.Int {
	return new(big.Int).Exp(x, k, f.modulus.Int())
}

// Inverse returns the modular inverse of x via extended Euclid: compute
// (g, _, r) = extgcd(p, x); the result is (r mod p + p) mod p.
func (f *Field) Inverse(x *big.Int) *big.Int {
	_, _, r := utils.ExtendedEuclidean(f.modulus.Int(), x)
	return f.reduce(r)
}

// Contains reports whether 0 <= x < p.
func (f *Field) Contains(x *big.Int) bool {
	return x.Sign() >= 0 && x.Cmp(f.modulus.Int()) < 0
}
