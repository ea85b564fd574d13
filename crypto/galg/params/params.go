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

// Package params supplies the two curves named explicitly by the
// specification as built-in constructors: NIST P-256, an affine
// short-Weierstrass curve of cofactor 1, and Curve25519, an x-only
// Montgomery curve of cofactor 8.
package params

import (
	"math/big"

	"github.com/getamis/galgebra/crypto/field"
	"github.com/getamis/galgebra/crypto/galg/curve"
	"github.com/getamis/galgebra/crypto/galg/xmontgomery"
	"github.com/getamis/galgebra/crypto/utils"
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("params: invalid hex constant " + s)
	}
	return n
}

// P256 returns the affine short-Weierstrass group algebra for NIST P-256:
// y^2 = x^3 - 3x + b over F_p, cofactor 1.
func P256() (*curve.Algebra, error) {
	p := utils.UncheckedBigPrime(mustHex("ffffffff00000001000000000000000000000000ffffffffffffffffffffffff"))
	f := field.New(p)
	a := new(big.Int).Sub(p.Int(), big.NewInt(3))
	b := mustHex("5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b")
	order := utils.UncheckedBigPrime(mustHex("ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"))
	gx := mustHex("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296")
	gy := mustHex("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5")

	return curve.New(curve.Parameters{
		Equation:  curve.NewWeierstrass(f, a, b),
		Generator: curve.NewAffine(gx, gy),
		Order:     order,
		Cofactor:  big.NewInt(1),
	})
}

// Curve25519 returns the x-only Montgomery ladder group algebra for
// Curve25519: By^2 = x^3 + Ax^2 + x over F_p, p = 2^255 - 19, cofactor 8.
func Curve25519() (*xmontgomery.Algebra, error) {
	p := utils.UncheckedBigPrime(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19)))
	f := field.New(p)
	a := big.NewInt(486662)
	b := big.NewInt(1)
	order := utils.UncheckedBigPrime(mustHex("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed"))
	gx := big.NewInt(9)

	return xmontgomery.New(f, a, b, gx, order, big.NewInt(8))
}
