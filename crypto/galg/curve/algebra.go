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

package curve

import (
	"math/big"

	"github.com/getamis/galgebra/crypto/galg"
	"github.com/getamis/galgebra/crypto/utils"
)

// Parameters bundles a curve equation with its generator, subgroup order,
// and cofactor, the full set a CurveGroupAlgebra needs to construct itself.
type Parameters struct {
	Equation  Equation
	Generator Point
	Order     *utils.BigPrime
	Cofactor  *big.Int
}

// Algebra is the affine elliptic-curve group algebra: points under the
// chord-and-tangent law of its Equation.
type Algebra struct {
	galg.Base
	equation Equation
}

// New builds a curve group algebra from Parameters, rejecting a generator
// that is not on the curve or not a safe element of the resulting group.
func New(params Parameters) (*Algebra, error) {
	a := &Algebra{equation: params.Equation}

	if !params.Equation.IsPointOnCurve(params.Generator) {
		return nil, galg.ErrGeneratorNotOnCurve
	}

	a.Base = galg.NewBase(galg.Ops{
		Add:                a.addPoints,
		Neutral:            Infinity(),
		Generator:          params.Generator,
		IsPotentialElement: a.isPotentialElement,
		Cofactor:           params.Cofactor,
		Order:              params.Order,
		OrderBitLength:     utils.NumberLengthOf(params.Order.Int()).Bits(),
	})

	if !a.IsSafeElement(params.Generator) {
		return nil, galg.ErrInvalidGenerator
	}
	return a, nil
}

func (a *Algebra) addPoints(l, r galg.Element) (galg.Element, error) {
	lp, ok := l.(Point)
	if !ok {
		return nil, galg.ErrNotThisAlgebra(l)
	}
	rp, ok := r.(Point)
	if !ok {
		return nil, galg.ErrNotThisAlgebra(r)
	}
	return a.equation.Add(lp, rp)
}

func (a *Algebra) isPotentialElement(e galg.Element) bool {
	p, ok := e.(Point)
	if !ok {
		return false
	}
	return a.equation.IsPointOnCurve(p)
}

// Add delegates to the curve equation's addition law.
func (a *Algebra) Add(l, r galg.Element) (galg.Element, error) {
	return a.addPoints(l, r)
}

// Negate overrides the Base default (repeated doubling) with the curve
// equation's direct y-flip negation.
func (a *Algebra) Negate(e galg.Element) (galg.Element, error) {
	p, ok := e.(Point)
	if !ok {
		return nil, galg.ErrNotThisAlgebra(e)
	}
	return a.equation.Negate(p), nil
}

// ElementBitLength is twice the bit length of the field modulus: an affine
// point carries both an x- and a y-coordinate, each coordinate-width bits
// wide.
func (a *Algebra) ElementBitLength() int {
	return 2 * a.equation.Field().Modulus().BitLen()
}

// coordinateByteLength is the per-coordinate width, derived from the field
// modulus directly rather than from ElementBitLength (which covers both
// coordinates).
func (a *Algebra) coordinateByteLength() int {
	return (a.equation.Field().Modulus().BitLen() + 7) / 8
}

// SecurityLevel estimates the Pollard-rho discrete-log difficulty of the
// subgroup: half the bit length of its order.
func (a *Algebra) SecurityLevel() int {
	return a.Order().Int().BitLen() / 2
}

// ToBytes encodes an affine point as fixed-width little-endian x||y.
// Infinity has no encoding, matching the spec's point-at-infinity exclusion.
func (a *Algebra) ToBytes(e galg.Element) ([]byte, error) {
	p, ok := e.(Point)
	if !ok {
		return nil, galg.ErrNotThisAlgebra(e)
	}
	if p.IsInfinity() {
		return nil, galg.ErrInfinityHasNoEncoding
	}
	n := a.coordinateByteLength()
	buf := make([]byte, 2*n)
	xBytes := p.X().Bytes()
	yBytes := p.Y().Bytes()
	copy(buf[n-len(xBytes):n], xBytes)
	reverse(buf[:n])
	copy(buf[2*n-len(yBytes):2*n], yBytes)
	reverse(buf[n : 2*n])
	return buf, nil
}

// FromBytes decodes a fixed-width little-endian x||y affine point and
// validates it lies on the curve.
func (a *Algebra) FromBytes(buf []byte) (galg.Element, error) {
	n := a.coordinateByteLength()
	if len(buf) != 2*n {
		return nil, galg.ErrInvalidEncodingLength(len(buf), 2*n)
	}
	xBytes := make([]byte, n)
	yBytes := make([]byte, n)
	copy(xBytes, buf[:n])
	copy(yBytes, buf[n:])
	reverse(xBytes)
	reverse(yBytes)
	x := new(big.Int).SetBytes(xBytes)
	y := new(big.Int).SetBytes(yBytes)
	p := NewAffine(x, y)
	if !a.isPotentialElement(p) {
		return nil, galg.ErrPointNotOnCurve(p)
	}
	return p, nil
}

func reverse(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
