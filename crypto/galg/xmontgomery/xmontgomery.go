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

// Package xmontgomery implements the x-only Montgomery-ladder group
// algebra: elements are field x-coordinates only, scalar multiplication
// runs the ladder instead of Base's default double-and-add-always, and
// Add is unsupported because the y-coordinate needed to combine two
// distinct points is never carried.
package xmontgomery

import (
	"math/big"

	"github.com/getamis/galgebra/crypto/field"
	"github.com/getamis/galgebra/crypto/galg"
	"github.com/getamis/galgebra/crypto/utils"
)

// Element is a Montgomery x-only coordinate, or the neutral (point at
// infinity) marker. Neutral is tracked explicitly rather than aliased to
// any field value, since every field element is itself a potential
// x-coordinate.
type Element struct {
	x       *big.Int
	neutral bool
}

// NewElement wraps a field x-coordinate.
func NewElement(x *big.Int) Element {
	return Element{x: new(big.Int).Set(x)}
}

// neutralElement is the point-at-infinity marker.
func neutralElement() Element {
	return Element{neutral: true}
}

// X returns the x-coordinate. Nil for the neutral element.
func (e Element) X() *big.Int {
	if e.neutral {
		return nil
	}
	return e.x
}

// IsNeutral reports whether e is the point at infinity.
func (e Element) IsNeutral() bool {
	return e.neutral
}

// Equal compares x-coordinates, or neutrality.
func (e Element) Equal(other galg.Element) bool {
	o, ok := other.(Element)
	if !ok {
		return false
	}
	if e.neutral || o.neutral {
		return e.neutral == o.neutral
	}
	return e.x.Cmp(o.x) == 0
}

func (e Element) String() string {
	if e.neutral {
		return "Infinity"
	}
	return e.x.String()
}

// Algebra is the x-only Montgomery curve group algebra: By^2=x^3+Ax^2+x,
// with addition and doubling performed in x-only (projective-free affine)
// form via the standard differential-addition formulae, and scalar
// multiplication via the Montgomery ladder.
type Algebra struct {
	galg.Base
	a, b  *big.Int
	f     *field.Field
}

// New builds an x-only Montgomery algebra over field f with coefficients
// A, B, generator x-coordinate gx, subgroup order and cofactor. The
// generator is validated as a safe element once Base is wired up.
func New(f *field.Field, a, b, gx *big.Int, order *utils.BigPrime, cofactor *big.Int) (*Algebra, error) {
	alg := &Algebra{a: a, b: b, f: f}
	generator := NewElement(gx)

	if !alg.isPotentialElement(generator) {
		return nil, galg.ErrGeneratorNotOnCurve
	}

	alg.Base = galg.NewBase(galg.Ops{
		Add:                alg.addElements,
		Neutral:            neutralElement(),
		Generator:          generator,
		IsPotentialElement: alg.isPotentialElement,
		Cofactor:           cofactor,
		Order:              order,
		OrderBitLength:     utils.NumberLengthOf(order.Int()).Bits(),
	})

	if !alg.IsSafeElement(generator) {
		return nil, galg.ErrInvalidGenerator
	}
	return alg, nil
}

// addElements is only ever invoked by Base's machinery for the neutral
// bookkeeping tests (Add(neutral, neutral), Add(neutral, e)); two distinct
// non-neutral x-only coordinates cannot be combined without the discarded
// y-coordinate, so any other pairing is UnsupportedOperation.
func (a *Algebra) addElements(l, r galg.Element) (galg.Element, error) {
	lv, ok := l.(Element)
	if !ok {
		return nil, galg.ErrNotThisAlgebra(l)
	}
	rv, ok := r.(Element)
	if !ok {
		return nil, galg.ErrNotThisAlgebra(r)
	}
	if lv.neutral {
		return rv, nil
	}
	if rv.neutral {
		return lv, nil
	}
	return nil, galg.ErrUnsupportedOperation("xmontgomery.Add")
}

// Add is unsupported for x-only elements: the contract exposes it so the
// Algebra interface is satisfied, but it always fails except through the
// neutral-element identities Base itself relies on.
func (a *Algebra) Add(l, r galg.Element) (galg.Element, error) {
	return a.addElements(l, r)
}

func (a *Algebra) isPotentialElement(e galg.Element) bool {
	v, ok := e.(Element)
	if !ok {
		return false
	}
	if v.neutral {
		return true
	}
	return a.f.Contains(v.x)
}

// ElementBitLength is the bit length of the field modulus.
func (a *Algebra) ElementBitLength() int {
	return a.f.Modulus().BitLen()
}

func (a *Algebra) byteLength() int {
	return (a.ElementBitLength() + 7) / 8
}

// ToBytes encodes the x-coordinate as a fixed-width little-endian buffer.
// The neutral element has no encoding.
func (a *Algebra) ToBytes(e galg.Element) ([]byte, error) {
	v, ok := e.(Element)
	if !ok {
		return nil, galg.ErrNotThisAlgebra(e)
	}
	if v.neutral {
		return nil, galg.ErrInfinityHasNoEncoding
	}
	n := a.byteLength()
	buf := make([]byte, n)
	xBytes := v.x.Bytes()
	copy(buf[n-len(xBytes):], xBytes)
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf, nil
}

// FromBytes decodes a fixed-width little-endian x-coordinate.
func (a *Algebra) FromBytes(buf []byte) (galg.Element, error) {
	n := a.byteLength()
	if len(buf) != n {
		return nil, galg.ErrInvalidEncodingLength(len(buf), n)
	}
	rev := make([]byte, n)
	copy(rev, buf)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	x := new(big.Int).SetBytes(rev)
	e := NewElement(x)
	if !a.isPotentialElement(e) {
		return nil, galg.ErrPointNotOnCurve(x)
	}
	return e, nil
}

// SecurityLevel estimates the Pollard-rho discrete-log difficulty of the
// subgroup: half the bit length of its order.
func (a *Algebra) SecurityLevel() int {
	return a.Order().Int().BitLen() / 2
}

// doubleX returns the x-only doubling of P via the Montgomery
// differential-doubling formula:
//
//	x2 = ((xP^2-1)^2) / (4*xP*(xP^2+A*xP+1))
//
// Doubling the neutral element leaves it unchanged.
func (a *Algebra) doubleX(p Element) Element {
	if p.neutral {
		return p
	}
	f := a.f
	xP := p.x
	xp2 := f.Square(xP)
	num := f.Square(f.Sub(xp2, big.NewInt(1)))
	inner := f.Add(f.Add(xp2, f.Mul(a.a, xP)), big.NewInt(1))
	den := f.Mul(big.NewInt(4), f.Mul(xP, inner))
	return NewElement(f.Mul(num, f.Inverse(den)))
}

// addX returns the x-only differential addition of P and Q given the
// x-coordinate of their difference P-Q, via the Montgomery
// differential-addition formula:
//
//	x3 = ((xP-1)(xQ+1)+(xP+1)(xQ-1))^2 / (xDiff * ((xP-1)(xQ+1)-(xP+1)(xQ-1))^2)
//
// Adding the neutral element to Q returns Q unchanged, and symmetrically for P.
func (a *Algebra) addX(p, q, diff Element) Element {
	if p.neutral {
		return q
	}
	if q.neutral {
		return p
	}
	f := a.f
	xP, xQ, xDiff := p.x, q.x, diff.x
	t1 := f.Mul(f.Sub(xP, big.NewInt(1)), f.Add(xQ, big.NewInt(1)))
	t2 := f.Mul(f.Add(xP, big.NewInt(1)), f.Sub(xQ, big.NewInt(1)))
	sum := f.Square(f.Add(t1, t2))
	diffSq := f.Square(f.Sub(t1, t2))
	den := f.Mul(xDiff, diffSq)
	return NewElement(f.Mul(sum, f.Inverse(den)))
}

// MultiplyScalarRaw overrides Base's default double-and-add-always with the
// x-only Montgomery ladder. It carries the invariant pair (x1, x2) =
// (m*P, (m+1)*P) through exactly factorBitLength iterations regardless of
// k's value, starting from (neutral, P) so a scalar narrower than
// factorBitLength is handled correctly, and swapping the pair based on the
// current bit rather than branching control flow on it.
func (a *Algebra) MultiplyScalarRaw(e galg.Element, k *big.Int, factorBitLength int) (galg.Element, error) {
	v, ok := e.(Element)
	if !ok {
		return nil, galg.ErrNotThisAlgebra(e)
	}
	x1 := neutralElement()
	x2 := v

	for i := factorBitLength - 1; i >= 0; i-- {
		bit := k.Bit(i)
		if bit == 1 {
			x1, x2 = a.addX(x1, x2, v), a.doubleX(x2)
		} else {
			x1, x2 = a.doubleX(x1), a.addX(x1, x2, v)
		}
	}
	return x1, nil
}

// MultiplyScalar reduces k modulo Order and runs the ladder at OrderBitLength.
func (a *Algebra) MultiplyScalar(e galg.Element, k *big.Int) (galg.Element, error) {
	if k.Sign() < 0 {
		return nil, galg.ErrScalarOutOfRange(k)
	}
	reduced := new(big.Int).Mod(k, a.Order().Int())
	return a.MultiplyScalarRaw(e, reduced, a.OrderBitLength())
}

// MultiplyScalarBounded runs the ladder directly at the caller-declared
// factorBitLength, without reducing modulo Order.
func (a *Algebra) MultiplyScalarBounded(e galg.Element, k *big.Int, factorBitLength int) (galg.Element, error) {
	if k.Sign() < 0 {
		return nil, galg.ErrScalarOutOfRange(k)
	}
	if k.BitLen() > factorBitLength {
		return nil, galg.ErrScalarOutOfRange(k)
	}
	return a.MultiplyScalarRaw(e, k, factorBitLength)
}

// GenerateElement returns generator*k via the ladder.
func (a *Algebra) GenerateElement(k *big.Int) (galg.Element, error) {
	return a.MultiplyScalar(a.Generator(), k)
}

// Negate is UnsupportedOperation: x-only coordinates cannot distinguish a
// point from its negation (both share the same x).
func (a *Algebra) Negate(e galg.Element) (galg.Element, error) {
	return nil, galg.ErrUnsupportedOperation("xmontgomery.Negate")
}

// IsSafeElement overrides Base's default, which clears the cofactor via the
// generic double-and-add-always Add-based loop — unusable here since Add is
// only defined for the neutral element. It instead clears the cofactor with
// the ladder, the only scalar multiplication this algebra actually supports.
func (a *Algebra) IsSafeElement(e galg.Element) bool {
	if !a.isPotentialElement(e) {
		return false
	}
	cofactor := a.Cofactor()
	cofactorBits := cofactor.BitLen()
	if cofactorBits == 0 {
		cofactorBits = 1
	}
	scaled, err := a.MultiplyScalarRaw(e, cofactor, cofactorBits)
	if err != nil {
		return false
	}
	return !scaled.Equal(a.Neutral())
}

// GenerateRandomElement samples k uniformly in [1, order-1] and returns (k, generator*k).
func (a *Algebra) GenerateRandomElement(rng *utils.RandomSource) (*big.Int, galg.Element, error) {
	orderMinus1 := new(big.Int).Sub(a.Order().Int(), big.NewInt(1))
	k, err := rng.Between(big.NewInt(1), orderMinus1)
	if err != nil {
		return nil, nil, err
	}
	elem, err := a.GenerateElement(k)
	if err != nil {
		return nil, nil, err
	}
	return k, elem, nil
}
