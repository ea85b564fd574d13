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

// Package multiplicative implements the GroupAlgebra contract over the
// multiplicative group of integers modulo a prime: elements are integers in
// [1, p-1] and Add is modular multiplication.
package multiplicative

import (
	"math"
	"math/big"

	"github.com/getamis/galgebra/crypto/field"
	"github.com/getamis/galgebra/crypto/galg"
	"github.com/getamis/galgebra/crypto/utils"
)

// Element is an integer element of Z_p^*.
type Element struct {
	v *big.Int
}

// NewElement wraps a raw integer as a multiplicative Element.
func NewElement(v *big.Int) Element {
	return Element{v: new(big.Int).Set(v)}
}

// Int returns the wrapped integer. Callers must not mutate the result.
func (e Element) Int() *big.Int {
	return e.v
}

// Equal compares the wrapped integers.
func (e Element) Equal(other galg.Element) bool {
	o, ok := other.(Element)
	if !ok {
		return false
	}
	return e.v.Cmp(o.v) == 0
}

func (e Element) String() string {
	return e.v.String()
}

// Algebra is the multiplicative-group GroupAlgebra: state is the prime p,
// the subgroup order q, the generator g, and the derived cofactor (p-1)/q.
type Algebra struct {
	galg.Base

	field *field.Field
	order *utils.BigPrime
}

var one = big.NewInt(1)

// New builds the algebra over field p with subgroup order q and generator
// g, failing with ErrInvalidGenerator if g is not a safe element (order
// exactly q).
func New(p *utils.BigPrime, order *utils.BigPrime, generator *big.Int) (*Algebra, error) {
	f := field.New(p)
	cofactor := new(big.Int).Div(new(big.Int).Sub(p.Int(), one), order.Int())

	a := &Algebra{field: f, order: order}
	a.Base = galg.NewBase(galg.Ops{
		Add:                a.addElements,
		Neutral:            NewElement(one),
		Generator:          NewElement(generator),
		IsPotentialElement: a.isPotentialElement,
		Cofactor:           cofactor,
		Order:              order,
		OrderBitLength:     utils.NumberLengthOf(order.Int()).Bits(),
	})

	if !a.IsSafeElement(NewElement(generator)) {
		return nil, galg.ErrInvalidGenerator
	}
	return a, nil
}

func (a *Algebra) addElements(l, r galg.Element) (galg.Element, error) {
	lv, ok := l.(Element)
	if !ok {
		return nil, galg.ErrInvalidGenerator
	}
	rv, ok := r.(Element)
	if !ok {
		return nil, galg.ErrInvalidGenerator
	}
	return NewElement(a.field.Mul(lv.v, rv.v)), nil
}

func (a *Algebra) isPotentialElement(e galg.Element) bool {
	v, ok := e.(Element)
	if !ok {
		return false
	}
	return v.v.Sign() > 0 && v.v.Cmp(a.field.Modulus()) < 0
}

// Add is (l*r) mod p.
func (a *Algebra) Add(l, r galg.Element) (galg.Element, error) {
	return a.addElements(l, r)
}

// Negate computes the modular inverse via extended Euclid, reduced into [0, p).
func (a *Algebra) Negate(e galg.Element) (galg.Element, error) {
	v, ok := e.(Element)
	if !ok || !a.isPotentialElement(e) {
		return nil, &galg.Error{Kind: galg.InvalidElement, Argument: e}
	}
	return NewElement(a.field.Inverse(v.v)), nil
}

// ElementBitLength is bitlen(p).
func (a *Algebra) ElementBitLength() int {
	return utils.NumberLengthOf(a.field.Modulus()).Bits()
}

// FromBytes decodes a signed two's-complement little-endian integer.
func (a *Algebra) FromBytes(buf []byte) (galg.Element, error) {
	v := utils.DecodeSignedLittleEndian(buf)
	e := NewElement(v)
	if !a.isPotentialElement(e) {
		return nil, &galg.Error{Kind: galg.InvalidEncoding, Argument: buf}
	}
	return e, nil
}

// ToBytes encodes as a signed two's-complement little-endian integer.
func (a *Algebra) ToBytes(e galg.Element) ([]byte, error) {
	v, ok := e.(Element)
	if !ok {
		return nil, &galg.Error{Kind: galg.InvalidElement, Argument: e}
	}
	return utils.EncodeSignedLittleEndian(v.v), nil
}

// SecurityLevel is min(nfsLevel(p), 2*bitlen(q)), the smaller of the
// number-field-sieve estimate against p and the Pollard-rho estimate
// against q.
func (a *Algebra) SecurityLevel() int {
	nfs := nfsLevel(a.field.Modulus())
	rho := 2 * utils.NumberLengthOf(a.order.Int()).Bits()
	if nfs < rho {
		return nfs
	}
	return rho
}

// nfsLevel estimates the number-field-sieve security level of a
// multiplicative-group modulus p: floor((1.9 * ln(p)^(1/3) * lnln(p)^(2/3)) / ln2).
func nfsLevel(p *big.Int) int {
	lnP := naturalLog(p)
	lnLnP := math.Log(lnP)
	level := 1.9 * math.Pow(lnP, 1.0/3.0) * math.Pow(lnLnP, 2.0/3.0) / math.Ln2
	return int(math.Floor(level))
}

// naturalLog computes ln(x) for a positive big.Int via its float64
// approximation, which is adequate for the security-level heuristic (not a
// cryptographic computation).
func naturalLog(x *big.Int) float64 {
	f := new(big.Float).SetInt(x)
	mantissa, exp := f.MantExp(nil)
	m, _ := mantissa.Float64()
	return math.Log(m) + float64(exp)*math.Ln2
}

// PrimeLengthForSecurity solves 1.9*z^(1/3)*(ln z)^(2/3) = lambda*ln2 for
// z = ln(2^l) by Newton's method, then returns l = ceil(z / ln2),
// floored at 2*lambda.
func PrimeLengthForSecurity(lambda int) int {
	target := float64(lambda) * math.Ln2
	z := 50.0 // initial guess
	f := func(z float64) float64 {
		return 1.9*math.Pow(z, 1.0/3.0)*math.Pow(math.Log(z), 2.0/3.0) - target
	}
	df := func(z float64) float64 {
		h := 1e-6
		return (f(z+h) - f(z-h)) / (2 * h)
	}
	for i := 0; i < 100; i++ {
		fz := f(z)
		d := df(z)
		if d == 0 {
			break
		}
		next := z - fz/d
		if next <= 0 {
			next = z / 2
		}
		if math.Abs(next-z) < 1e-9 {
			z = next
			break
		}
		z = next
	}
	l := int(math.Ceil(z / math.Ln2))
	if l < 2*lambda {
		return 2 * lambda
	}
	return l
}
