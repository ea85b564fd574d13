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

package galg

import (
	"math/big"

	"github.com/getamis/galgebra/crypto/utils"
)

// Element is a value belonging to some Algebra. Equal is only meaningful
// between elements of the same algebra.
type Element interface {
	Equal(other Element) bool
}

// Algebra is the polymorphic cyclic-group-of-prime-order contract. Every
// concrete algebra (multiplicative, affine Weierstrass/Montgomery curve,
// x-only Montgomery) implements it; Base supplies the operations that only
// need Add, Neutral, IsPotentialElement and Cofactor once, for every
// implementation to reuse.
type Algebra interface {
	Generator() Element
	Order() *utils.BigPrime
	Cofactor() *big.Int
	Neutral() Element
	ElementBitLength() int
	OrderBitLength() int
	SecurityLevel() int

	Add(l, r Element) (Element, error)
	Negate(e Element) (Element, error)
	MultiplyScalar(e Element, k *big.Int) (Element, error)
	MultiplyScalarBounded(e Element, k *big.Int, factorBitLength int) (Element, error)
	GenerateElement(k *big.Int) (Element, error)
	IsPotentialElement(e Element) bool
	IsSafeElement(e Element) bool
	GenerateRandomElement(rng *utils.RandomSource) (*big.Int, Element, error)
	FromBytes(buf []byte) (Element, error)
	ToBytes(e Element) ([]byte, error)
}

// Ops is the small set of function pointers a concrete algebra must supply
// to Base so it can provide the default scalar-multiplication, negation,
// generate and random-element algorithms. This is the language-neutral
// "structure holding function pointers to the concrete operations" strategy
// called out in the design notes, standing in for a trait default method.
type Ops struct {
	Add                func(l, r Element) (Element, error)
	Neutral            Element
	Generator          Element
	IsPotentialElement func(e Element) bool
	Cofactor           *big.Int
	Order              *utils.BigPrime
	OrderBitLength     int
}

// Base is embedded by every concrete algebra and implements the default
// methods of the contract purely in terms of Ops.
type Base struct {
	ops Ops
}

// NewBase builds a Base from the concrete algebra's Ops.
func NewBase(ops Ops) Base {
	return Base{ops: ops}
}

// Generator returns the group's standard generator.
func (b *Base) Generator() Element {
	return b.ops.Generator
}

// Order returns the group's prime order.
func (b *Base) Order() *utils.BigPrime {
	return b.ops.Order
}

// Cofactor returns the ratio of ambient-structure size to subgroup order.
func (b *Base) Cofactor() *big.Int {
	return b.ops.Cofactor
}

// Neutral returns the group's identity element.
func (b *Base) Neutral() Element {
	return b.ops.Neutral
}

// OrderBitLength returns the bit length of Order.
func (b *Base) OrderBitLength() int {
	return b.ops.OrderBitLength
}

// IsPotentialElement reports implementation-specific membership in the
// ambient structure; always true for Neutral.
func (b *Base) IsPotentialElement(e Element) bool {
	return b.ops.IsPotentialElement(e)
}

// MultiplyScalarRaw is the default double-and-add-always scalar
// multiplication: it always performs exactly factorBitLength iterations,
// independent of k's value, selecting between the doubled accumulator and
// the doubled-then-added one by the current bit rather than branching
// control flow on it. Scalar k MUST satisfy 0 <= k < 2^factorBitLength;
// callers are expected to have validated that already (MultiplyScalar,
// MultiplyScalarBounded).
func (b *Base) MultiplyScalarRaw(e Element, k *big.Int, factorBitLength int) (Element, error) {
	r0 := b.ops.Neutral
	for i := factorBitLength - 1; i >= 0; i-- {
		doubled, err := b.ops.Add(r0, r0)
		if err != nil {
			return nil, err
		}
		added, err := b.ops.Add(doubled, e)
		if err != nil {
			return nil, err
		}
		if k.Bit(i) == 1 {
			r0 = added
		} else {
			r0 = doubled
		}
	}
	return r0, nil
}

// MultiplyScalar reduces k modulo Order and runs the raw routine at
// OrderBitLength, failing with ScalarOutOfRange if k is negative.
func (b *Base) MultiplyScalar(e Element, k *big.Int) (Element, error) {
	if k.Sign() < 0 {
		return nil, newError(ScalarOutOfRange, k, "scalar must be non-negative")
	}
	reduced := new(big.Int).Mod(k, b.ops.Order.Int())
	return b.MultiplyScalarRaw(e, reduced, b.ops.OrderBitLength)
}

// MultiplyScalarBounded fails with ScalarOutOfRange if k is negative or
// wider than factorBitLength; otherwise it runs the raw routine directly,
// without reducing k modulo Order.
func (b *Base) MultiplyScalarBounded(e Element, k *big.Int, factorBitLength int) (Element, error) {
	if k.Sign() < 0 {
		return nil, newError(ScalarOutOfRange, k, "scalar must be non-negative")
	}
	if k.BitLen() > factorBitLength {
		return nil, newError(ScalarOutOfRange, k, "scalar exceeds the declared factor bit length")
	}
	return b.MultiplyScalarRaw(e, k, factorBitLength)
}

// Negate defaults to MultiplyScalarRaw(e, order-1, orderBitLength); concrete
// algebras with a cheaper negation (modular inverse, coordinate flip)
// override it directly instead of going through Base.
func (b *Base) Negate(e Element) (Element, error) {
	orderMinus1 := new(big.Int).Sub(b.ops.Order.Int(), big.NewInt(1))
	return b.MultiplyScalarRaw(e, orderMinus1, b.ops.OrderBitLength)
}

// GenerateElement returns generator * k.
func (b *Base) GenerateElement(k *big.Int) (Element, error) {
	return b.MultiplyScalar(b.ops.Generator, k)
}

// IsSafeElement reports whether e is a potential element whose order equals
// the group's declared order: IsPotentialElement(e) AND
// MultiplyScalarRaw(e, cofactor, bitlen(cofactor)) != neutral. The check
// runs unconditionally, even when cofactor = 1.
func (b *Base) IsSafeElement(e Element) bool {
	if !b.IsPotentialElement(e) {
		return false
	}
	cofactorBits := b.ops.Cofactor.BitLen()
	if cofactorBits == 0 {
		cofactorBits = 1
	}
	scaled, err := b.MultiplyScalarRaw(e, b.ops.Cofactor, cofactorBits)
	if err != nil {
		return false
	}
	return !scaled.Equal(b.ops.Neutral)
}

// GenerateRandomElement samples k uniformly in [1, order-1] and returns (k, generator*k).
func (b *Base) GenerateRandomElement(rng *utils.RandomSource) (*big.Int, Element, error) {
	orderMinus1 := new(big.Int).Sub(b.ops.Order.Int(), big.NewInt(1))
	k, err := rng.Between(big.NewInt(1), orderMinus1)
	if err != nil {
		return nil, nil, err
	}
	elem, err := b.GenerateElement(k)
	if err != nil {
		return nil, nil, err
	}
	return k, elem, nil
}
