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

import "math/big"

// GroupElement associates a raw element with the algebra it belongs to. It
// enforces validity on construction and rejects mixing elements from
// different algebras on every binary operation.
type GroupElement struct {
	value   Element
	algebra Algebra
}

// NewGroupElement wraps value under algebra, failing with InvalidElement if
// algebra.IsPotentialElement(value) does not hold.
func NewGroupElement(algebra Algebra, value Element) (*GroupElement, error) {
	if !algebra.IsPotentialElement(value) {
		return nil, newError(InvalidElement, value, "value is not a potential element of this algebra")
	}
	return &GroupElement{value: value, algebra: algebra}, nil
}

// Algebra returns the owning algebra.
func (g *GroupElement) Algebra() Algebra {
	return g.algebra
}

// Value returns the raw wrapped element.
func (g *GroupElement) Value() Element {
	return g.value
}

func (g *GroupElement) checkSameAlgebra(other *GroupElement) error {
	if g.algebra != other.algebra {
		return newError(AlgebraMismatch, other, "operands belong to different algebras")
	}
	return nil
}

// Add is sugar for the algebra's Add, rewrapped.
func (g *GroupElement) Add(other *GroupElement) (*GroupElement, error) {
	if err := g.checkSameAlgebra(other); err != nil {
		return nil, err
	}
	v, err := g.algebra.Add(g.value, other.value)
	if err != nil {
		return nil, err
	}
	return &GroupElement{value: v, algebra: g.algebra}, nil
}

// Negate is sugar for the algebra's Negate, rewrapped.
func (g *GroupElement) Negate() (*GroupElement, error) {
	v, err := g.algebra.Negate(g.value)
	if err != nil {
		return nil, err
	}
	return &GroupElement{value: v, algebra: g.algebra}, nil
}

// Sub is sugar for add(negate(other)).
func (g *GroupElement) Sub(other *GroupElement) (*GroupElement, error) {
	negated, err := other.Negate()
	if err != nil {
		return nil, err
	}
	return g.Add(negated)
}

// MultiplyScalar is sugar for the algebra's MultiplyScalar, rewrapped.
func (g *GroupElement) MultiplyScalar(k *big.Int) (*GroupElement, error) {
	v, err := g.algebra.MultiplyScalar(g.value, k)
	if err != nil {
		return nil, err
	}
	return &GroupElement{value: v, algebra: g.algebra}, nil
}

// IsSafe delegates to the algebra's IsSafeElement.
func (g *GroupElement) IsSafe() bool {
	return g.algebra.IsSafeElement(g.value)
}

// ToBytes delegates to the algebra's ToBytes.
func (g *GroupElement) ToBytes() ([]byte, error) {
	return g.algebra.ToBytes(g.value)
}

// Equal reports whether two elements share the same algebra and value.
func (g *GroupElement) Equal(other *GroupElement) bool {
	if g.algebra != other.algebra {
		return false
	}
	return g.value.Equal(other.value)
}
