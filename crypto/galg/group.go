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

// Group is a thin facade owning an algebra and producing GroupElement
// wrappers from its operations. Every element-taking method verifies
// algebra identity and fails AlgebraMismatch on violation (via GroupElement).
type Group struct {
	algebra Algebra
}

// NewGroup wraps an Algebra in a Group facade.
func NewGroup(algebra Algebra) *Group {
	return &Group{algebra: algebra}
}

// Algebra returns the underlying algebra.
func (g *Group) Algebra() Algebra {
	return g.algebra
}

// Generator returns the group's generator, wrapped.
func (g *Group) Generator() (*GroupElement, error) {
	return NewGroupElement(g.algebra, g.algebra.Generator())
}

// Order returns the group's prime order.
func (g *Group) Order() *utils.BigPrime {
	return g.algebra.Order()
}

// OrderLength returns the bit length of Order.
func (g *Group) OrderLength() int {
	return g.algebra.OrderBitLength()
}

// ElementLength returns the bit length of an element.
func (g *Group) ElementLength() int {
	return g.algebra.ElementBitLength()
}

// SecurityLevel returns the algebra's estimated security level, in bits.
func (g *Group) SecurityLevel() int {
	return g.algebra.SecurityLevel()
}

// Generate returns generator*k, wrapped.
func (g *Group) Generate(k *big.Int) (*GroupElement, error) {
	v, err := g.algebra.GenerateElement(k)
	if err != nil {
		return nil, err
	}
	return NewGroupElement(g.algebra, v)
}

// GenerateRandom samples a fresh random element and the index it was generated at.
func (g *Group) GenerateRandom(rng *utils.RandomSource) (*big.Int, *GroupElement, error) {
	k, v, err := g.algebra.GenerateRandomElement(rng)
	if err != nil {
		return nil, nil, err
	}
	elem, err := NewGroupElement(g.algebra, v)
	if err != nil {
		return nil, nil, err
	}
	return k, elem, nil
}

// FromBytes decodes an element, wrapped.
func (g *Group) FromBytes(buf []byte) (*GroupElement, error) {
	v, err := g.algebra.FromBytes(buf)
	if err != nil {
		return nil, err
	}
	return NewGroupElement(g.algebra, v)
}

// Add sums two elements belonging to this group's algebra.
func (g *Group) Add(l, r *GroupElement) (*GroupElement, error) {
	if err := g.checkOwned(l); err != nil {
		return nil, err
	}
	if err := g.checkOwned(r); err != nil {
		return nil, err
	}
	return l.Add(r)
}

// MultiplyScalar scales an element belonging to this group's algebra.
func (g *Group) MultiplyScalar(e *GroupElement, k *big.Int) (*GroupElement, error) {
	if err := g.checkOwned(e); err != nil {
		return nil, err
	}
	return e.MultiplyScalar(k)
}

// Negate negates an element belonging to this group's algebra.
func (g *Group) Negate(e *GroupElement) (*GroupElement, error) {
	if err := g.checkOwned(e); err != nil {
		return nil, err
	}
	return e.Negate()
}

func (g *Group) checkOwned(e *GroupElement) error {
	if e.algebra != g.algebra {
		return newError(AlgebraMismatch, e, "element does not belong to this group's algebra")
	}
	return nil
}
