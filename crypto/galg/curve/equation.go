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
	"errors"
	"math/big"

	"github.com/getamis/galgebra/crypto/field"
)

// ErrPointsNotComparable is an internal sentinel for coordinate edge cases
// the caller is expected to have already excluded (infinity, inverse pairs).
var ErrPointsNotComparable = errors.New("points cannot be combined directly")

// Equation is a curve shape over a Field: a Weierstrass or Montgomery
// equation variant, each supplying point validity, negation, addition and
// doubling.
type Equation interface {
	Field() *field.Field
	IsPointOnCurve(p Point) bool
	Negate(p Point) Point
	Add(p, q Point) (Point, error)
}

// Weierstrass is y^2 = x^3 + a*x + b mod p.
type Weierstrass struct {
	a, b *big.Int
	f    *field.Field
}

// NewWeierstrass builds a Weierstrass equation over f with coefficients a, b.
func NewWeierstrass(f *field.Field, a, b *big.Int) *Weierstrass {
	return &Weierstrass{a: a, b: b, f: f}
}

// Field returns the underlying field.
func (w *Weierstrass) Field() *field.Field {
	return w.f
}

// IsPointOnCurve reports infinity as always valid, and checks y^2 = x^3+a*x+b mod p otherwise.
func (w *Weierstrass) IsPointOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	if !w.f.Contains(p.x) || !w.f.Contains(p.y) {
		return false
	}
	lhs := w.f.Square(p.y)
	x3 := w.f.Mul(w.f.Square(p.x), p.x)
	rhs := w.f.Add(x3, w.f.Add(w.f.Mul(w.a, p.x), w.b))
	return lhs.Cmp(rhs) == 0
}

// Negate flips y; infinity maps to infinity.
func (w *Weierstrass) Negate(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	return NewAffine(p.x, w.f.Negate(p.y))
}

// Add implements the standard affine addition/doubling formulae, in the
// precedence order: both infinity -> infinity; one infinity -> the other;
// P = -Q -> infinity; P == Q -> doubling slope; else the chord slope.
func (w *Weierstrass) Add(p, q Point) (Point, error) {
	if p.IsInfinity() && q.IsInfinity() {
		return Infinity(), nil
	}
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}
	if p.x.Cmp(q.x) == 0 && w.f.Add(p.y, q.y).Sign() == 0 {
		return Infinity(), nil
	}

	var lambda *big.Int
	if p.x.Cmp(q.x) != 0 || p.y.Cmp(q.y) != 0 {
		num := w.f.Sub(q.y, p.y)
		den := w.f.Sub(q.x, p.x)
		lambda = w.f.Mul(num, w.f.Inverse(den))
	} else {
		num := w.f.Add(w.f.Mul(big.NewInt(3), w.f.Square(p.x)), w.a)
		den := w.f.Mul(big.NewInt(2), p.y)
		lambda = w.f.Mul(num, w.f.Inverse(den))
	}

	xr := w.f.Sub(w.f.Sub(w.f.Square(lambda), p.x), q.x)
	yr := w.f.Sub(w.f.Mul(lambda, w.f.Sub(p.x, xr)), p.y)
	return NewAffine(xr, yr), nil
}

// Montgomery is B*y^2 = x^3 + A*x^2 + x, affine form.
type Montgomery struct {
	a, b *big.Int
	f    *field.Field
}

// NewMontgomery builds a Montgomery equation over f with coefficients A, B.
func NewMontgomery(f *field.Field, a, b *big.Int) *Montgomery {
	return &Montgomery{a: a, b: b, f: f}
}

// Field returns the underlying field.
func (m *Montgomery) Field() *field.Field {
	return m.f
}

// IsPointOnCurve reports infinity as always valid, and checks B*y^2 = x^3+A*x^2+x mod p otherwise.
func (m *Montgomery) IsPointOnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	if !m.f.Contains(p.x) || !m.f.Contains(p.y) {
		return false
	}
	lhs := m.f.Mul(m.b, m.f.Square(p.y))
	x3 := m.f.Mul(m.f.Square(p.x), p.x)
	ax2 := m.f.Mul(m.a, m.f.Square(p.x))
	rhs := m.f.Add(m.f.Add(x3, ax2), p.x)
	return lhs.Cmp(rhs) == 0
}

// Negate flips y; infinity maps to infinity.
func (m *Montgomery) Negate(p Point) Point {
	if p.IsInfinity() {
		return Infinity()
	}
	return NewAffine(p.x, m.f.Negate(p.y))
}

// Add mirrors Weierstrass.Add's precedence order with the Montgomery slope
// and coordinate formulae: addition slope (y_Q-y_P)/(x_Q-x_P), doubling
// slope (3x_P^2+2*A*x_P+1)/(2*B*y_P), x_R = B*lambda^2 - A - x_P - x_Q,
// y_R = lambda*(x_P-x_R) - y_P.
func (m *Montgomery) Add(p, q Point) (Point, error) {
	if p.IsInfinity() && q.IsInfinity() {
		return Infinity(), nil
	}
	if p.IsInfinity() {
		return q, nil
	}
	if q.IsInfinity() {
		return p, nil
	}
	if p.x.Cmp(q.x) == 0 && m.f.Add(p.y, q.y).Sign() == 0 {
		return Infinity(), nil
	}

	var lambda *big.Int
	if p.x.Cmp(q.x) != 0 || p.y.Cmp(q.y) != 0 {
		num := m.f.Sub(q.y, p.y)
		den := m.f.Sub(q.x, p.x)
		lambda = m.f.Mul(num, m.f.Inverse(den))
	} else {
		num := m.f.Add(m.f.Add(m.f.Mul(big.NewInt(3), m.f.Square(p.x)), m.f.Mul(big.NewInt(2), m.f.Mul(m.a, p.x))), big.NewInt(1))
		den := m.f.Mul(big.NewInt(2), m.f.Mul(m.b, p.y))
		lambda = m.f.Mul(num, m.f.Inverse(den))
	}

	lambdaSq := m.f.Square(lambda)
	xr := m.f.Sub(m.f.Sub(m.f.Sub(m.f.Mul(m.b, lambdaSq), m.a), p.x), q.x)
	yr := m.f.Sub(m.f.Mul(lambda, m.f.Sub(p.x, xr)), p.y)
	return NewAffine(xr, yr), nil
}
