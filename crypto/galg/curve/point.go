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

// Package curve implements the affine elliptic-curve group algebra over
// either a Weierstrass or a Montgomery equation: CurvePoint, CurveEquation,
// and the CurveGroupAlgebra that wires them into the galg.Algebra contract.
package curve

import (
	"fmt"
	"math/big"

	"github.com/getamis/galgebra/crypto/galg"
)

// Point is an affine elliptic-curve point, or the point at infinity.
type Point struct {
	x, y       *big.Int
	atInfinity bool
}

// Infinity is the point-at-infinity marker, the group's neutral element.
func Infinity() Point {
	return Point{atInfinity: true}
}

// NewAffine builds an affine point (x, y).
func NewAffine(x, y *big.Int) Point {
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}
}

// IsInfinity reports whether this is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.atInfinity
}

// X returns the x-coordinate. Callers must not mutate the result. Nil for infinity.
func (p Point) X() *big.Int {
	if p.atInfinity {
		return nil
	}
	return p.x
}

// Y returns the y-coordinate. Callers must not mutate the result. Nil for infinity.
func (p Point) Y() *big.Int {
	if p.atInfinity {
		return nil
	}
	return p.y
}

// Equal reports whether other is a Point and both are infinity, or both
// are affine with the same coordinates.
func (p Point) Equal(other galg.Element) bool {
	o, ok := other.(Point)
	if !ok {
		return false
	}
	if p.atInfinity || o.atInfinity {
		return p.atInfinity == o.atInfinity
	}
	return p.x.Cmp(o.x) == 0 && p.y.Cmp(o.y) == 0
}

func (p Point) String() string {
	if p.atInfinity {
		return "Infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
