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
	"testing"

	"github.com/getamis/galgebra/crypto/field"
	"github.com/getamis/galgebra/crypto/galg"
	"github.com/getamis/galgebra/crypto/utils"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestCurve(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Curve Suite")
}

// toyWeierstrass builds y^2 = x^3 - 2x + 9 mod 23, with generator (5,3) of
// subgroup order 11 and cofactor 2.
func toyWeierstrass() *Algebra {
	p := utils.UncheckedBigPrime(big.NewInt(23))
	f := field.New(p)
	eq := NewWeierstrass(f, big.NewInt(-2), big.NewInt(9))
	order := utils.UncheckedBigPrime(big.NewInt(11))
	a, err := New(Parameters{
		Equation:  eq,
		Generator: NewAffine(big.NewInt(5), big.NewInt(3)),
		Order:     order,
		Cofactor:  big.NewInt(2),
	})
	Expect(err).Should(BeNil())
	return a
}

var _ = Describe("Weierstrass curve group algebra", func() {
	It("rejects a generator that is not on the curve", func() {
		p := utils.UncheckedBigPrime(big.NewInt(23))
		f := field.New(p)
		eq := NewWeierstrass(f, big.NewInt(-2), big.NewInt(9))
		order := utils.UncheckedBigPrime(big.NewInt(11))
		_, err := New(Parameters{
			Equation:  eq,
			Generator: NewAffine(big.NewInt(5), big.NewInt(5)),
			Order:     order,
			Cofactor:  big.NewInt(2),
		})
		Expect(err).ShouldNot(BeNil())
	})

	It("doubles the generator to the independently verified (16, 5)", func() {
		a := toyWeierstrass()
		g := a.Generator()
		doubled, err := a.Add(g, g)
		Expect(err).Should(BeNil())
		Expect(doubled.(Point).Equal(NewAffine(big.NewInt(16), big.NewInt(5)))).Should(BeTrue())
	})

	It("satisfies P1-P3: neutral, negate, and scalar-multiplication identities", func() {
		a := toyWeierstrass()
		g := a.Generator()

		addedNeutral, err := a.Add(a.Neutral(), g)
		Expect(err).Should(BeNil())
		Expect(addedNeutral.(Point).Equal(g.(Point))).Should(BeTrue())

		negated, err := a.Negate(g)
		Expect(err).Should(BeNil())
		summed, err := a.Add(negated, g)
		Expect(err).Should(BeNil())
		Expect(summed.(Point).IsInfinity()).Should(BeTrue())

		zero, err := a.MultiplyScalar(g, big.NewInt(0))
		Expect(err).Should(BeNil())
		Expect(zero.(Point).IsInfinity()).Should(BeTrue())

		one, err := a.MultiplyScalar(g, big.NewInt(1))
		Expect(err).Should(BeNil())
		Expect(one.(Point).Equal(g.(Point))).Should(BeTrue())

		atOrder, err := a.MultiplyScalar(g, a.Order().Int())
		Expect(err).Should(BeNil())
		Expect(atOrder.(Point).IsInfinity()).Should(BeTrue())
	})

	It("runs a toy Diffie-Hellman scenario over the curve's subgroup", func() {
		a := toyWeierstrass()
		group := galg.NewGroup(a)

		alice, err := group.Generate(big.NewInt(3))
		Expect(err).Should(BeNil())
		bob, err := group.Generate(big.NewInt(5))
		Expect(err).Should(BeNil())

		sharedFromAlice, err := group.MultiplyScalar(bob, big.NewInt(3))
		Expect(err).Should(BeNil())
		sharedFromBob, err := group.MultiplyScalar(alice, big.NewInt(5))
		Expect(err).Should(BeNil())

		Expect(sharedFromAlice.Equal(sharedFromBob)).Should(BeTrue())
	})

	It("round-trips through ToBytes/FromBytes (P6)", func() {
		a := toyWeierstrass()
		g := a.Generator()
		encoded, err := a.ToBytes(g)
		Expect(err).Should(BeNil())
		Expect(len(encoded)).Should(Equal(2 * a.coordinateByteLength()))
		decoded, err := a.FromBytes(encoded)
		Expect(err).Should(BeNil())
		Expect(decoded.(Point).Equal(g.(Point))).Should(BeTrue())
	})

	It("refuses to encode the point at infinity", func() {
		a := toyWeierstrass()
		_, err := a.ToBytes(a.Neutral())
		Expect(err).ShouldNot(BeNil())
	})

	It("flags the neutral element unsafe and the generator safe (P7)", func() {
		a := toyWeierstrass()
		Expect(a.IsSafeElement(a.Neutral())).Should(BeFalse())
		Expect(a.IsSafeElement(a.Generator())).Should(BeTrue())
	})
})

// toyMontgomery builds B*y^2 = x^3 + 3*x^2 + x mod 1009, with generator
// (4, 376) of point order 264. The same curve backs xmontgomery's scalar
// cross-checks, so a point computed here via the affine addition law is the
// independent ground truth those x-only ladder tests are verified against.
func toyMontgomery() *Algebra {
	p := utils.UncheckedBigPrime(big.NewInt(1009))
	f := field.New(p)
	eq := NewMontgomery(f, big.NewInt(3), big.NewInt(1))
	order := utils.UncheckedBigPrime(big.NewInt(264))
	a, err := New(Parameters{
		Equation:  eq,
		Generator: NewAffine(big.NewInt(4), big.NewInt(376)),
		Order:     order,
		Cofactor:  big.NewInt(1),
	})
	Expect(err).Should(BeNil())
	return a
}

var _ = Describe("Montgomery curve group algebra (affine)", func() {
	It("doubles the generator to the independently verified (555, 20)", func() {
		a := toyMontgomery()
		g := a.Generator()
		doubled, err := a.Add(g, g)
		Expect(err).Should(BeNil())
		Expect(doubled.(Point).Equal(NewAffine(big.NewInt(555), big.NewInt(20)))).Should(BeTrue())
	})

	It("triples the generator to the independently verified (432, 503)", func() {
		a := toyMontgomery()
		g := a.Generator()
		doubled, err := a.Add(g, g)
		Expect(err).Should(BeNil())
		tripled, err := a.Add(doubled, g)
		Expect(err).Should(BeNil())
		Expect(tripled.(Point).Equal(NewAffine(big.NewInt(432), big.NewInt(503)))).Should(BeTrue())
	})

	It("satisfies P1-P3: neutral, negate, and scalar-multiplication identities", func() {
		a := toyMontgomery()
		g := a.Generator()

		addedNeutral, err := a.Add(a.Neutral(), g)
		Expect(err).Should(BeNil())
		Expect(addedNeutral.(Point).Equal(g.(Point))).Should(BeTrue())

		negated, err := a.Negate(g)
		Expect(err).Should(BeNil())
		summed, err := a.Add(negated, g)
		Expect(err).Should(BeNil())
		Expect(summed.(Point).IsInfinity()).Should(BeTrue())

		atOrder, err := a.MultiplyScalar(g, a.Order().Int())
		Expect(err).Should(BeNil())
		Expect(atOrder.(Point).IsInfinity()).Should(BeTrue())
	})

	It("round-trips through ToBytes/FromBytes", func() {
		a := toyMontgomery()
		g := a.Generator()
		encoded, err := a.ToBytes(g)
		Expect(err).Should(BeNil())
		Expect(len(encoded)).Should(Equal(2 * a.coordinateByteLength()))
		decoded, err := a.FromBytes(encoded)
		Expect(err).Should(BeNil())
		Expect(decoded.(Point).Equal(g.(Point))).Should(BeTrue())
	})
})
