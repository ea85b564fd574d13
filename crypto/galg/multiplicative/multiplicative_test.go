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

package multiplicative

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/getamis/galgebra/crypto/galg"
	"github.com/getamis/galgebra/crypto/utils"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestMultiplicative(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Multiplicative Suite")
}

func toyAlgebra() *Algebra {
	p := utils.UncheckedBigPrime(big.NewInt(23))
	q := utils.UncheckedBigPrime(big.NewInt(11))
	a, err := New(p, q, big.NewInt(2))
	Expect(err).Should(BeNil())
	return a
}

var _ = Describe("Multiplicative group algebra", func() {
	It("rejects a generator that is not a safe element", func() {
		p := utils.UncheckedBigPrime(big.NewInt(23))
		q := utils.UncheckedBigPrime(big.NewInt(11))
		_, err := New(p, q, big.NewInt(22))
		Expect(err).ShouldNot(BeNil())
	})

	It("runs the toy Diffie-Hellman scenario: p=23, q=11, g=2", func() {
		a := toyAlgebra()
		group := galg.NewGroup(a)

		alice, err := group.Generate(big.NewInt(3))
		Expect(err).Should(BeNil())
		Expect(alice.Value().(Element).Int()).Should(Equal(big.NewInt(8)))

		bob, err := group.Generate(big.NewInt(5))
		Expect(err).Should(BeNil())
		Expect(bob.Value().(Element).Int()).Should(Equal(big.NewInt(9)))

		sharedFromAlice, err := group.MultiplyScalar(bob, big.NewInt(3))
		Expect(err).Should(BeNil())
		sharedFromBob, err := group.MultiplyScalar(alice, big.NewInt(5))
		Expect(err).Should(BeNil())

		Expect(sharedFromAlice.Equal(sharedFromBob)).Should(BeTrue())
	})

	It("satisfies P1-P3: neutral, negate, and scalar-multiplication identities", func() {
		a := toyAlgebra()
		g := a.Generator()

		addedNeutral, err := a.Add(a.Neutral(), g)
		Expect(err).Should(BeNil())
		Expect(addedNeutral.Equal(g)).Should(BeTrue())

		negated, err := a.Negate(g)
		Expect(err).Should(BeNil())
		summed, err := a.Add(negated, g)
		Expect(err).Should(BeNil())
		Expect(summed.Equal(a.Neutral())).Should(BeTrue())

		zero, err := a.MultiplyScalar(g, big.NewInt(0))
		Expect(err).Should(BeNil())
		Expect(zero.Equal(a.Neutral())).Should(BeTrue())

		one, err := a.MultiplyScalar(g, big.NewInt(1))
		Expect(err).Should(BeNil())
		Expect(one.Equal(g)).Should(BeTrue())

		atOrder, err := a.MultiplyScalar(g, a.Order().Int())
		Expect(err).Should(BeNil())
		Expect(atOrder.Equal(a.Neutral())).Should(BeTrue())
	})

	It("rejects bounded scalars wider than factorBitLength (P8, scenario 6)", func() {
		a := toyAlgebra()
		g := a.Generator()

		_, err := a.MultiplyScalarBounded(g, big.NewInt(8), 3)
		Expect(err).ShouldNot(BeNil())

		bounded, err := a.MultiplyScalarBounded(g, big.NewInt(7), 3)
		Expect(err).Should(BeNil())
		unbounded, err := a.MultiplyScalar(g, big.NewInt(7))
		Expect(err).Should(BeNil())
		Expect(bounded.Equal(unbounded)).Should(BeTrue())
	})

	It("round-trips through ToBytes/FromBytes (P6)", func() {
		a := toyAlgebra()
		g := a.Generator()
		encoded, err := a.ToBytes(g)
		Expect(err).Should(BeNil())
		decoded, err := a.FromBytes(encoded)
		Expect(err).Should(BeNil())
		Expect(decoded.Equal(g)).Should(BeTrue())
	})

	It("flags the neutral element unsafe and the generator safe (P7)", func() {
		a := toyAlgebra()
		Expect(a.IsSafeElement(a.Neutral())).Should(BeFalse())
		Expect(a.IsSafeElement(a.Generator())).Should(BeTrue())
	})

	It("creates a fresh algebra at a requested security level", func() {
		rng := utils.NewRandomSource(rand.Reader)
		a, err := CreateForSecurity(16, rng)
		Expect(err).Should(BeNil())
		Expect(a.SecurityLevel()).Should(BeNumerically(">=", 0))
	})
})
