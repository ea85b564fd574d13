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

package params

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestParams(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Params Suite")
}

var _ = Describe("P256", func() {
	It("builds a valid Weierstrass algebra with 256-bit coordinates", func() {
		a, err := P256()
		Expect(err).Should(BeNil())
		Expect(a.ElementBitLength()).Should(Equal(512))

		g := a.Generator()
		encoded, err := a.ToBytes(g)
		Expect(err).Should(BeNil())
		Expect(len(encoded)).Should(Equal(64))

		decoded, err := a.FromBytes(encoded)
		Expect(err).Should(BeNil())
		Expect(a.IsPotentialElement(decoded)).Should(BeTrue())
	})
})

var _ = Describe("Curve25519", func() {
	It("builds a valid x-only Montgomery algebra", func() {
		a, err := Curve25519()
		Expect(err).Should(BeNil())
		Expect(a.ElementBitLength()).Should(Equal(255))

		g := a.Generator()
		encoded, err := a.ToBytes(g)
		Expect(err).Should(BeNil())
		Expect(len(encoded)).Should(Equal(32))

		decoded, err := a.FromBytes(encoded)
		Expect(err).Should(BeNil())
		Expect(decoded.Equal(g)).Should(BeTrue())
	})
})
