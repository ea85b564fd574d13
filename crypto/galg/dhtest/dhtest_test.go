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

package dhtest

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/getamis/galgebra/crypto/galg"
	"github.com/getamis/galgebra/crypto/galg/multiplicative"
	"github.com/getamis/galgebra/crypto/utils"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestDHTest(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "DHTest Suite")
}

var _ = Describe("Exchange", func() {
	It("agrees on a shared secret over the toy multiplicative group", func() {
		p := utils.UncheckedBigPrime(big.NewInt(23))
		q := utils.UncheckedBigPrime(big.NewInt(11))
		alg, err := multiplicative.New(p, q, big.NewInt(2))
		Expect(err).Should(BeNil())
		group := galg.NewGroup(alg)
		rng := utils.NewRandomSource(rand.Reader)

		_, _, sharedFromAlice, sharedFromBob, err := Exchange(group, rng)
		Expect(err).Should(BeNil())
		Expect(sharedFromAlice.Equal(sharedFromBob)).Should(BeTrue())
	})
})
