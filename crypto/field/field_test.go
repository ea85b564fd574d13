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

package field

import (
	"math/big"
	"testing"

	"github.com/getamis/galgebra/crypto/utils"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestField(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Field Suite")
}

var _ = Describe("Field", func() {
	f := New(utils.UncheckedBigPrime(big.NewInt(23)))

	It("reduces add/sub/mul into [0, p)", func() {
		Expect(f.Add(big.NewInt(20), big.NewInt(5))).Should(Equal(big.NewInt(2)))
		Expect(f.Sub(big.NewInt(3), big.NewInt(5))).Should(Equal(big.NewInt(21)))
		Expect(f.Mul(big.NewInt(6), big.NewInt(7))).Should(Equal(big.NewInt(19)))
		Expect(f.Square(big.NewInt(6))).Should(Equal(big.NewInt(13)))
	})

	It("computes modular inverses", func() {
		for _, x := range []int64{1, 2, 3, 5, 11, 22} {
			inv := f.Inverse(big.NewInt(x))
			Expect(f.Mul(big.NewInt(x), inv)).Should(Equal(big.NewInt(1)))
		}
	})

	It("computes modular exponentiation", func() {
		Expect(f.Pow(big.NewInt(2), big.NewInt(10))).Should(Equal(big.NewInt(12)))
	})

	It("reports byte length from the modulus", func() {
		Expect(f.ElementByteLength()).Should(Equal(1))
	})
})
