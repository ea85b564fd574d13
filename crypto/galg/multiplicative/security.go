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
	"math/big"

	"github.com/getamis/galgebra/crypto/utils"
)

// generatorCandidate is a quadratic residue mod any safe prime p=2q+1, and
// therefore of order q in Z_p^*, as long as it isn't itself +/-1 or 0.
var generatorCandidate = big.NewInt(4)

// CreateForSecurity finds a safe prime p of the length PrimeLengthForSecurity(lambda)
// requires, with subgroup order q=(p-1)/2, and builds the algebra with
// generator g=4.
func CreateForSecurity(lambda int, rng *utils.RandomSource) (*Algebra, error) {
	length := PrimeLengthForSecurity(lambda)
	safe, err := utils.GenerateRandomSafePrime(rng, length)
	if err != nil {
		return nil, err
	}
	return New(safe.P, safe.Q, generatorCandidate)
}
