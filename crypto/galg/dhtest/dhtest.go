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

// Package dhtest is a sample two-party Diffie-Hellman exchange built only
// out of the public galg.Group facade. It is not itself a cryptographic
// protocol implementation; it exists to exercise GenerateRandom and
// MultiplyScalar together the way real callers would, across any concrete
// Algebra.
package dhtest

import (
	"github.com/getamis/galgebra/crypto/galg"
	"github.com/getamis/galgebra/crypto/utils"
)

// Exchange runs a full two-party Diffie-Hellman key agreement over group,
// sampling fresh random scalars for both sides, and returns the two
// parties' shared secrets so a caller can assert they agree.
func Exchange(group *galg.Group, rng *utils.RandomSource) (alice, bob *galg.GroupElement, sharedFromAlice, sharedFromBob *galg.GroupElement, err error) {
	aliceSecret, alicePublic, err := group.GenerateRandom(rng)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	bobSecret, bobPublic, err := group.GenerateRandom(rng)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	sharedFromAlice, err = group.MultiplyScalar(bobPublic, aliceSecret)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	sharedFromBob, err = group.MultiplyScalar(alicePublic, bobSecret)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return alicePublic, bobPublic, sharedFromAlice, sharedFromBob, nil
}
