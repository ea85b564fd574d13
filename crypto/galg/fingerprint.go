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
	"encoding/hex"

	"github.com/minio/blake2b-simd"
)

// Fingerprint returns a short hex digest of an element's wire encoding, for
// log correlation only — never for deriving key material. Mirrors the
// teacher's own blake2b.Sum256(bs) checksum idiom, applied to an encoded
// group element instead of a wire message.
func Fingerprint(algebra Algebra, e Element) (string, error) {
	encoded, err := algebra.ToBytes(e)
	if err != nil {
		return "", err
	}
	sum := blake2b.Sum256(encoded)
	return hex.EncodeToString(sum[:8]), nil
}
