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

package utils

import "math/big"

// EncodeSignedLittleEndian renders x as a signed two's-complement
// little-endian byte buffer, matching the BigInteger facade's canonical
// export: length = ceil((bitlen(x)+1)/8), so there is always a sign byte
// of headroom.
func EncodeSignedLittleEndian(x *big.Int) []byte {
	length := NumberLengthFromBits(x.BitLen() + 1).Bytes()
	buf := make([]byte, length)

	if x.Sign() >= 0 {
		be := x.Bytes()
		for i, b := range be {
			buf[len(be)-1-i] = b
		}
		return buf
	}

	// two's complement of |x| at `length` bytes: invert and add one.
	mag := new(big.Int).Neg(x)
	be := mag.Bytes()
	for i, b := range be {
		buf[len(be)-1-i] = b
	}
	for i := range buf {
		buf[i] = ^buf[i]
	}
	carry := byte(1)
	for i := 0; i < len(buf) && carry != 0; i++ {
		sum := uint16(buf[i]) + uint16(carry)
		buf[i] = byte(sum)
		carry = byte(sum >> 8)
	}
	return buf
}

// DecodeSignedLittleEndian parses a signed two's-complement little-endian
// byte buffer back into a big.Int.
func DecodeSignedLittleEndian(buf []byte) *big.Int {
	if len(buf) == 0 {
		return big.NewInt(0)
	}
	negative := buf[len(buf)-1]&0x80 != 0
	if !negative {
		be := make([]byte, len(buf))
		for i, b := range buf {
			be[len(buf)-1-i] = b
		}
		return new(big.Int).SetBytes(be)
	}

	// two's complement decode: subtract one, invert, negate.
	tmp := make([]byte, len(buf))
	copy(tmp, buf)
	borrow := byte(1)
	for i := 0; i < len(tmp) && borrow != 0; i++ {
		if tmp[i] >= borrow {
			tmp[i] -= borrow
			borrow = 0
		} else {
			tmp[i] = tmp[i] - borrow
			borrow = 1
		}
	}
	for i := range tmp {
		tmp[i] = ^tmp[i]
	}
	be := make([]byte, len(tmp))
	for i, b := range tmp {
		be[len(tmp)-1-i] = b
	}
	mag := new(big.Int).SetBytes(be)
	return mag.Neg(mag)
}
