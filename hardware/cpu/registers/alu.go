// This file is part of Gopher99.
//
// Gopher99 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher99 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher99.  If not, see <https://www.gnu.org/licenses/>.

package registers

import "math/bits"

// parity is true for byte values with an odd number of set bits.
var parity [256]bool

func init() {
	for i := range parity {
		parity[i] = bits.OnesCount8(uint8(i))&0x01 == 0x01
	}
}

// Parity returns true if v has an odd number of set bits.
func Parity(v uint8) bool {
	return parity[v]
}

// AddWord returns a+b. Carry is the carry out of bit 15 and overflow is set
// when both operands have the same sign and the result has a different sign.
func AddWord(a, b uint16) (r uint16, carry bool, overflow bool) {
	s := uint32(a) + uint32(b)
	r = uint16(s)
	carry = s&0x10000 == 0x10000
	overflow = (a^r)&(b^r)&0x8000 == 0x8000
	return r, carry, overflow
}

// SubtractWord returns dst-src. The subtraction is performed as the addition
// dst + ^src + 1 so carry is set when there is no borrow.
func SubtractWord(dst, src uint16) (r uint16, carry bool, overflow bool) {
	s := uint32(dst) + uint32(^src) + 1
	r = uint16(s)
	carry = s&0x10000 == 0x10000
	overflow = (dst^src)&(dst^r)&0x8000 == 0x8000
	return r, carry, overflow
}

// AddByte is the byte equivalent of AddWord.
func AddByte(a, b uint8) (r uint8, carry bool, overflow bool) {
	s := uint16(a) + uint16(b)
	r = uint8(s)
	carry = s&0x100 == 0x100
	overflow = (a^r)&(b^r)&0x80 == 0x80
	return r, carry, overflow
}

// SubtractByte is the byte equivalent of SubtractWord.
func SubtractByte(dst, src uint8) (r uint8, carry bool, overflow bool) {
	s := uint16(dst) + uint16(^src) + 1
	r = uint8(s)
	carry = s&0x100 == 0x100
	overflow = (dst^src)&(dst^r)&0x80 == 0x80
	return r, carry, overflow
}
