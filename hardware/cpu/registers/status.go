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

import (
	"fmt"
	"strings"
)

// Status is the TMS9900 status register.
type Status uint16

// List of status bits.
const (
	LogicalGreater    Status = 0x8000
	ArithmeticGreater Status = 0x4000
	Equal             Status = 0x2000
	Carry             Status = 0x1000
	Overflow          Status = 0x0800
	OddParity         Status = 0x0400
	XOP               Status = 0x0200

	// the lowest four bits are the interrupt mask
	InterruptMask Status = 0x000f
)

// Comparison is the group of bits set by every comparison.
const Comparison = LogicalGreater | ArithmeticGreater | Equal

// Label returns the canonical name for the status register.
func (st Status) Label() string {
	return "ST"
}

func (st Status) String() string {
	s := strings.Builder{}

	flag := func(bit Status, c rune) {
		if st&bit == bit {
			s.WriteRune(c)
		} else {
			s.WriteRune(c + ('a' - 'A'))
		}
	}

	flag(LogicalGreater, 'L')
	flag(ArithmeticGreater, 'A')
	flag(Equal, 'E')
	flag(Carry, 'C')
	flag(Overflow, 'O')
	flag(OddParity, 'P')
	flag(XOP, 'X')
	s.WriteString(fmt.Sprintf(" %x", st.Mask()))

	return s.String()
}

// Is returns true if all bits are set.
func (st Status) Is(bits Status) bool {
	return st&bits == bits
}

// Set sets or clears the bits.
func (st *Status) Set(bits Status, v bool) {
	if v {
		*st |= bits
	} else {
		*st &^= bits
	}
}

// Mask returns the interrupt mask.
func (st Status) Mask() uint8 {
	return uint8(st & InterruptMask)
}

// SetMask changes the interrupt mask. Only the lowest four bits of m are used.
func (st *Status) SetMask(m uint8) {
	*st = (*st &^ InterruptMask) | (Status(m) & InterruptMask)
}

// CompareZero sets the comparison bits by comparing a word with zero.
func (st *Status) CompareZero(v uint16) {
	st.Compare(v, 0)
}

// CompareZeroByte sets the comparison bits by comparing a byte with zero.
func (st *Status) CompareZeroByte(v uint8) {
	st.CompareBytes(v, 0)
}

// Compare sets the comparison bits by comparing a with b. L> is the unsigned
// comparison and A> is the signed comparison.
func (st *Status) Compare(a, b uint16) {
	st.Set(LogicalGreater, a > b)
	st.Set(ArithmeticGreater, int16(a) > int16(b))
	st.Set(Equal, a == b)
}

// CompareBytes sets the comparison bits by comparing byte a with byte b.
func (st *Status) CompareBytes(a, b uint8) {
	st.Set(LogicalGreater, a > b)
	st.Set(ArithmeticGreater, int8(a) > int8(b))
	st.Set(Equal, a == b)
}

// SetParity sets the odd parity bit for a byte result.
func (st *Status) SetParity(v uint8) {
	st.Set(OddParity, parity[v])
}
