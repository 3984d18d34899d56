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

package registers_test

import (
	"testing"

	"github.com/gopher99/gopher99/hardware/cpu/registers"
	"github.com/gopher99/gopher99/test"
)

func TestParity(t *testing.T) {
	for v := 0; v < 256; v++ {
		n := 0
		for b := v; b != 0; b >>= 1 {
			n += b & 1
		}
		test.Equate(t, registers.Parity(uint8(v)), n%2 == 1)

		var st registers.Status
		st.SetParity(uint8(v))
		test.Equate(t, st.Is(registers.OddParity), n%2 == 1)
	}
}

func TestAddWord(t *testing.T) {
	cases := []struct {
		a, b     uint16
		r        uint16
		carry    bool
		overflow bool
	}{
		{0x0001, 0x0001, 0x0002, false, false},
		{0x7fff, 0x0001, 0x8000, false, true},
		{0xffff, 0x0001, 0x0000, true, false},
		{0x8000, 0x8000, 0x0000, true, true},
		{0x1234, 0x0001, 0x1235, false, false},
		{0xfffe, 0xffff, 0xfffd, true, false},
	}

	for _, c := range cases {
		r, carry, overflow := registers.AddWord(c.a, c.b)
		test.Equate(t, r, c.r)
		test.Equate(t, carry, c.carry)
		test.Equate(t, overflow, c.overflow)
	}
}

func TestSubtractWord(t *testing.T) {
	cases := []struct {
		dst, src uint16
		r        uint16
		carry    bool
		overflow bool
	}{
		// no borrow means carry is set
		{0x0002, 0x0001, 0x0001, true, false},
		{0x0001, 0x0001, 0x0000, true, false},
		{0x0000, 0x0001, 0xffff, false, false},
		{0x8000, 0x0001, 0x7fff, true, true},
		{0x7fff, 0xffff, 0x8000, false, true},
		{0x0000, 0x0000, 0x0000, true, false},
	}

	for _, c := range cases {
		r, carry, overflow := registers.SubtractWord(c.dst, c.src)
		test.Equate(t, r, c.r)
		test.Equate(t, carry, c.carry)
		test.Equate(t, overflow, c.overflow)
	}
}

func TestByteArithmetic(t *testing.T) {
	r, carry, overflow := registers.AddByte(0x7f, 0x01)
	test.Equate(t, r, 0x80)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, true)

	r, carry, overflow = registers.AddByte(0xff, 0x01)
	test.Equate(t, r, 0x00)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, false)

	r, carry, overflow = registers.SubtractByte(0x80, 0x01)
	test.Equate(t, r, 0x7f)
	test.Equate(t, carry, true)
	test.Equate(t, overflow, true)

	r, carry, overflow = registers.SubtractByte(0x00, 0x01)
	test.Equate(t, r, 0xff)
	test.Equate(t, carry, false)
	test.Equate(t, overflow, false)
}

func TestCompare(t *testing.T) {
	var st registers.Status

	st.CompareZero(0)
	test.Equate(t, st.String(), "laEcopx 0")

	st.CompareZero(0x8000)
	test.Equate(t, st.String(), "Laecopx 0")

	st.CompareZero(0x0001)
	test.Equate(t, st.String(), "LAecopx 0")

	// unsigned greater but signed less
	st.Compare(0xffff, 0x0001)
	test.Equate(t, st.Is(registers.LogicalGreater), true)
	test.Equate(t, st.Is(registers.ArithmeticGreater), false)
	test.Equate(t, st.Is(registers.Equal), false)

	st.CompareBytes(0x01, 0x80)
	test.Equate(t, st.Is(registers.LogicalGreater), false)
	test.Equate(t, st.Is(registers.ArithmeticGreater), true)
}

func TestMask(t *testing.T) {
	st := registers.Carry | registers.OddParity
	st.SetMask(0x12)
	test.Equate(t, st.Mask(), 0x02)
	test.Equate(t, uint16(st), 0x1402)
	test.Equate(t, st.String(), "laeCoPx 2")

	st.SetMask(0x0f)
	test.Equate(t, st.Mask(), 0x0f)
	st.Set(registers.Carry, false)
	test.Equate(t, uint16(st), 0x040f)
}
