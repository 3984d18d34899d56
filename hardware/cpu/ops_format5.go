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

package cpu

import (
	"github.com/gopher99/gopher99/hardware/cpu/instructions"
	"github.com/gopher99/gopher99/hardware/cpu/registers"
)

// shift instructions operate on a workspace register. a count of zero means
// the count is taken from the low four bits of R0 and a count of zero in R0
// means sixteen. each bit shifted costs two cycles.
func (mc *CPU) shift(opcode uint16) {
	w := opcode & 0x0f
	count := (opcode >> 4) & 0x0f
	if count == 0 {
		count = mc.reg(0) & 0x0f
		mc.result.Cycles += 8
		if count == 0 {
			count = 16
		}
	}
	mc.result.Cycles += 2 * int(count)

	v := mc.reg(w)
	var carry, overflow bool

	switch mc.result.Defn.Operator {
	case instructions.SRA:
		for i := uint16(0); i < count; i++ {
			carry = v&0x0001 == 0x0001
			v = v>>1 | v&0x8000
		}
	case instructions.SRL:
		for i := uint16(0); i < count; i++ {
			carry = v&0x0001 == 0x0001
			v >>= 1
		}
	case instructions.SRC:
		for i := uint16(0); i < count; i++ {
			carry = v&0x0001 == 0x0001
			v = v>>1 | v<<15
		}
	case instructions.SLA:
		// overflow is set if the sign bit changes at any point
		for i := uint16(0); i < count; i++ {
			carry = v&0x8000 == 0x8000
			n := v << 1
			if (n^v)&0x8000 == 0x8000 {
				overflow = true
			}
			v = n
		}
		mc.st.Set(registers.Overflow, overflow)
	}

	mc.writeWordResult(mc.regAddress(w), v)
	mc.st.Set(registers.Carry, carry)
}
