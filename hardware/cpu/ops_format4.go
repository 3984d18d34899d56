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

// format 4 instructions transfer between one and sixteen bits to or from the
// CRU, starting at the CRU base address. transfers of eight bits or fewer use
// a byte operand.

func cruCount(opcode uint16) int {
	c := int(opcode>>6) & 0x0f
	if c == 0 {
		return 16
	}
	return c
}

func (mc *CPU) ldcr(opcode uint16) {
	count := cruCount(opcode)
	byteOperand := count <= 8
	sa := mc.source(opcode, byteOperand)

	var v uint16
	if byteOperand {
		b := mc.readByte(sa)
		mc.st.CompareZeroByte(b)
		mc.st.SetParity(b)
		v = uint16(b)
	} else {
		v = mc.readWord(sa)
		mc.st.CompareZero(v)
	}

	base := mc.cruBase()
	for i := 0; i < count; i++ {
		mc.writeBit(base+uint16(i), v&(1<<i) != 0)
	}

	mc.result.Cycles += 2 * count
}

func (mc *CPU) stcr(opcode uint16) {
	count := cruCount(opcode)
	byteOperand := count <= 8
	sa := mc.source(opcode, byteOperand)

	var v uint16
	base := mc.cruBase()
	for i := 0; i < count; i++ {
		if mc.readBit(base + uint16(i)) {
			v |= 1 << i
		}
	}

	if byteOperand {
		b := uint8(v)
		mc.writeByte(sa, b)
		mc.st.CompareZeroByte(b)
		mc.st.SetParity(b)
	} else {
		mc.writeWordResult(sa, v)
	}

	// the base cost of the definition is the cost for one to seven bits
	switch {
	case count == 8:
		mc.result.Cycles += 2
	case count > 8 && count < 16:
		mc.result.Cycles += 16
	case count == 16:
		mc.result.Cycles += 18
	}
}
