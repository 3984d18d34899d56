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
)

// address resolves a general address operand and returns the effective
// address. The t argument is the two bit T field and reg is the four bit
// register field. Auto-increment addressing writes the incremented value back
// to the register before returning the original address.
func (mc *CPU) address(t uint16, reg uint16, byteOperand bool) uint16 {
	mode := instructions.ModeFromField(t, reg)
	mc.result.Cycles += mode.Cost(byteOperand)

	switch mode {
	case instructions.Register:
		return mc.regAddress(reg)

	case instructions.Indirect:
		return mc.reg(reg)

	case instructions.AutoIncrement:
		a := mc.reg(reg)
		if byteOperand {
			mc.setReg(reg, a+1)
		} else {
			mc.setReg(reg, a+2)
		}
		return a

	case instructions.Symbolic:
		return mc.fetch()
	}

	// indexed
	base := mc.fetch()
	return base + mc.reg(reg)
}

// source resolves the general address in the low six bits of the opcode.
func (mc *CPU) source(opcode uint16, byteOperand bool) uint16 {
	return mc.address((opcode>>4)&0x03, opcode&0x0f, byteOperand)
}

// destination resolves the general address in bits six to eleven of the
// opcode.
func (mc *CPU) destination(opcode uint16, byteOperand bool) uint16 {
	return mc.address((opcode>>10)&0x03, (opcode>>6)&0x0f, byteOperand)
}
