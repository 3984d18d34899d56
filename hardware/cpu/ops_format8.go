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
	"github.com/gopher99/gopher99/hardware/cpu/registers"
)

// format 8 instructions operate on a workspace register and/or an immediate
// word that follows the instruction word.

func (mc *CPU) li(opcode uint16) {
	mc.writeWordResult(mc.regAddress(opcode&0x0f), mc.fetch())
}

func (mc *CPU) ai(opcode uint16) {
	imm := mc.fetch()
	w := opcode & 0x0f
	r, carry, overflow := registers.AddWord(mc.reg(w), imm)
	mc.writeWordResult(mc.regAddress(w), r)
	mc.setCarryOverflow(carry, overflow)
}

func (mc *CPU) andi(opcode uint16) {
	imm := mc.fetch()
	w := opcode & 0x0f
	mc.writeWordResult(mc.regAddress(w), mc.reg(w)&imm)
}

func (mc *CPU) ori(opcode uint16) {
	imm := mc.fetch()
	w := opcode & 0x0f
	mc.writeWordResult(mc.regAddress(w), mc.reg(w)|imm)
}

func (mc *CPU) ci(opcode uint16) {
	imm := mc.fetch()
	mc.st.Compare(mc.reg(opcode&0x0f), imm)
}

func (mc *CPU) stwp(opcode uint16) {
	mc.setReg(opcode&0x0f, mc.wp)
}

func (mc *CPU) stst(opcode uint16) {
	mc.setReg(opcode&0x0f, uint16(mc.st))
}

func (mc *CPU) lwpi(_ uint16) {
	mc.wp = mc.fetch() &^ 1
}

func (mc *CPU) limi(_ uint16) {
	mc.st.SetMask(uint8(mc.fetch()))
}
