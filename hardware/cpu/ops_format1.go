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

// format 1 instructions have a general source address and a general
// destination address. the source is always resolved first.

func (mc *CPU) wordOperands(opcode uint16) (src uint16, dst uint16, da uint16) {
	src = mc.readWord(mc.source(opcode, false))
	da = mc.destination(opcode, false)
	dst = mc.readWord(da)
	return src, dst, da
}

func (mc *CPU) byteOperands(opcode uint16) (src uint8, dst uint8, da uint16) {
	src = mc.readByte(mc.source(opcode, true))
	da = mc.destination(opcode, true)
	dst = mc.readByte(da)
	return src, dst, da
}

// writeWordResult writes the word and sets the comparison bits.
func (mc *CPU) writeWordResult(address uint16, r uint16) {
	mc.writeWord(address, r)
	mc.st.CompareZero(r)
}

// writeByteResult writes the byte and sets the comparison and parity bits.
func (mc *CPU) writeByteResult(address uint16, r uint8) {
	mc.writeByte(address, r)
	mc.st.CompareZeroByte(r)
	mc.st.SetParity(r)
}

func (mc *CPU) setCarryOverflow(carry bool, overflow bool) {
	mc.st.Set(registers.Carry, carry)
	mc.st.Set(registers.Overflow, overflow)
}

func (mc *CPU) szc(opcode uint16) {
	src, dst, da := mc.wordOperands(opcode)
	mc.writeWordResult(da, dst&^src)
}

func (mc *CPU) szcb(opcode uint16) {
	src, dst, da := mc.byteOperands(opcode)
	mc.writeByteResult(da, dst&^src)
}

func (mc *CPU) s(opcode uint16) {
	src, dst, da := mc.wordOperands(opcode)
	r, carry, overflow := registers.SubtractWord(dst, src)
	mc.writeWordResult(da, r)
	mc.setCarryOverflow(carry, overflow)
}

func (mc *CPU) sb(opcode uint16) {
	src, dst, da := mc.byteOperands(opcode)
	r, carry, overflow := registers.SubtractByte(dst, src)
	mc.writeByteResult(da, r)
	mc.setCarryOverflow(carry, overflow)
}

func (mc *CPU) c(opcode uint16) {
	src, dst, _ := mc.wordOperands(opcode)
	mc.st.Compare(src, dst)
}

func (mc *CPU) cb(opcode uint16) {
	src, dst, _ := mc.byteOperands(opcode)
	mc.st.CompareBytes(src, dst)
	mc.st.SetParity(src)
}

func (mc *CPU) a(opcode uint16) {
	src, dst, da := mc.wordOperands(opcode)
	r, carry, overflow := registers.AddWord(dst, src)
	mc.writeWordResult(da, r)
	mc.setCarryOverflow(carry, overflow)
}

func (mc *CPU) ab(opcode uint16) {
	src, dst, da := mc.byteOperands(opcode)
	r, carry, overflow := registers.AddByte(dst, src)
	mc.writeByteResult(da, r)
	mc.setCarryOverflow(carry, overflow)
}

// the move instructions do not read the destination

func (mc *CPU) mov(opcode uint16) {
	src := mc.readWord(mc.source(opcode, false))
	mc.writeWordResult(mc.destination(opcode, false), src)
}

func (mc *CPU) movb(opcode uint16) {
	src := mc.readByte(mc.source(opcode, true))
	mc.writeByteResult(mc.destination(opcode, true), src)
}

func (mc *CPU) soc(opcode uint16) {
	src, dst, da := mc.wordOperands(opcode)
	mc.writeWordResult(da, dst|src)
}

func (mc *CPU) socb(opcode uint16) {
	src, dst, da := mc.byteOperands(opcode)
	mc.writeByteResult(da, dst|src)
}
