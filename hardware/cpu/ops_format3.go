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
	"math/bits"

	"github.com/gopher99/gopher99/hardware/cpu/registers"
)

// format 3 and format 9 instructions have a general source address and a
// workspace register destination in bits six to nine.

func destinationReg(opcode uint16) uint16 {
	return (opcode >> 6) & 0x0f
}

func (mc *CPU) coc(opcode uint16) {
	src := mc.readWord(mc.source(opcode, false))
	dst := mc.reg(destinationReg(opcode))
	mc.st.Set(registers.Equal, src&dst == src)
}

func (mc *CPU) czc(opcode uint16) {
	src := mc.readWord(mc.source(opcode, false))
	dst := mc.reg(destinationReg(opcode))
	mc.st.Set(registers.Equal, src&dst == 0)
}

func (mc *CPU) xor(opcode uint16) {
	src := mc.readWord(mc.source(opcode, false))
	d := destinationReg(opcode)
	mc.writeWordResult(mc.regAddress(d), mc.reg(d)^src)
}

// the context switch to the XOP vector puts the effective address of the
// source operand in the new R11
func (mc *CPU) xop(opcode uint16) {
	ea := mc.source(opcode, false)
	mc.contextSwitch(0x0040 + destinationReg(opcode)<<2)
	mc.setReg(11, ea)
	mc.st.Set(registers.XOP, true)
}

// the 32 bit product is stored in Rd and Rd+1. for R15, Rd+1 is the word
// immediately after the workspace
func (mc *CPU) mpy(opcode uint16) {
	src := mc.readWord(mc.source(opcode, false))
	d := destinationReg(opcode)
	p := uint32(mc.reg(d)) * uint32(src)
	mc.writeWord(mc.regAddress(d), uint16(p>>16))
	mc.writeWord(mc.regAddress(d)+2, uint16(p))
}

// the dividend is the 32 bit value in Rd and Rd+1. the quotient is stored in
// Rd and the remainder in Rd+1. if the divisor is not greater than Rd the
// quotient will not fit in 16 bits and the instruction stops early with the
// overflow bit set.
func (mc *CPU) div(opcode uint16) {
	src := mc.readWord(mc.source(opcode, false))
	d := destinationReg(opcode)
	hi := mc.reg(d)

	if src <= hi {
		mc.st.Set(registers.Overflow, true)
		return
	}

	lo := mc.readWord(mc.regAddress(d) + 2)
	dividend := uint32(hi)<<16 | uint32(lo)
	q := uint16(dividend / uint32(src))
	r := uint16(dividend % uint32(src))

	mc.writeWord(mc.regAddress(d), q)
	mc.writeWord(mc.regAddress(d)+2, r)
	mc.st.Set(registers.Overflow, false)

	// the base cost of the definition is the overflow cost
	mc.result.Cycles += 92 - mc.result.Defn.Cycles + 2*bits.OnesCount16(q)
}
