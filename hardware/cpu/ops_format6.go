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
	"github.com/gopher99/gopher99/hardware/cpu/execution"
	"github.com/gopher99/gopher99/hardware/cpu/registers"
)

// format 6 instructions have a single general address.

func (mc *CPU) blwp(opcode uint16) {
	mc.contextSwitch(mc.source(opcode, false))
}

func (mc *CPU) b(opcode uint16) {
	mc.pc = mc.source(opcode, false) &^ 1
}

func (mc *CPU) bl(opcode uint16) {
	a := mc.source(opcode, false)
	mc.setReg(11, mc.pc)
	mc.pc = a &^ 1
}

// the word at the source address is executed as an instruction. any operand
// words required by the executed instruction are taken from the instruction
// stream following the X instruction.
func (mc *CPU) x(opcode uint16) {
	w := mc.readWord(mc.source(opcode, false))

	outer := mc.result
	executed := &execution.Result{Interrupt: -1, Address: outer.Address}
	mc.result = executed
	mc.execute(w)
	mc.result = outer

	outer.Cycles += executed.Cycles
	outer.NarrowCycles += executed.NarrowCycles
	outer.Executed = executed
}

// CLR and SETO do not read the destination
func (mc *CPU) clr(opcode uint16) {
	mc.writeWord(mc.source(opcode, false), 0x0000)
}

func (mc *CPU) seto(opcode uint16) {
	mc.writeWord(mc.source(opcode, false), 0xffff)
}

func (mc *CPU) neg(opcode uint16) {
	a := mc.source(opcode, false)
	r, carry, overflow := registers.SubtractWord(0, mc.readWord(a))
	mc.writeWordResult(a, r)
	mc.setCarryOverflow(carry, overflow)
}

func (mc *CPU) inv(opcode uint16) {
	a := mc.source(opcode, false)
	mc.writeWordResult(a, ^mc.readWord(a))
}

func (mc *CPU) addImmediate(opcode uint16, n uint16) {
	a := mc.source(opcode, false)
	r, carry, overflow := registers.AddWord(mc.readWord(a), n)
	mc.writeWordResult(a, r)
	mc.setCarryOverflow(carry, overflow)
}

func (mc *CPU) subtractImmediate(opcode uint16, n uint16) {
	a := mc.source(opcode, false)
	r, carry, overflow := registers.SubtractWord(mc.readWord(a), n)
	mc.writeWordResult(a, r)
	mc.setCarryOverflow(carry, overflow)
}

func (mc *CPU) inc(opcode uint16) {
	mc.addImmediate(opcode, 1)
}

func (mc *CPU) inct(opcode uint16) {
	mc.addImmediate(opcode, 2)
}

func (mc *CPU) dec(opcode uint16) {
	mc.subtractImmediate(opcode, 1)
}

func (mc *CPU) dect(opcode uint16) {
	mc.subtractImmediate(opcode, 2)
}

func (mc *CPU) swpb(opcode uint16) {
	a := mc.source(opcode, false)
	v := mc.readWord(a)
	mc.writeWord(a, v<<8|v>>8)
}

// the comparison bits are set from the original value. the result is only
// written if the original value is negative.
func (mc *CPU) abs(opcode uint16) {
	a := mc.source(opcode, false)
	v := mc.readWord(a)
	mc.st.CompareZero(v)
	mc.st.Set(registers.Overflow, v == 0x8000)

	if v&0x8000 == 0x8000 {
		mc.writeWord(a, -v)
		mc.result.Cycles += 2
	}
}
