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

// format 2 instructions have a signed eight bit displacement. for the jump
// instructions the displacement is in words and relative to the address of
// the following instruction. for the CRU bit instructions it is relative to
// the CRU base address.

func displacement(opcode uint16) uint16 {
	return uint16(int16(int8(uint8(opcode))))
}

func (mc *CPU) condition(op instructions.Operator) bool {
	st := mc.st
	lgt := st.Is(registers.LogicalGreater)
	agt := st.Is(registers.ArithmeticGreater)
	eq := st.Is(registers.Equal)

	switch op {
	case instructions.JMP:
		return true
	case instructions.JLT:
		return !agt && !eq
	case instructions.JLE:
		return !lgt || eq
	case instructions.JEQ:
		return eq
	case instructions.JHE:
		return lgt || eq
	case instructions.JGT:
		return agt
	case instructions.JNE:
		return !eq
	case instructions.JNC:
		return !st.Is(registers.Carry)
	case instructions.JOC:
		return st.Is(registers.Carry)
	case instructions.JNO:
		return !st.Is(registers.Overflow)
	case instructions.JL:
		return !lgt && !eq
	case instructions.JH:
		return lgt && !eq
	case instructions.JOP:
		return st.Is(registers.OddParity)
	}

	return false
}

func (mc *CPU) jump(opcode uint16) {
	if !mc.condition(mc.result.Defn.Operator) {
		return
	}
	mc.pc += displacement(opcode) << 1
	mc.result.Cycles += 2
	mc.result.JumpTaken = true
}

func (mc *CPU) sbo(opcode uint16) {
	mc.writeBit(mc.cruBase()+displacement(opcode), true)
}

func (mc *CPU) sbz(opcode uint16) {
	mc.writeBit(mc.cruBase()+displacement(opcode), false)
}

func (mc *CPU) tb(opcode uint16) {
	mc.st.Set(registers.Equal, mc.readBit(mc.cruBase()+displacement(opcode)))
}
