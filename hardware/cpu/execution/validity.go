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

package execution

import (
	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/hardware/cpu/instructions"
)

// operandCost returns the addressing cost and the number of words taken from
// the instruction stream for the general address field at bit position shift.
func operandCost(opcode uint16, shift uint, byteOperand bool) (int, int) {
	field := opcode >> shift
	mode := instructions.ModeFromField((field>>4)&0x03, field&0x0f)
	return mode.Cost(byteOperand), mode.ExtraWords()
}

// expected returns the number of cycles and operand words an instruction
// should consume, ignoring the narrow bus. The exact flag is false for
// instructions with data dependent timing, in which case cycles is the
// minimum.
func expected(defn *instructions.Definition, opcode uint16) (cycles int, words int, exact bool) {
	cycles = defn.Cycles
	exact = true

	switch defn.Format {
	case instructions.Format1:
		sc, sw := operandCost(opcode, 0, defn.ByteOperand)
		dc, dw := operandCost(opcode, 6, defn.ByteOperand)
		cycles += sc + dc
		words = sw + dw

	case instructions.Format3, instructions.Format4, instructions.Format6, instructions.Format9:
		c, w := operandCost(opcode, 0, defn.Operator == instructions.LDCR || defn.Operator == instructions.STCR)
		cycles += c
		words = w

		switch defn.Operator {
		case instructions.X, instructions.ABS, instructions.LDCR, instructions.STCR, instructions.DIV:
			exact = false
		}

	case instructions.Format5:
		exact = false

	case instructions.Format8:
		switch defn.Operator {
		case instructions.STWP, instructions.STST:
		default:
			words = 1
		}
	}

	return cycles, words, exact
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}
	if r.Defn == nil {
		return curated.Errorf("cpu: execution has no instruction definition")
	}
	if !r.Defn.Matches(r.Opcode) && r.Defn.Operator != instructions.Invalid {
		return curated.Errorf("cpu: opcode %04x does not match definition [%s]", r.Opcode, r.Defn.Mnemonic)
	}

	cycles, words, exact := expected(r.Defn, r.Opcode)

	if r.NumOperands != words {
		return curated.Errorf("cpu: unexpected number of operand words for opcode %04x [%s] (%d instead of %d)",
			r.Opcode, r.Defn.Mnemonic, r.NumOperands, words)
	}

	actual := r.Cycles - r.NarrowCycles

	if r.Defn.IsJump() {
		if r.JumpTaken {
			cycles += 2
		}
		if actual != cycles {
			return curated.Errorf("cpu: number of cycles wrong for opcode %04x [%s] (%d instead of %d)",
				r.Opcode, r.Defn.Mnemonic, actual, cycles)
		}
		return nil
	}

	if r.JumpTaken {
		return curated.Errorf("cpu: jump taken by non-jump instruction [%s]", r.Defn.Mnemonic)
	}

	if exact {
		if actual != cycles {
			return curated.Errorf("cpu: number of cycles wrong for opcode %04x [%s] (%d instead of %d)",
				r.Opcode, r.Defn.Mnemonic, actual, cycles)
		}
	} else if actual < cycles {
		return curated.Errorf("cpu: too few cycles for opcode %04x [%s] (%d but at least %d)",
			r.Opcode, r.Defn.Mnemonic, actual, cycles)
	}

	return nil
}
