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
	"fmt"
	"strings"

	"github.com/gopher99/gopher99/hardware/cpu/instructions"
)

// MaxOperandWords is the largest number of words an instruction can take from
// the instruction stream after the instruction word.
const MaxOperandWords = 2

// Result records the execution of a single instruction.
type Result struct {
	// the address of the instruction word and the instruction word itself
	Address uint16
	Opcode  uint16

	// the definition of the instruction
	Defn *instructions.Definition

	// words taken from the instruction stream after the instruction word
	Operands    [MaxOperandWords]uint16
	NumOperands int

	// total cycles consumed by the instruction, including operand resolution
	// and narrow bus accesses. NarrowCycles is the part of Cycles caused by
	// accesses to the narrow bus
	Cycles       int
	NarrowCycles int

	// whether a jump instruction changed the flow of the program
	JumpTaken bool

	// the instruction was executed by an X instruction. the cycles of the
	// executed instruction are part of the X instruction's result
	Executed *Result

	// interrupt level serviced before the instruction. -1 if no interrupt
	// was serviced
	Interrupt int

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{Interrupt: -1}
}

// AddOperand records a word taken from the instruction stream.
func (r *Result) AddOperand(w uint16) {
	if r.NumOperands < MaxOperandWords {
		r.Operands[r.NumOperands] = w
	}
	r.NumOperands++
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf(">%04x  %04x", r.Address, r.Opcode))
	for i := 0; i < r.NumOperands && i < MaxOperandWords; i++ {
		s.WriteString(fmt.Sprintf(" %04x", r.Operands[i]))
	}
	s.WriteString(fmt.Sprintf("  %s [%d]", r.Defn.Mnemonic, r.Cycles))
	if r.JumpTaken {
		s.WriteString(" taken")
	}
	if r.Executed != nil {
		s.WriteString(fmt.Sprintf(" -> %s", r.Executed))
	}
	if r.Interrupt >= 0 {
		s.WriteString(fmt.Sprintf(" (after interrupt %d)", r.Interrupt))
	}

	return s.String()
}
