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

package disassembly

import (
	"fmt"

	"github.com/gopher99/gopher99/hardware/cpu/decode"
	"github.com/gopher99/gopher99/hardware/cpu/execution"
	"github.com/gopher99/gopher99/hardware/cpu/instructions"
)

// operands reads words from the instruction stream after the instruction
// word.
type operands struct {
	pc    uint16
	fetch func(address uint16) uint16
	words []uint16
}

func (o *operands) next() uint16 {
	w := o.fetch(o.pc)
	o.pc += 2
	o.words = append(o.words, w)
	return w
}

// Disassemble decodes the instruction at pc. The fetch function is used to
// read the instruction word and any operand words. Returns the entry and the
// address of the following instruction.
func Disassemble(pc uint16, fetch func(address uint16) uint16) (Entry, uint16) {
	pc &^= 1
	opcode := fetch(pc)
	defn := decode.Standard().Lookup(opcode)

	o := &operands{pc: pc + 2, fetch: fetch}
	operand := formatOperand(defn, pc, opcode, o)

	r := execution.Result{
		Address:   pc,
		Opcode:    opcode,
		Defn:      defn,
		Interrupt: -1,
	}
	for _, w := range o.words {
		r.AddOperand(w)
	}

	return newEntry(EntryLevelDecoded, r, operand), o.pc
}

// FromResult formats an executed instruction. Operand words are taken from
// the result and not from memory.
func FromResult(r execution.Result) Entry {
	if r.Defn == nil {
		return Entry{Result: r}
	}

	i := 0
	o := &operands{pc: r.Address + 2, fetch: func(_ uint16) uint16 {
		if i >= r.NumOperands || i >= execution.MaxOperandWords {
			return 0
		}
		w := r.Operands[i]
		i++
		return w
	}}

	return newEntry(EntryLevelExecuted, r, formatOperand(r.Defn, r.Address, r.Opcode, o))
}

// general formats the general address in the low six bits of field.
func general(field uint16, o *operands) string {
	reg := field & 0x0f
	switch instructions.ModeFromField((field>>4)&0x03, reg) {
	case instructions.Register:
		return fmt.Sprintf("R%d", reg)
	case instructions.Indirect:
		return fmt.Sprintf("*R%d", reg)
	case instructions.AutoIncrement:
		return fmt.Sprintf("*R%d+", reg)
	case instructions.Symbolic:
		return fmt.Sprintf("@>%04X", o.next())
	}
	return fmt.Sprintf("@>%04X(R%d)", o.next(), reg)
}

func formatOperand(defn *instructions.Definition, pc uint16, opcode uint16, o *operands) string {
	switch defn.Format {
	case instructions.Format1:
		src := general(opcode, o)
		dst := general(opcode>>6, o)
		return fmt.Sprintf("%s,%s", src, dst)

	case instructions.Format2:
		disp := int8(uint8(opcode))
		if defn.IsJump() {
			return fmt.Sprintf(">%04X", pc+2+uint16(int16(disp))<<1)
		}
		return fmt.Sprintf("%d", disp)

	case instructions.Format3:
		return fmt.Sprintf("%s,R%d", general(opcode, o), (opcode>>6)&0x0f)

	case instructions.Format4:
		count := (opcode >> 6) & 0x0f
		if count == 0 {
			count = 16
		}
		return fmt.Sprintf("%s,%d", general(opcode, o), count)

	case instructions.Format5:
		return fmt.Sprintf("R%d,%d", opcode&0x0f, (opcode>>4)&0x0f)

	case instructions.Format6:
		return general(opcode, o)

	case instructions.Format7:
		return ""

	case instructions.Format8:
		switch defn.Operator {
		case instructions.STWP, instructions.STST:
			return fmt.Sprintf("R%d", opcode&0x0f)
		case instructions.LWPI, instructions.LIMI:
			return fmt.Sprintf(">%04X", o.next())
		}
		return fmt.Sprintf("R%d,>%04X", opcode&0x0f, o.next())

	case instructions.Format9:
		if defn.Operator == instructions.XOP {
			return fmt.Sprintf("%s,%d", general(opcode, o), (opcode>>6)&0x0f)
		}
		return fmt.Sprintf("%s,R%d", general(opcode, o), (opcode>>6)&0x0f)
	}

	// invalid instruction words are shown as data
	return fmt.Sprintf(">%04X", opcode)
}
