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
	"strings"

	"github.com/gopher99/gopher99/hardware/cpu/execution"
)

// EntryLevel describes how the Entry was created.
type EntryLevel int

// List of valid EntryLevel values.
//
// Decoded entries have been decoded from memory as though the address holds a
// valid instruction. Executed entries have been created from the result of an
// instruction the CPU executed.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelExecuted
)

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// copy of the decoded or executed instruction
	Result execution.Result

	// string representations of the information in Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func newEntry(level EntryLevel, r execution.Result, operand string) Entry {
	e := Entry{
		Level:    level,
		Result:   r,
		Address:  fmt.Sprintf(">%04X", r.Address),
		Operator: r.Defn.Mnemonic,
		Operand:  operand,
	}

	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%04X", r.Opcode))
	for i := 0; i < r.NumOperands && i < execution.MaxOperandWords; i++ {
		b.WriteString(fmt.Sprintf(" %04X", r.Operands[i]))
	}
	e.Bytecode = b.String()

	return e
}

// Cycles returns the number of cycles used by the instruction. For decoded
// entries this is the base cost of the instruction, before the cost of the
// addressing modes.
func (e Entry) Cycles() string {
	if e.Result.Defn == nil {
		return "?"
	}
	if e.Level < EntryLevelExecuted {
		return fmt.Sprintf("%d", e.Result.Defn.Cycles)
	}
	return fmt.Sprintf("%d", e.Result.Cycles)
}

// Notes returns information about the execution of the instruction.
func (e Entry) Notes() string {
	if e.Level < EntryLevelExecuted {
		return ""
	}

	var n []string
	if e.Result.JumpTaken {
		n = append(n, "taken")
	}
	if e.Result.NarrowCycles > 0 {
		n = append(n, fmt.Sprintf("narrow %d", e.Result.NarrowCycles))
	}
	if e.Result.Interrupt >= 0 {
		n = append(n, fmt.Sprintf("after interrupt %d", e.Result.Interrupt))
	}
	if e.Result.Executed != nil {
		x := FromResult(*e.Result.Executed)
		n = append(n, strings.TrimSpace(fmt.Sprintf("executes %s %s", x.Operator, x.Operand)))
	}

	return strings.Join(n, ", ")
}

func (e Entry) String() string {
	if e.Result.Defn == nil {
		return ""
	}
	s := fmt.Sprintf("%s  %-14s  %-4s %s", e.Address, e.Bytecode, e.Operator, e.Operand)
	return strings.TrimRight(s, " ")
}
