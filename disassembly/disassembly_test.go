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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/gopher99/gopher99/disassembly"
	"github.com/gopher99/gopher99/hardware/cpu/execution"
	"github.com/gopher99/gopher99/hardware/cpu/instructions"
	"github.com/gopher99/gopher99/test"
)

func fetchWords(origin uint16, words ...uint16) func(uint16) uint16 {
	return func(address uint16) uint16 {
		i := int(address-origin) / 2
		if i < 0 || i >= len(words) {
			return 0
		}
		return words[i]
	}
}

func TestDisassemble(t *testing.T) {
	cases := []struct {
		words    []uint16
		operator string
		operand  string
	}{
		{[]uint16{0xa081}, "A", "R1,R2"},
		{[]uint16{0xd091}, "MOVB", "*R1,R2"},
		{[]uint16{0xc8b1, 0x8300}, "MOV", "*R1+,@>8300(R2)"},
		{[]uint16{0xc820, 0x2000, 0x2100}, "MOV", "@>2000,@>2100"},
		{[]uint16{0x0200, 0x1234}, "LI", "R0,>1234"},
		{[]uint16{0x02e0, 0x83e0}, "LWPI", ">83E0"},
		{[]uint16{0x02a2}, "STWP", "R2"},
		{[]uint16{0x10ff}, "JMP", ">0100"},
		{[]uint16{0x1302}, "JEQ", ">0106"},
		{[]uint16{0x1d01}, "SBO", "1"},
		{[]uint16{0x1fff}, "TB", "-1"},
		{[]uint16{0x2ca0, 0x1234}, "XOP", "@>1234,2"},
		{[]uint16{0x3881}, "MPY", "R1,R2"},
		{[]uint16{0x2881}, "XOR", "R1,R2"},
		{[]uint16{0x3102}, "LDCR", "R2,4"},
		{[]uint16{0x3403}, "STCR", "R3,16"},
		{[]uint16{0x0841}, "SRA", "R1,4"},
		{[]uint16{0x0b01}, "SRC", "R1,0"},
		{[]uint16{0x0420, 0x0100}, "BLWP", "@>0100"},
		{[]uint16{0x0380}, "RTWP", ""},
		{[]uint16{0x0000}, "DATA", ">0000"},
	}

	for _, c := range cases {
		e, next := disassembly.Disassemble(0x0100, fetchWords(0x0100, c.words...))
		test.Equate(t, e.Operator, c.operator)
		test.Equate(t, e.Operand, c.operand)
		test.Equate(t, next, 0x0100+2*len(c.words))
		test.Equate(t, e.Result.NumOperands, len(c.words)-1)
		test.Equate(t, e.Level == disassembly.EntryLevelDecoded, true)
	}
}

func TestEntryString(t *testing.T) {
	e, _ := disassembly.Disassemble(0x6000, fetchWords(0x6000, 0xc8b1, 0x8300))
	test.Equate(t, e.String(), ">6000  C8B1 8300       MOV  *R1+,@>8300(R2)")
	test.Equate(t, e.Cycles(), "14")

	e, _ = disassembly.Disassemble(0x6000, fetchWords(0x6000, 0x0380))
	test.Equate(t, e.String(), ">6000  0380            RTWP")
}

func TestFromResult(t *testing.T) {
	r := execution.Result{
		Address:   0x0200,
		Opcode:    0x0200,
		Defn:      instructions.Lookup(instructions.LI),
		Interrupt: 2,
	}
	r.AddOperand(0xbeef)
	r.Cycles = 20
	r.NarrowCycles = 8

	e := disassembly.FromResult(r)
	test.Equate(t, e.Level == disassembly.EntryLevelExecuted, true)
	test.Equate(t, e.Operand, "R0,>BEEF")
	test.Equate(t, e.Cycles(), "20")
	test.Equate(t, e.Notes(), "narrow 8, after interrupt 2")

	// an entry with no definition
	e = disassembly.FromResult(execution.Result{})
	test.Equate(t, e.String(), "")
	test.Equate(t, e.Cycles(), "?")
}

func TestWrite(t *testing.T) {
	image := []byte{0x02, 0x00, 0x12, 0x34, 0x10, 0xff}
	fetch := disassembly.FetchFromImage(0xa000, image)
	test.Equate(t, fetch(0x9ffe), 0x0000)
	test.Equate(t, fetch(0xa002), 0x1234)
	test.Equate(t, fetch(0xa006), 0x0000)

	w := &test.CompareWriter{}
	next, err := disassembly.Write(w, 0xa000, 2, fetch)
	test.ExpectedSuccess(t, err)
	test.Equate(t, next, 0xa006)

	lines := w.Lines()
	test.Equate(t, len(lines), 2)
	test.Equate(t, strings.HasSuffix(lines[0], "LI   R0,>1234"), true)
	test.Equate(t, strings.HasSuffix(lines[1], "JMP  >A004"), true)
}
