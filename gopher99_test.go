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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"

	"github.com/gopher99/gopher99/hardware"
	"github.com/gopher99/gopher99/test"
)

// a loop that stores an incrementing counter at >a100
//
//	a000  LI   R1,>0000
//	a004  MOV  R1,@>A100
//	a008  INC  R1
//	a00a  JMP  >A004
var program = []byte{
	0x02, 0x01, 0x00, 0x00,
	0xc8, 0x01, 0xa1, 0x00,
	0x05, 0x81,
	0x10, 0xfc,
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func flags(t *testing.T) MachineFlags {
	return MachineFlags{
		Image:  writeFile(t, "program.bin", program),
		Origin: ">a000",
		WP:     ">8300",
	}
}

func kongContext(w *strings.Builder) *kong.Context {
	return &kong.Context{Kong: &kong.Kong{Stdout: w, Stderr: w}}
}

func TestNewMachine(t *testing.T) {
	f := flags(t)
	f.Break = []string{"w:>a100"}

	m, err := newMachine(f, hardware.Options{})
	test.ExpectedSuccess(t, err)
	defer m.cleanUp()

	test.Equate(t, m.ti.CPU.PC(), 0xa000)
	test.Equate(t, m.ti.CPU.WP(), 0x8300)
	test.Equate(t, m.ti.Mem.ReadWord(0xa004), 0xc801)
	test.Equate(t, m.bp.Len(), 1)

	f.PC = ">a004"
	f.WP = "83e0"
	m, err = newMachine(f, hardware.Options{})
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.ti.CPU.PC(), 0xa004)
	test.Equate(t, m.ti.CPU.WP(), 0x83e0)
}

func TestNewMachineErrors(t *testing.T) {
	f := flags(t)
	f.Origin = "nowhere"
	_, err := newMachine(f, hardware.Options{})
	test.ExpectedFailure(t, err)

	// console ROM is not RAM
	f = flags(t)
	f.Origin = ">0000"
	_, err = newMachine(f, hardware.Options{})
	test.ExpectedFailure(t, err)

	f = flags(t)
	f.Break = []string{"x:>a000"}
	_, err = newMachine(f, hardware.Options{})
	test.ExpectedFailure(t, err)

	f = flags(t)
	f.Script = writeFile(t, "bad.lua", []byte("function ("))
	_, err = newMachine(f, hardware.Options{})
	test.ExpectedFailure(t, err)

	f = flags(t)
	f.Image = filepath.Join(t.TempDir(), "missing.bin")
	_, err = newMachine(f, hardware.Options{})
	test.ExpectedFailure(t, err)
}

func TestConsoleROM(t *testing.T) {
	// reset vector: WP >83E0, PC >A000
	rom := []byte{0x83, 0xe0, 0xa0, 0x00}

	f := flags(t)
	f.ROM = writeFile(t, "rom.bin", rom)
	f.PC = ">a008"

	m, err := newMachine(f, hardware.Options{})
	test.ExpectedSuccess(t, err)

	// the program counter flag is ignored when there is a console ROM
	test.Equate(t, m.ti.CPU.PC(), 0xa000)
	test.Equate(t, m.ti.CPU.WP(), 0x83e0)
}

func TestRunCommand(t *testing.T) {
	w := &strings.Builder{}

	c := &runCmd{
		MachineFlags:    flags(t),
		MaxInstructions: 256,
	}
	c.Script = writeFile(t, "count.lua", []byte(`
writes = 0
watch(0xa100, "w")
function access(address, isword, value)
	writes = writes + 1
	return value
end
`))

	test.ExpectedSuccess(t, c.Run(kongContext(w)))
	test.Equate(t, strings.Contains(w.String(), "256 instructions"), true)
	test.Equate(t, strings.Contains(w.String(), "PC=a00"), true)
}

func TestRunCommandBreak(t *testing.T) {
	w := &strings.Builder{}

	c := &runCmd{MachineFlags: flags(t)}
	c.Break = []string{"write:a100"}

	test.ExpectedSuccess(t, c.Run(kongContext(w)))
	test.Equate(t, strings.Contains(w.String(), "break: write of >a100 at >a004 (value >0000)"), true)
	test.Equate(t, strings.Contains(w.String(), "2 instructions"), true)
}

func TestRunCommandTrace(t *testing.T) {
	w := &strings.Builder{}

	c := &runCmd{
		MachineFlags:    flags(t),
		MaxInstructions: 256,
		Trace:           true,
	}

	test.ExpectedSuccess(t, c.Run(kongContext(w)))
	test.Equate(t, strings.Contains(w.String(), "MOV  R1,@>A100"), true)
}

func TestDisasmCommand(t *testing.T) {
	w := &strings.Builder{}

	c := &disasmCmd{
		Image:  writeFile(t, "program.bin", program),
		Origin: ">a000",
	}
	test.ExpectedSuccess(t, c.Run(kongContext(w)))

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	test.Equate(t, len(lines), 4)
	test.Equate(t, strings.Contains(lines[0], "LI   R1,>0000"), true)
	test.Equate(t, strings.Contains(lines[3], "JMP  >A004"), true)

	w.Reset()
	c.Count = 2
	test.ExpectedSuccess(t, c.Run(kongContext(w)))
	lines = strings.Split(strings.TrimSpace(w.String()), "\n")
	test.Equate(t, len(lines), 2)
}

func TestTrieCommand(t *testing.T) {
	w := &strings.Builder{}
	c := &trieCmd{}
	test.ExpectedSuccess(t, c.Run(kongContext(w)))
	test.Equate(t, strings.Contains(w.String(), "digraph"), true)
}

func BenchmarkLoop(b *testing.B) {
	ti, err := hardware.NewTI99(hardware.Options{MaxInstructions: 1000000})
	if err != nil {
		b.Fatal(err)
	}
	if err := ti.LoadRAM(0xa000, program); err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		ti.CPU.ResetCounters()
		ti.CPU.SetWP(0x8300)
		ti.CPU.SetPC(0xa000)
		for ti.CPU.InstructionCount() < 1000000 {
			ti.Step()
		}
	}
}
