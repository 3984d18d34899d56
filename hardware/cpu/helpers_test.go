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

package cpu_test

import (
	"testing"

	"github.com/gopher99/gopher99/hardware/cpu"
	"github.com/gopher99/gopher99/hardware/cpu/execution"
	"github.com/gopher99/gopher99/hardware/memory/paging"
)

// machine is a CPU with 64KB of RAM. the workspace is at >8300 and the program
// counter is zero.
type machine struct {
	ram []byte
	mem *paging.Manager
	mc  *cpu.CPU
}

func newMachine() *machine {
	m := &machine{
		ram: make([]byte, paging.AddressSpace),
		mem: paging.NewManager("cpu", 256),
	}
	m.mem.MapRegion(0x0000, paging.AddressSpace, m.ram, false)
	m.mc = cpu.NewCPU(m.mem)
	m.mc.SetWP(0x8300)
	m.mc.SetPC(0x0000)
	return m
}

// putWords writes words to memory and returns the address after the last word.
func (m *machine) putWords(origin uint16, words ...uint16) uint16 {
	for _, w := range words {
		m.mem.WriteWord(origin, w)
		origin += 2
	}
	return origin
}

// run sets the program counter to origin and executes one instruction.
func (m *machine) run(t *testing.T, origin uint16) execution.Result {
	t.Helper()
	m.mc.SetPC(origin)
	return m.step(t)
}

func (m *machine) step(t *testing.T) execution.Result {
	t.Helper()
	m.mc.Step()
	r := m.mc.LastResult
	if err := r.IsValid(); err != nil {
		t.Fatal(err)
	}
	return r
}

func (m *machine) assertWord(t *testing.T, address uint16, value uint16) {
	t.Helper()
	d := m.mem.ReadWord(address)
	if d != value {
		t.Errorf("memory assertion failed (%04x  - wanted %04x at address %04x)", d, value, address)
	}
}

func (m *machine) assertReg(t *testing.T, n int, value uint16) {
	t.Helper()
	d := m.mc.Register(n)
	if d != value {
		t.Errorf("register assertion failed (R%d=%04x  - wanted %04x)", n, d, value)
	}
}

func (m *machine) assertStatus(t *testing.T, value string) {
	t.Helper()
	if m.mc.ST().String() != value {
		t.Errorf("status assertion failed (%s  - wanted %s)", m.mc.ST(), value)
	}
}
