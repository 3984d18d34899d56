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
	"github.com/gopher99/gopher99/hardware/memory/paging"
	"github.com/gopher99/gopher99/hardware/memory/traps"
)

// Snapshot is a copy of the CPU state, the contents of the address space and
// the trap ownership tables.
type Snapshot struct {
	pc            uint16
	wp            uint16
	st            registers.Status
	clockCycles   uint32
	instructions  uint32
	interruptFlag uint32
	idle          bool
	lastResult    execution.Result

	memory []byte
	traps  *traps.State
}

// PC returns the program counter at the time of the snapshot.
func (s *Snapshot) PC() uint16 {
	return s.pc
}

// Memory returns the contents of the address space at the time of the
// snapshot.
func (s *Snapshot) Memory() []byte {
	return s.memory
}

// Snapshot creates a copy of the CPU in its current state. Safe to call from
// any goroutine.
func (mc *CPU) Snapshot() *Snapshot {
	mc.crit.Lock()
	defer mc.crit.Unlock()

	return &Snapshot{
		pc:            mc.pc,
		wp:            mc.wp,
		st:            mc.st,
		clockCycles:   mc.clockCycles,
		instructions:  mc.instructions,
		interruptFlag: mc.interruptFlag.Load(),
		idle:          mc.idle,
		lastResult:    mc.LastResult,
		memory:        mc.mem.Read(0, paging.AddressSpace),
		traps:         mc.traps.Snapshot(),
	}
}

// Restore the CPU to the state in the snapshot. Memory in read-only pages is
// not restored. Safe to call from any goroutine.
func (mc *CPU) Restore(s *Snapshot) {
	mc.crit.Lock()
	defer mc.crit.Unlock()

	mc.pc = s.pc
	mc.wp = s.wp
	mc.st = s.st
	mc.clockCycles = s.clockCycles
	mc.instructions = s.instructions
	mc.interruptFlag.Store(s.interruptFlag)
	mc.idle = s.idle
	mc.LastResult = s.lastResult
	mc.result = &mc.LastResult
	mc.mem.Write(0, s.memory)
	mc.traps.Restore(s.traps)
}
