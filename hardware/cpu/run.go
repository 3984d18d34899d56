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
	"github.com/gopher99/gopher99/debugger/govern"
)

// Stop requests that the CPU stops at the end of the current instruction. Safe
// to call from any goroutine.
func (mc *CPU) Stop() {
	mc.stop.Store(true)
}

// Step services any pending interrupt and then executes one instruction.
// Returns true if a stop was requested during (or before) the instruction. The
// stop request is cleared.
func (mc *CPU) Step() bool {
	if mc.State() == govern.Stopped {
		mc.state.Store(int32(govern.Stepping))
		defer mc.state.Store(int32(govern.Stopped))
	}

	mc.lockedStep()

	return mc.stop.Swap(false)
}

// Run executes instructions until Stop() is called. At least one instruction
// is executed.
func (mc *CPU) Run() {
	mc.state.Store(int32(govern.Running))
	defer mc.state.Store(int32(govern.Stopped))

	for {
		mc.lockedStep()
		if mc.stop.Swap(false) {
			return
		}
	}
}

func (mc *CPU) lockedStep() {
	mc.crit.Lock()
	defer mc.crit.Unlock()
	mc.step()
}

func (mc *CPU) step() {
	level := mc.serviceInterrupts()

	// an idle CPU only checks for interrupts
	if mc.idle {
		mc.clockCycles += 4
		return
	}

	mc.LastResult.Reset()
	mc.LastResult.Interrupt = level
	mc.LastResult.Address = mc.pc
	mc.result = &mc.LastResult

	opcode := mc.fetchWord(mc.pc)
	mc.pc += 2
	mc.execute(opcode)

	mc.clockCycles += uint32(mc.LastResult.Cycles)

	mc.instructions++
	if mc.instructions&0xff == 0 && mc.tick != nil {
		mc.tick()
	}
}

// Reset clears the status register and performs a context switch through the
// vector at address zero. The counters are not changed. Must not be called
// from a trap or debug handler.
func (mc *CPU) Reset() {
	mc.crit.Lock()
	defer mc.crit.Unlock()

	mc.st = 0
	mc.idle = false
	mc.LastResult.Reset()

	mc.service.Reset()
	mc.result = &mc.service
	mc.contextSwitch(0x0000)
	mc.result = &mc.LastResult
}
