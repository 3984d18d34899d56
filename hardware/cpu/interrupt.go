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
	"math/bits"
)

// the cost of servicing an interrupt, in addition to the memory accesses of
// the context switch
const interruptCycles = 22

// SignalInterrupt asserts the interrupt level. The interrupt is serviced
// before the next instruction if the level is permitted by the interrupt mask.
// Safe to call from any goroutine.
func (mc *CPU) SignalInterrupt(level int) {
	if level < 0 || level > 15 {
		return
	}
	for {
		o := mc.interruptFlag.Load()
		if mc.interruptFlag.CompareAndSwap(o, o|1<<level) {
			return
		}
	}
}

// ClearInterrupt removes the interrupt level. Safe to call from any goroutine.
func (mc *CPU) ClearInterrupt(level int) {
	if level < 0 || level > 15 {
		return
	}
	for {
		o := mc.interruptFlag.Load()
		if mc.interruptFlag.CompareAndSwap(o, o&^(1<<level)) {
			return
		}
	}
}

// InterruptFlag returns the asserted interrupt levels. Bit n is set if level n
// is asserted.
func (mc *CPU) InterruptFlag() uint16 {
	return uint16(mc.interruptFlag.Load())
}

// contextSwitch loads a new workspace pointer and program counter from the
// vector pair at address.
func (mc *CPU) contextSwitch(vector uint16) {
	wp := mc.readWord(vector)
	pc := mc.readWord(vector + 2)
	mc.switchContext(wp, pc)
}

// switchContext saves the current WP, PC and ST in R13, R14 and R15 of the new
// workspace.
func (mc *CPU) switchContext(wp uint16, pc uint16) {
	oldWP := mc.wp
	oldPC := mc.pc
	oldST := mc.st

	mc.wp = wp &^ 1
	mc.setReg(13, oldWP)
	mc.setReg(14, oldPC)
	mc.setReg(15, uint16(oldST))
	mc.pc = pc &^ 1
}

// serviceInterrupts polls the interrupt source and services the highest
// priority interrupt permitted by the mask. Returns the level serviced or -1.
func (mc *CPU) serviceInterrupts() int {
	if mc.interrupts != nil {
		mc.interrupts.UpdateInterrupts(mc)
	}

	// a mask of m permits levels 0 to m. level 0 has the highest priority
	pending := uint16(mc.interruptFlag.Load()) & (uint16(2)<<mc.st.Mask() - 1)
	if pending == 0 {
		return -1
	}
	level := bits.TrailingZeros16(pending)

	mc.service.Reset()
	mc.result = &mc.service
	mc.contextSwitch(uint16(level) << 2)
	mc.result = &mc.LastResult

	if level == 0 {
		mc.ClearInterrupt(0)
	} else {
		mc.st.SetMask(uint8(level - 1))
	}

	mc.idle = false
	mc.clockCycles += uint32(interruptCycles + mc.service.Cycles)

	return level
}
