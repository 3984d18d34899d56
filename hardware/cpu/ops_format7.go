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
	"github.com/gopher99/gopher99/hardware/cpu/registers"
)

// format 7 instructions have no operands. apart from RTWP they are external
// instructions that place a code on the address bus for external hardware.

func (mc *CPU) idleInstruction(_ uint16) {
	mc.idle = true
	mc.signalExternal(ExternalIDLE)
}

func (mc *CPU) rset(_ uint16) {
	mc.st.SetMask(0)
	mc.signalExternal(ExternalRSET)
}

func (mc *CPU) ckon(_ uint16) {
	mc.signalExternal(ExternalCKON)
}

func (mc *CPU) ckof(_ uint16) {
	mc.signalExternal(ExternalCKOF)
}

func (mc *CPU) lrex(_ uint16) {
	mc.signalExternal(ExternalLREX)
}

// return from a context switch. all three values are read from the current
// workspace before any register is changed
func (mc *CPU) rtwp(_ uint16) {
	st := mc.reg(15)
	pc := mc.reg(14)
	wp := mc.reg(13)
	mc.st = registers.Status(st)
	mc.pc = pc &^ 1
	mc.wp = wp &^ 1
}
