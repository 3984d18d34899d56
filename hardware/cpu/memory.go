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
	"github.com/gopher99/gopher99/hardware/memory/traps"
)

// narrow adds the cost of accessing the narrow bus. A word access is a single
// access and is charged once, using the flag of the even address.
func (mc *CPU) narrow(f traps.Flag) {
	if f&traps.Narrow == traps.Narrow {
		mc.result.Cycles += 2
		mc.result.NarrowCycles += 2
	}
}

// readByte returns the byte at address. The value is read from memory and then
// passed to the trap handler and the debug handler, if the address requires
// it.
func (mc *CPU) readByte(address uint16) uint8 {
	f := mc.traps.Flags(address)
	mc.narrow(f)

	v := mc.mem.ReadByte(address)
	if f&traps.TrapRead == traps.TrapRead {
		v = mc.traps.TrapByte(address, true, v)
	}
	if f&traps.DebugRead == traps.DebugRead {
		v = uint8(mc.traps.DebugAccess(address, false, uint16(v), true, false))
	}

	return v
}

// writeByte writes the byte to address. The value is first passed to the trap
// handler and the debug handler, if the address requires it.
func (mc *CPU) writeByte(address uint16, v uint8) {
	f := mc.traps.Flags(address)
	mc.narrow(f)

	if f&traps.TrapWrite == traps.TrapWrite {
		v = mc.traps.TrapByte(address, false, v)
	}
	if f&traps.DebugWrite == traps.DebugWrite {
		v = uint8(mc.traps.DebugAccess(address, false, uint16(v), false, false))
	}

	mc.mem.WriteByte(address, v)
}

// readWord returns the word at address. The low bit of the address is
// ignored. A trapped word is delivered to the trap handler one byte at a time
// but the debug handler sees the whole word.
func (mc *CPU) readWord(address uint16) uint16 {
	return mc.accessWord(address, traps.TrapRead, traps.DebugRead)
}

// fetchWord is the same as readWord() except that the fetch flags are used.
func (mc *CPU) fetchWord(address uint16) uint16 {
	return mc.accessWord(address, traps.TrapFetch, traps.DebugFetch)
}

func (mc *CPU) accessWord(address uint16, trap traps.Flag, debug traps.Flag) uint16 {
	address &= 0xfffe
	hf := mc.traps.Flags(address)
	lf := mc.traps.Flags(address + 1)
	mc.narrow(hf)

	var v uint16
	if (hf|lf)&trap == 0 {
		v = mc.mem.ReadWord(address)
	} else {
		hi := mc.mem.ReadByte(address)
		if hf&trap == trap {
			hi = mc.traps.TrapByte(address, true, hi)
		}
		lo := mc.mem.ReadByte(address + 1)
		if lf&trap == trap {
			lo = mc.traps.TrapByte(address+1, true, lo)
		}
		v = uint16(hi)<<8 | uint16(lo)
	}

	if (hf|lf)&debug == debug {
		v = mc.traps.DebugAccess(address, true, v, true, debug == traps.DebugFetch)
	}

	return v
}

// writeWord writes the word to address. The low bit of the address is
// ignored.
func (mc *CPU) writeWord(address uint16, v uint16) {
	address &= 0xfffe
	hf := mc.traps.Flags(address)
	lf := mc.traps.Flags(address + 1)
	mc.narrow(hf)

	if (hf|lf)&traps.TrapWrite == traps.TrapWrite {
		hi := uint8(v >> 8)
		lo := uint8(v)
		if hf&traps.TrapWrite == traps.TrapWrite {
			hi = mc.traps.TrapByte(address, false, hi)
		}
		if lf&traps.TrapWrite == traps.TrapWrite {
			lo = mc.traps.TrapByte(address+1, false, lo)
		}
		v = uint16(hi)<<8 | uint16(lo)
	}

	if (hf|lf)&traps.DebugWrite == traps.DebugWrite {
		v = mc.traps.DebugAccess(address, true, v, false, false)
	}

	mc.mem.WriteWord(address, v)
}

// fetch returns the next word in the instruction stream and advances the
// program counter. The word is recorded as an operand of the current
// instruction.
func (mc *CPU) fetch() uint16 {
	v := mc.fetchWord(mc.pc)
	mc.pc += 2
	mc.result.AddOperand(v)
	return v
}

// regAddress returns the address of workspace register n.
func (mc *CPU) regAddress(n uint16) uint16 {
	return mc.wp + n<<1
}

// reg returns the value of workspace register n.
func (mc *CPU) reg(n uint16) uint16 {
	return mc.readWord(mc.regAddress(n))
}

// setReg sets the value of workspace register n.
func (mc *CPU) setReg(n uint16, v uint16) {
	mc.writeWord(mc.regAddress(n), v)
}
