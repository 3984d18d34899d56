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

// CRU is implemented by devices on the communications register unit, the
// bit addressable I/O space of the TMS9900. Addresses are bit numbers in the
// range 0 to 4095.
type CRU interface {
	ReadBit(address uint16) bool
	WriteBit(address uint16, v bool)
}

// ExternalCode is the code placed on the address bus by the external
// instructions.
type ExternalCode int

// List of external instruction codes.
const (
	ExternalIDLE ExternalCode = 2
	ExternalRSET ExternalCode = 3
	ExternalCKON ExternalCode = 5
	ExternalCKOF ExternalCode = 6
	ExternalLREX ExternalCode = 7
)

func (c ExternalCode) String() string {
	switch c {
	case ExternalIDLE:
		return "IDLE"
	case ExternalRSET:
		return "RSET"
	case ExternalCKON:
		return "CKON"
	case ExternalCKOF:
		return "CKOF"
	case ExternalLREX:
		return "LREX"
	}
	return "unknown external code"
}

// the CRU address space is 12 bits wide
const cruMask = 0x0fff

// SetCRU sets the device that responds to CRU instructions. With no device,
// reads return false and writes are ignored.
func (mc *CPU) SetCRU(cru CRU) {
	mc.cru = cru
}

// SetExternal sets the function called when an external instruction is
// executed.
func (mc *CPU) SetExternal(f func(ExternalCode)) {
	mc.external = f
}

func (mc *CPU) signalExternal(code ExternalCode) {
	if mc.external != nil {
		mc.external(code)
	}
}

// cruBase is the CRU base address held in bits 3 to 14 of R12.
func (mc *CPU) cruBase() uint16 {
	return mc.reg(12) >> 1
}

func (mc *CPU) readBit(address uint16) bool {
	if mc.cru == nil {
		return false
	}
	return mc.cru.ReadBit(address & cruMask)
}

func (mc *CPU) writeBit(address uint16, v bool) {
	if mc.cru != nil {
		mc.cru.WriteBit(address&cruMask, v)
	}
}
