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

package hardware

import (
	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/logger"
)

// LoadROM copies the console ROM image into the console ROM region.
func (ti *TI99) LoadROM(data []byte) error {
	if len(data) > len(ti.rom) {
		return curated.Errorf("hardware: console ROM is too large (%d bytes)", len(data))
	}
	clear(ti.rom)
	copy(ti.rom, data)
	logger.Logf(logger.Allow, "hardware", "loaded %d bytes of console ROM", len(data))
	return nil
}

// LoadCartridge copies the cartridge ROM image into the cartridge ROM
// region. Bank switched cartridges are not supported.
func (ti *TI99) LoadCartridge(data []byte) error {
	if len(data) > len(ti.cart) {
		return curated.Errorf("hardware: cartridge is too large (%d bytes)", len(data))
	}
	clear(ti.cart)
	copy(ti.cart, data)
	logger.Logf(logger.Allow, "hardware", "loaded %d bytes of cartridge ROM", len(data))
	return nil
}

// LoadGROM copies data into GROM space.
func (ti *TI99) LoadGROM(address uint16, data []byte) error {
	if err := ti.GROM.Map(address, data, true); err != nil {
		return curated.Errorf("hardware: %v", err)
	}
	return nil
}

// IsRAM returns true if address is in the memory expansion or the
// scratchpad.
func IsRAM(address uint16) bool {
	switch {
	case address >= LowExpansion && address < LowExpansion+LowSize:
		return true
	case address >= Scratchpad && address < Scratchpad+0x400:
		return true
	case address >= HighExpansion:
		return true
	}
	return false
}

// LoadRAM copies data into RAM starting at address. Every byte must land in
// RAM.
func (ti *TI99) LoadRAM(address uint16, data []byte) error {
	end := int(address) + len(data)
	if end > 0x10000 {
		return curated.Errorf("hardware: image at >%04x is beyond the end of memory", address)
	}
	for a := int(address); a < end; a++ {
		if !IsRAM(uint16(a)) {
			return curated.Errorf("hardware: image at >%04x covers >%04x which is not RAM", address, a)
		}
	}
	ti.Mem.Write(address, data)
	logger.Logf(logger.Allow, "hardware", "loaded %d bytes of RAM at >%04x", len(data), address)
	return nil
}
