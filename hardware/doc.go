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

// Package hardware is the base package for the TI-99/4A emulation. It wires a
// CPU to the console memory map, the GROM ports and the peripheral interrupt
// and CRU lines.
//
// The memory map is:
//
//	>0000 - >1FFF	console ROM (read-only)
//	>2000 - >3FFF	low memory expansion
//	>4000 - >5FFF	peripheral ROM space (unmapped)
//	>6000 - >7FFF	cartridge ROM
//	>8000 - >83FF	scratchpad RAM (256 bytes, mirrored four times)
//	>8400 - >9FFF	memory mapped devices (GROM ports at >9800 and >9C00)
//	>A000 - >FFFF	high memory expansion
//
// Only the console ROM and the scratchpad are on the 16-bit bus. Every other
// address is on the 8-bit bus and costs extra cycles.
package hardware
