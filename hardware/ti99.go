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
	"io"

	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/hardware/cpu"
	"github.com/gopher99/gopher99/hardware/grom"
	"github.com/gopher99/gopher99/hardware/memory/paging"
)

// Options for the construction of a TI99.
type Options struct {
	// put all memory on the 16-bit bus
	DisableNarrow bool

	// write the disassembly of every instruction executed by Run()
	Trace io.Writer

	// stop Run() after at least this number of instructions. the count is
	// checked every 256 instructions. zero means no limit
	MaxInstructions uint32
}

// List of memory regions.
const (
	ConsoleROM     = 0x0000
	ConsoleROMSize = 0x2000
	LowExpansion   = 0x2000
	LowSize        = 0x2000
	CartridgeROM   = 0x6000
	CartridgeSize  = 0x2000
	Scratchpad     = 0x8000
	ScratchpadSize = 0x0100
	HighExpansion  = 0xa000
	HighSize       = 0x6000
)

// TI99 is the console and everything attached to it.
type TI99 struct {
	CPU         *cpu.CPU
	Mem         *paging.Manager
	GROM        *grom.GROM
	Peripherals *Peripherals

	opts Options

	rom     []byte
	low     []byte
	cart    []byte
	scratch []byte
	high    []byte
}

// NewTI99 creates a new TI99 with empty ROMs. The CPU is not reset.
func NewTI99(opts Options) (*TI99, error) {
	ti := &TI99{
		Mem:         paging.NewManager("cpu", 256),
		GROM:        grom.NewGROM(),
		Peripherals: NewPeripherals(),
		opts:        opts,
		rom:         make([]byte, ConsoleROMSize),
		low:         make([]byte, LowSize),
		cart:        make([]byte, CartridgeSize),
		scratch:     make([]byte, ScratchpadSize),
		high:        make([]byte, HighSize),
	}

	ti.Mem.MapRegion(ConsoleROM, ConsoleROMSize, ti.rom, true)
	ti.Mem.MapRegion(LowExpansion, LowSize, ti.low, false)
	ti.Mem.MapRegion(CartridgeROM, CartridgeSize, ti.cart, true)
	for a := 0; a < 0x400; a += ScratchpadSize {
		ti.Mem.MapRegion(uint16(Scratchpad+a), ScratchpadSize, ti.scratch, false)
	}
	ti.Mem.MapRegion(HighExpansion, HighSize, ti.high, false)

	ti.CPU = cpu.NewCPU(ti.Mem)
	ti.CPU.SetInterruptSource(ti.Peripherals)
	ti.CPU.SetCRU(ti.Peripherals)
	ti.CPU.SetExternal(ti.Peripherals.External)
	ti.CPU.SetTick(ti.tick)

	if !opts.DisableNarrow {
		ti.CPU.Traps().SetNarrow(ConsoleROMSize, Scratchpad-ConsoleROMSize, true)
		ti.CPU.Traps().SetNarrow(Scratchpad+0x400, paging.AddressSpace-(Scratchpad+0x400), true)
	}

	if err := ti.GROM.Attach(ti.CPU); err != nil {
		return nil, curated.Errorf("hardware: %v", err)
	}

	return ti, nil
}

// Reset the CPU through the reset vector in the console ROM.
func (ti *TI99) Reset() {
	ti.CPU.Reset()
}

func (ti *TI99) tick() {
	if ti.opts.MaxInstructions > 0 && ti.CPU.InstructionCount() >= ti.opts.MaxInstructions {
		ti.CPU.Stop()
	}
}
