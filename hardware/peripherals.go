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
	"sync/atomic"

	"github.com/gopher99/gopher99/hardware/cpu"
	"github.com/gopher99/gopher99/logger"
)

// number of addressable CRU bits
const cruBits = 4096

// Peripherals is the interrupt and CRU side of the console. Interrupt lines
// are level triggered: a line stays asserted until it is released. Lines may
// be asserted and released from any goroutine.
//
// CRU bits without a device read back the last value written.
type Peripherals struct {
	lines atomic.Uint32
	cru   [cruBits]bool
}

// NewPeripherals is the preferred method of initialisation for the
// Peripherals type.
func NewPeripherals() *Peripherals {
	return &Peripherals{}
}

// Assert the interrupt line.
func (p *Peripherals) Assert(level int) {
	if level < 0 || level > 15 {
		return
	}
	for {
		o := p.lines.Load()
		if p.lines.CompareAndSwap(o, o|1<<level) {
			return
		}
	}
}

// Release the interrupt line.
func (p *Peripherals) Release(level int) {
	if level < 0 || level > 15 {
		return
	}
	for {
		o := p.lines.Load()
		if p.lines.CompareAndSwap(o, o&^(1<<level)) {
			return
		}
	}
}

// UpdateInterrupts implements the cpu.InterruptSource interface.
func (p *Peripherals) UpdateInterrupts(mc *cpu.CPU) {
	lines := uint16(p.lines.Load())
	flag := mc.InterruptFlag()
	if lines == flag {
		return
	}
	for level := 0; level < 16; level++ {
		bit := uint16(1) << level
		switch {
		case lines&bit != 0 && flag&bit == 0:
			mc.SignalInterrupt(level)
		case lines&bit == 0 && flag&bit != 0:
			mc.ClearInterrupt(level)
		}
	}
}

// ReadBit implements the cpu.CRU interface.
func (p *Peripherals) ReadBit(address uint16) bool {
	return p.cru[address%cruBits]
}

// WriteBit implements the cpu.CRU interface.
func (p *Peripherals) WriteBit(address uint16, v bool) {
	p.cru[address%cruBits] = v
}

// External is called by the CPU for the external instructions.
func (p *Peripherals) External(code cpu.ExternalCode) {
	if code == cpu.ExternalIDLE {
		return
	}
	logger.Logf(logger.Allow, "hardware", "external instruction %s", code)
}
