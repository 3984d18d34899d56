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

// Package grom implements the GROM ports of the TI-99/4A. GROMs are byte wide
// serial memories with an internal auto-incrementing address counter. The CPU
// reaches them through four memory mapped ports which are serviced by a trap
// handler.
//
// GROM space is a separate 64KB address space with its own paging manager and
// 8KB pages, one page per GROM chip.
package grom

import (
	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/hardware/memory/paging"
	"github.com/gopher99/gopher99/hardware/memory/traps"
	"github.com/gopher99/gopher99/logger"
)

// List of GROM port addresses in CPU address space.
const (
	ReadData     = 0x9800
	ReadAddress  = 0x9802
	WriteData    = 0x9c00
	WriteAddress = 0x9c02
)

// PageSize is the size of a single GROM chip.
const PageSize = 8192

// Bus is the part of the CPU used to attach the GROM ports.
type Bus interface {
	RegisterTrapHandler(h traps.Handler, ctx any, tag int) int
	DeRegisterTrapHandler(index int)
	SetTrap(address uint16, bits traps.Flag, index int) bool
}

// GROM is the GROM address counter and the memory behind it.
type GROM struct {
	mem *paging.Manager

	// the address of the next byte to be read into the buffer. the address
	// seen by the CPU is always one ahead of the byte in the buffer
	address uint16
	buffer  uint8

	// address writes and address reads are two bytes, high byte first.
	// any data access resets the sequence
	writeLow bool
	readLow  bool

	bus   Bus
	index int
}

// NewGROM is the preferred method of initialisation for the GROM type.
func NewGROM() *GROM {
	return &GROM{
		mem:   paging.NewManager("grom", PageSize),
		index: traps.NoTrap,
	}
}

// Memory returns the paging manager for GROM space.
func (g *GROM) Memory() *paging.Manager {
	return g.mem
}

// Map copies data into GROM space starting at address, which must be on a
// GROM chip boundary. The data is padded to a whole number of chips.
func (g *GROM) Map(address uint16, data []byte, readOnly bool) error {
	if address%PageSize != 0 {
		return curated.Errorf("grom: address %#04x is not on a chip boundary", address)
	}
	if int(address)+len(data) > paging.AddressSpace {
		return curated.Errorf("grom: %d bytes at %#04x is beyond the end of GROM space", len(data), address)
	}

	n := (len(data) + PageSize - 1) / PageSize * PageSize
	backing := make([]byte, n)
	copy(backing, data)
	g.mem.MapRegion(address, n, backing, readOnly)

	logger.Logf(logger.Allow, "grom", "mapped %d bytes at >%04x", len(data), address)

	return nil
}

// Attach registers the trap handler and claims the four ports.
func (g *GROM) Attach(bus Bus) error {
	if g.bus != nil {
		return curated.Errorf("grom: already attached")
	}

	idx := bus.RegisterTrapHandler(g, nil, 0)
	if idx == traps.NoTrap {
		return curated.Errorf("grom: trap table is full")
	}

	ports := []struct {
		address uint16
		bits    traps.Flag
	}{
		{ReadData, traps.TrapRead},
		{ReadAddress, traps.TrapRead},
		{WriteData, traps.TrapWrite},
		{WriteAddress, traps.TrapWrite},
	}
	for _, p := range ports {
		if !bus.SetTrap(p.address, p.bits, idx) {
			bus.DeRegisterTrapHandler(idx)
			return curated.Errorf("grom: port >%04x is owned by another device", p.address)
		}
	}

	g.bus = bus
	g.index = idx

	return nil
}

// Detach releases the ports.
func (g *GROM) Detach() {
	if g.bus == nil {
		return
	}
	g.bus.DeRegisterTrapHandler(g.index)
	g.bus = nil
	g.index = traps.NoTrap
}

// Address returns the address counter as seen by the CPU.
func (g *GROM) Address() uint16 {
	return g.address
}

// SetAddress sets the address counter and fills the buffer, in the same way
// as two writes to the address port.
func (g *GROM) SetAddress(address uint16) {
	g.address = address
	g.writeLow = false
	g.readLow = false
	g.prefetch()
}

// addresses wrap inside a GROM chip
func next(address uint16) uint16 {
	return address&^(PageSize-1) | (address+1)&(PageSize-1)
}

func previous(address uint16) uint16 {
	return address&^(PageSize-1) | (address-1)&(PageSize-1)
}

func (g *GROM) prefetch() {
	g.buffer = g.mem.ReadByte(g.address)
	g.address = next(g.address)
}

// Trap implements the traps.Handler interface.
func (g *GROM) Trap(_ any, _ int, isRead bool, address uint16, value uint8) uint8 {
	switch address {
	case ReadData:
		if !isRead {
			break
		}
		v := g.buffer
		g.writeLow = false
		g.readLow = false
		g.prefetch()
		return v

	case ReadAddress:
		if !isRead {
			break
		}
		g.writeLow = false
		if g.readLow {
			g.readLow = false
			return uint8(g.address)
		}
		g.readLow = true
		return uint8(g.address >> 8)

	case WriteData:
		if isRead {
			break
		}
		g.writeLow = false
		g.readLow = false
		g.mem.WriteByte(previous(g.address), value)
		g.prefetch()

	case WriteAddress:
		if isRead {
			break
		}
		g.readLow = false
		g.address = g.address<<8 | uint16(value)
		if g.writeLow {
			g.writeLow = false
			g.prefetch()
		} else {
			g.writeLow = true
		}
	}

	return value
}

// State is the state of the address counter.
type State struct {
	address  uint16
	buffer   uint8
	writeLow bool
	readLow  bool
}

// Snapshot returns the state of the address counter. The contents of GROM
// space are not part of the state.
func (g *GROM) Snapshot() State {
	return State{
		address:  g.address,
		buffer:   g.buffer,
		writeLow: g.writeLow,
		readLow:  g.readLow,
	}
}

// Restore the address counter from a previous snapshot.
func (g *GROM) Restore(s State) {
	g.address = s.address
	g.buffer = s.buffer
	g.writeLow = s.writeLow
	g.readLow = s.readLow
}
