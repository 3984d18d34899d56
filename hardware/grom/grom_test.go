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

package grom_test

import (
	"testing"

	"github.com/matryer/is"

	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/hardware/cpu"
	"github.com/gopher99/gopher99/hardware/grom"
	"github.com/gopher99/gopher99/hardware/memory/paging"
	"github.com/gopher99/gopher99/hardware/memory/traps"
)

func TestPorts(t *testing.T) {
	is := is.New(t)

	g := grom.NewGROM()
	is.NoErr(g.Map(0x6000, []byte{0xaa, 0xbb, 0xcc}, true))
	is.Equal(g.Memory().PageSize(), grom.PageSize)

	// address is written high byte first
	g.Trap(nil, 0, false, grom.WriteAddress, 0x60)
	g.Trap(nil, 0, false, grom.WriteAddress, 0x01)
	is.Equal(g.Address(), uint16(0x6002))

	is.Equal(g.Trap(nil, 0, true, grom.ReadData, 0), uint8(0xbb))
	is.Equal(g.Trap(nil, 0, true, grom.ReadData, 0), uint8(0xcc))
	is.Equal(g.Trap(nil, 0, true, grom.ReadData, 0), uint8(0x00))

	// the address read back is one ahead of the last byte read
	is.Equal(g.Trap(nil, 0, true, grom.ReadAddress, 0), uint8(0x60))
	is.Equal(g.Trap(nil, 0, true, grom.ReadAddress, 0), uint8(0x05))
	is.Equal(g.Trap(nil, 0, true, grom.ReadAddress, 0), uint8(0x60))

	// a data access resets the address read sequence
	g.Trap(nil, 0, true, grom.ReadData, 0)
	is.Equal(g.Trap(nil, 0, true, grom.ReadAddress, 0), uint8(0x60))
}

func TestWrap(t *testing.T) {
	is := is.New(t)

	data := make([]byte, grom.PageSize)
	data[0] = 0x11
	data[grom.PageSize-1] = 0x22

	g := grom.NewGROM()
	is.NoErr(g.Map(0x2000, data, true))

	// the address counter wraps inside the chip
	g.SetAddress(0x3fff)
	is.Equal(g.Trap(nil, 0, true, grom.ReadData, 0), uint8(0x22))
	is.Equal(g.Trap(nil, 0, true, grom.ReadData, 0), uint8(0x11))
	is.Equal(g.Address(), uint16(0x2002))
}

func TestGRAM(t *testing.T) {
	is := is.New(t)

	g := grom.NewGROM()
	is.NoErr(g.Map(0xe000, make([]byte, 16), false))
	is.NoErr(g.Map(0x0000, []byte{0x01}, true))

	g.SetAddress(0xe000)
	g.Trap(nil, 0, false, grom.WriteData, 0x12)
	g.Trap(nil, 0, false, grom.WriteData, 0x34)
	is.Equal(g.Memory().ReadByte(0xe000), uint8(0x12))
	is.Equal(g.Memory().ReadByte(0xe001), uint8(0x34))

	// read-only GROM ignores writes
	g.SetAddress(0x0000)
	g.Trap(nil, 0, false, grom.WriteData, 0xff)
	is.Equal(g.Memory().ReadByte(0x0000), uint8(0x01))
}

func TestMapErrors(t *testing.T) {
	is := is.New(t)

	g := grom.NewGROM()
	err := g.Map(0x1000, []byte{0}, true)
	is.True(curated.Has(err, "grom: address %#04x is not on a chip boundary"))

	err = g.Map(0xe000, make([]byte, 0x4000), true)
	is.True(curated.Has(err, "grom: %d bytes at %#04x is beyond the end of GROM space"))
}

func TestAttach(t *testing.T) {
	is := is.New(t)

	mem := paging.NewManager("cpu", 256)
	ram := make([]byte, 0x2000)
	mem.MapRegion(0x0000, len(ram), ram, false)
	scratch := make([]byte, 256)
	mem.MapRegion(0x8300, 256, scratch, false)

	mc := cpu.NewCPU(mem)
	mc.SetWP(0x8300)

	g := grom.NewGROM()
	is.NoErr(g.Map(0x6000, []byte{0xaa, 0xbb}, true))
	is.NoErr(g.Attach(mc))
	is.True(g.Attach(mc) != nil)
	is.True(mc.Traps().Owner(grom.ReadData) != traps.NoTrap)

	// LI R0,>6000 ; MOVB R0,@>9C02 ; SWPB R0 ; MOVB R0,@>9C02
	// MOVB @>9800,R1 ; MOVB @>9800,R2 ; MOVB @>9802,R3 ; MOVB @>9802,R4
	program := []uint16{
		0x0200, 0x6000,
		0xd800, 0x9c02,
		0x06c0,
		0xd800, 0x9c02,
		0xd060, 0x9800,
		0xd0a0, 0x9800,
		0xd0e0, 0x9802,
		0xd120, 0x9802,
	}
	for i, w := range program {
		mem.WriteWord(uint16(i*2), w)
	}
	for i := 0; i < 8; i++ {
		mc.Step()
	}

	is.Equal(mc.Register(1)>>8, uint16(0xaa))
	is.Equal(mc.Register(2)>>8, uint16(0xbb))
	is.Equal(mc.Register(3)>>8, uint16(0x60))
	is.Equal(mc.Register(4)>>8, uint16(0x03))

	// another device can not take the ports
	other := grom.NewGROM()
	is.True(other.Attach(mc) != nil)

	g.Detach()
	is.Equal(mc.Traps().Owner(grom.ReadData), traps.NoTrap)
	is.NoErr(other.Attach(mc))
}
