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

// Package paging implements a fixed page-size view of a 64KB address space.
// The manager never owns the memory it maps. Devices and cartridges donate
// their storage with MapRegion() and the manager only keeps references to it,
// one per page.
//
// Two instances are used by the emulation: a 256 byte page manager for the
// CPU address space and an 8192 byte page manager for GROM space.
//
// Reading from a page with no backing store returns zero. Writing to a page
// flagged as read-only, or to an unmapped page, is silently discarded.
//
// Words are big-endian and word accesses ignore bit zero of the address. Pages
// are always an even number of bytes so a word never straddles two pages.
package paging

import (
	"sync/atomic"

	"github.com/gopher99/gopher99/curated"
)

// AddressSpace is the size of the address space managed by every Manager.
const AddressSpace = 0x10000

// page is never modified once it is stored in a Manager slot. remapping a
// page replaces the pointer in the slot.
type page struct {
	data     []byte
	readOnly bool
}

// Manager divides a 64KB address space into pages of equal size.
type Manager struct {
	label    string
	pageSize int
	shift    uint
	mask     uint16

	slots []atomic.Pointer[page]

	// used for unmapped pages. always read-only
	zero *page
}

// NewManager is the preferred method of initialisation for the Manager type.
// The pageSize must be a power of two between 2 and 65536.
func NewManager(label string, pageSize int) *Manager {
	if pageSize < 2 || pageSize > AddressSpace || pageSize&(pageSize-1) != 0 {
		panic(curated.Errorf("paging: %s: page size of %d is not a power of two", label, pageSize))
	}

	pm := &Manager{
		label:    label,
		pageSize: pageSize,
		mask:     uint16(pageSize - 1),
		slots:    make([]atomic.Pointer[page], AddressSpace/pageSize),
		zero: &page{
			data:     make([]byte, pageSize),
			readOnly: true,
		},
	}

	for s := pageSize; s > 1; s >>= 1 {
		pm.shift++
	}

	for i := range pm.slots {
		pm.slots[i].Store(pm.zero)
	}

	return pm
}

func (pm *Manager) String() string {
	return pm.label
}

// Label returns the name of the manager.
func (pm *Manager) Label() string {
	return pm.label
}

// PageSize returns the number of bytes in each page.
func (pm *Manager) PageSize() int {
	return pm.pageSize
}

// NumPages returns the number of page slots.
func (pm *Manager) NumPages() int {
	return len(pm.slots)
}

func (pm *Manager) resolve(address uint16) *page {
	return pm.slots[int(address)>>pm.shift].Load()
}

// MapRegion assigns backing storage to every page in the range. A nil backing
// slice unmaps the region. The address and length must be page aligned and
// the backing slice must be at least length bytes long; violating this is a
// programming error and causes a panic.
//
// Each page is replaced with a single atomic store so an access running
// concurrently sees either the old page or the new page.
func (pm *Manager) MapRegion(address uint16, length int, backing []byte, readOnly bool) {
	if int(address)&int(pm.mask) != 0 || length%pm.pageSize != 0 {
		panic(curated.Errorf("paging: %s: region %#04x (length %#x) is not page aligned", pm.label, address, length))
	}
	if int(address)+length > AddressSpace {
		panic(curated.Errorf("paging: %s: region %#04x (length %#x) is beyond the address space", pm.label, address, length))
	}
	if backing != nil && len(backing) < length {
		panic(curated.Errorf("paging: %s: backing for region %#04x is too small (%d < %d)", pm.label, address, len(backing), length))
	}

	first := int(address) >> pm.shift
	count := length >> pm.shift

	for i := 0; i < count; i++ {
		if backing == nil {
			pm.slots[first+i].Store(pm.zero)
			continue
		}
		o := i * pm.pageSize
		pm.slots[first+i].Store(&page{
			data:     backing[o : o+pm.pageSize : o+pm.pageSize],
			readOnly: readOnly,
		})
	}
}

// IsMapped returns true if the address is backed by donated storage.
func (pm *Manager) IsMapped(address uint16) bool {
	return pm.resolve(address) != pm.zero
}

// IsReadOnly returns true if writes to address will be discarded.
func (pm *Manager) IsReadOnly(address uint16) bool {
	return pm.resolve(address).readOnly
}

// ReadByte returns the byte at address.
func (pm *Manager) ReadByte(address uint16) uint8 {
	return pm.resolve(address).data[address&pm.mask]
}

// WriteByte writes data to address.
func (pm *Manager) WriteByte(address uint16, data uint8) {
	p := pm.resolve(address)
	if p.readOnly {
		return
	}
	p.data[address&pm.mask] = data
}

// ReadWord returns the big-endian word at address. Bit zero of the address is
// ignored.
func (pm *Manager) ReadWord(address uint16) uint16 {
	address &= 0xfffe
	p := pm.resolve(address)
	o := address & pm.mask
	return uint16(p.data[o])<<8 | uint16(p.data[o+1])
}

// WriteWord writes a big-endian word to address. Bit zero of the address is
// ignored.
func (pm *Manager) WriteWord(address uint16, data uint16) {
	address &= 0xfffe
	p := pm.resolve(address)
	if p.readOnly {
		return
	}
	o := address & pm.mask
	p.data[o] = uint8(data >> 8)
	p.data[o+1] = uint8(data)
}

// Read returns a copy of length bytes starting at address. The range may cross
// page boundaries and wraps at the top of the address space.
func (pm *Manager) Read(address uint16, length int) []byte {
	b := make([]byte, length)
	for i := range b {
		b[i] = pm.ReadByte(address + uint16(i))
	}
	return b
}

// Write copies data into memory starting at address. Bytes that fall in
// read-only pages are discarded.
func (pm *Manager) Write(address uint16, data []byte) {
	for i, d := range data {
		pm.WriteByte(address+uint16(i), d)
	}
}
