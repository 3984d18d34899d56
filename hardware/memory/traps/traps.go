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

// Package traps implements the access-flag table and the trap registry. Every
// address in the CPU address space has a flag byte that records whether the
// address is on the narrow (8-bit) bus and whether fetch, read or write
// accesses to the address should be diverted.
//
// There are two independent diversion planes. The trap plane belongs to the
// emulated hardware: a device registers a Handler and then claims the
// addresses it responds to with SetTrap(). Only one trap can own an address.
// The debug plane belongs to the debugger: there is a single DebugHandler and
// breakpoints are set on addresses with SetBreakpoint().
//
// The CPU consults the table on every memory access. When a trap flag is set
// the owning Handler is called first and when a debug flag is set the
// DebugHandler is called afterwards. Both may replace the value being read or
// written.
package traps

import (
	"reflect"
)

// Flag records the diversions and bus width of a single address.
type Flag uint8

// List of valid Flag bits.
const (
	Narrow Flag = 1 << iota
	TrapFetch
	TrapRead
	TrapWrite
	DebugFetch
	DebugRead
	DebugWrite
)

// TrapMask and DebugMask are the bits of the two diversion planes.
const (
	TrapMask  = TrapFetch | TrapRead | TrapWrite
	DebugMask = DebugFetch | DebugRead | DebugWrite
)

func (f Flag) String() string {
	s := []byte("-------")
	if f&Narrow == Narrow {
		s[0] = 'n'
	}
	if f&TrapFetch == TrapFetch {
		s[1] = 'F'
	}
	if f&TrapRead == TrapRead {
		s[2] = 'R'
	}
	if f&TrapWrite == TrapWrite {
		s[3] = 'W'
	}
	if f&DebugFetch == DebugFetch {
		s[4] = 'f'
	}
	if f&DebugRead == DebugRead {
		s[5] = 'r'
	}
	if f&DebugWrite == DebugWrite {
		s[6] = 'w'
	}
	return string(s)
}

// MaxTraps is the capacity of the trap registry. Index zero is never
// allocated.
const MaxTraps = 16

// NoTrap is returned by RegisterTrap() when the registry is full and by
// TrapIndex() when no registration matches. It is also the owner of every
// address that has no trap.
const NoTrap = 0

// Handler is implemented by devices that divert memory accesses. Word
// accesses are delivered as two byte accesses, the high byte at address and
// the low byte at address+1. The returned value replaces the value read or
// written. Fetches are delivered as reads.
type Handler interface {
	Trap(ctx any, tag int, isRead bool, address uint16, value uint8) uint8
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx any, tag int, isRead bool, address uint16, value uint8) uint8

// Trap implements the Handler interface.
func (f HandlerFunc) Trap(ctx any, tag int, isRead bool, address uint16, value uint8) uint8 {
	return f(ctx, tag, isRead, address, value)
}

// DebugHandler is implemented by the debugger. It is called once per access
// regardless of the access width. For byte accesses only the low eight bits of
// value are meaningful.
type DebugHandler interface {
	Debug(ctx any, address uint16, isWord bool, value uint16, isRead bool, isFetch bool) uint16
}

// DebugHandlerFunc adapts an ordinary function to the DebugHandler interface.
type DebugHandlerFunc func(ctx any, address uint16, isWord bool, value uint16, isRead bool, isFetch bool) uint16

// Debug implements the DebugHandler interface.
func (f DebugHandlerFunc) Debug(ctx any, address uint16, isWord bool, value uint16, isRead bool, isFetch bool) uint16 {
	return f(ctx, address, isWord, value, isRead, isFetch)
}

type registration struct {
	handler Handler
	ctx     any
	tag     int
}

// Table is the access-flag table and the trap registry.
type Table struct {
	flags [0x10000]Flag
	owner [0x10000]uint8

	// slot zero is never used
	registry [MaxTraps]*registration

	debug    DebugHandler
	debugCtx any
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{}
}

// Flags returns the flag byte for address.
func (tab *Table) Flags(address uint16) Flag {
	return tab.flags[address]
}

// Owner returns the index of the trap that owns address. Returns NoTrap if
// there is no owner.
func (tab *Table) Owner(address uint16) int {
	return int(tab.owner[address])
}

// RegisterTrap adds a handler to the registry. The tag is passed back to the
// handler on every call and allows one handler to serve several devices.
// Returns NoTrap if the registry is full.
func (tab *Table) RegisterTrap(handler Handler, ctx any, tag int) int {
	for i := 1; i < MaxTraps; i++ {
		if tab.registry[i] == nil {
			tab.registry[i] = &registration{
				handler: handler,
				ctx:     ctx,
				tag:     tag,
			}
			return i
		}
	}
	return NoTrap
}

// DeregisterTrap releases every address owned by the trap and frees the slot.
func (tab *Table) DeregisterTrap(index int) {
	if !tab.isLive(index) {
		return
	}
	tab.ClearTrap(index, 0, 0x10000)
	tab.registry[index] = nil
}

// TrapIndex returns the index of an existing registration of the handler and
// tag pair. Returns NoTrap if no registration matches.
func (tab *Table) TrapIndex(handler Handler, tag int) int {
	for i := 1; i < MaxTraps; i++ {
		r := tab.registry[i]
		if r != nil && r.tag == tag && sameHandler(r.handler, handler) {
			return i
		}
	}
	return NoTrap
}

// sameHandler compares two handlers by identity. Function values are not
// comparable with the == operator so they are compared by code pointer.
func sameHandler(a, b Handler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) {
		return false
	}

	if ta.Kind() == reflect.Func {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}

	if !ta.Comparable() {
		return false
	}

	return a == b
}

func (tab *Table) isLive(index int) bool {
	return index > NoTrap && index < MaxTraps && tab.registry[index] != nil
}

// SetTrap gives ownership of the access classes in bits at address to the
// trap. It fails if any of the requested classes is already owned, if another
// trap owns a different class at the same address, if the index has not been
// registered or if bits contains anything other than trap plane flags.
func (tab *Table) SetTrap(address uint16, bits Flag, index int) bool {
	if bits == 0 || bits&^TrapMask != 0 || !tab.isLive(index) {
		return false
	}

	f := tab.flags[address]
	if f&bits != 0 {
		return false
	}
	if f&TrapMask != 0 && int(tab.owner[address]) != index {
		return false
	}

	tab.flags[address] = f | bits
	tab.owner[address] = uint8(index)

	return true
}

// ClearTrap releases ownership over a range of addresses. Addresses that are
// not owned by the trap are left alone. The range is clipped at the top of the
// address space.
func (tab *Table) ClearTrap(index int, address uint16, length int) {
	if index == NoTrap {
		return
	}

	end := int(address) + length
	if end > 0x10000 {
		end = 0x10000
	}

	for a := int(address); a < end; a++ {
		if int(tab.owner[a]) == index {
			tab.flags[a] &^= TrapMask
			tab.owner[a] = NoTrap
		}
	}
}

// SetBreakpoint sets the debug plane bits at address. Fails if any of the
// bits are already set or if bits contains anything other than debug plane
// flags.
func (tab *Table) SetBreakpoint(address uint16, bits Flag) bool {
	if bits == 0 || bits&^DebugMask != 0 {
		return false
	}
	if tab.flags[address]&bits != 0 {
		return false
	}
	tab.flags[address] |= bits
	return true
}

// ClearBreakpoint clears the debug plane bits at address. Fails if any of the
// bits are not set.
func (tab *Table) ClearBreakpoint(address uint16, bits Flag) bool {
	if bits == 0 || bits&^DebugMask != 0 {
		return false
	}
	if tab.flags[address]&bits != bits {
		return false
	}
	tab.flags[address] &^= bits
	return true
}

// RegisterDebugHandler installs the single debug handler. Any previous handler
// is replaced.
func (tab *Table) RegisterDebugHandler(handler DebugHandler, ctx any) {
	tab.debug = handler
	tab.debugCtx = ctx
}

// DeregisterDebugHandler removes the debug handler. Breakpoints remain set but
// accesses are no longer diverted.
func (tab *Table) DeregisterDebugHandler() {
	tab.debug = nil
	tab.debugCtx = nil
}

// SetNarrow marks a range of addresses as being on the narrow bus.
func (tab *Table) SetNarrow(address uint16, length int, narrow bool) {
	end := int(address) + length
	if end > 0x10000 {
		end = 0x10000
	}
	for a := int(address); a < end; a++ {
		if narrow {
			tab.flags[a] |= Narrow
		} else {
			tab.flags[a] &^= Narrow
		}
	}
}

// IsNarrow returns true if address is on the narrow bus.
func (tab *Table) IsNarrow(address uint16) bool {
	return tab.flags[address]&Narrow == Narrow
}

// TrapByte calls the handler that owns address. If there is no owner the value
// is returned unchanged.
func (tab *Table) TrapByte(address uint16, isRead bool, value uint8) uint8 {
	r := tab.registry[tab.owner[address]]
	if r == nil {
		return value
	}
	return r.handler.Trap(r.ctx, r.tag, isRead, address, value)
}

// DebugAccess calls the debug handler. If there is no debug handler the value
// is returned unchanged.
func (tab *Table) DebugAccess(address uint16, isWord bool, value uint16, isRead bool, isFetch bool) uint16 {
	if tab.debug == nil {
		return value
	}
	return tab.debug.Debug(tab.debugCtx, address, isWord, value, isRead, isFetch)
}

// State is a copy of the flag and ownership tables. The registry is not part of
// the state because handlers are live objects owned by the devices that
// registered them.
type State struct {
	flags [0x10000]Flag
	owner [0x10000]uint8
}

// Snapshot returns a copy of the flag and ownership tables.
func (tab *Table) Snapshot() *State {
	s := &State{}
	s.flags = tab.flags
	s.owner = tab.owner
	return s
}

// Restore the flag and ownership tables from a previous snapshot. Ownership by
// a trap index that is no longer registered is discarded.
func (tab *Table) Restore(s *State) {
	tab.flags = s.flags
	tab.owner = s.owner
	for a := range tab.owner {
		if tab.owner[a] != NoTrap && tab.registry[tab.owner[a]] == nil {
			tab.flags[a] &^= TrapMask
			tab.owner[a] = NoTrap
		}
	}
}
