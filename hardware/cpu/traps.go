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

// the trap and breakpoint functions do not take the CPU lock. they should be
// called from the goroutine running the CPU (including from inside a handler)
// or while the CPU is not running.

// RegisterTrapHandler adds the handler to the trap registry and returns the
// trap index. Returns traps.NoTrap if the registry is full.
func (mc *CPU) RegisterTrapHandler(h traps.Handler, ctx any, tag int) int {
	return mc.traps.RegisterTrap(h, ctx, tag)
}

// DeRegisterTrapHandler removes the trap and releases every address it owns.
func (mc *CPU) DeRegisterTrapHandler(index int) {
	mc.traps.DeregisterTrap(index)
}

// GetTrapIndex returns the index of an existing registration of the handler
// and tag. Returns traps.NoTrap if there is no such registration.
func (mc *CPU) GetTrapIndex(h traps.Handler, tag int) int {
	return mc.traps.TrapIndex(h, tag)
}

// SetTrap diverts the access classes at address to the trap. Returns false if
// any of the classes are already owned.
func (mc *CPU) SetTrap(address uint16, bits traps.Flag, index int) bool {
	return mc.traps.SetTrap(address, bits, index)
}

// ClearTrap releases the addresses in the range that are owned by the trap.
func (mc *CPU) ClearTrap(index int, address uint16, length int) {
	mc.traps.ClearTrap(index, address, length)
}

// RegisterDebugHandler installs the debug handler.
func (mc *CPU) RegisterDebugHandler(h traps.DebugHandler, ctx any) {
	mc.traps.RegisterDebugHandler(h, ctx)
}

// DeRegisterDebugHandler removes the debug handler.
func (mc *CPU) DeRegisterDebugHandler() {
	mc.traps.DeregisterDebugHandler()
}

// SetBreakpoint diverts the access classes at address to the debug handler.
// Returns false if any of the classes are already set.
func (mc *CPU) SetBreakpoint(address uint16, bits traps.Flag) bool {
	return mc.traps.SetBreakpoint(address, bits)
}

// ClearBreakpoint removes the access classes at address from the debug plane.
// Returns false if any of the classes are not set.
func (mc *CPU) ClearBreakpoint(address uint16, bits traps.Flag) bool {
	return mc.traps.ClearBreakpoint(address, bits)
}
