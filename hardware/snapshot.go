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
	"github.com/gopher99/gopher99/hardware/cpu"
	"github.com/gopher99/gopher99/hardware/grom"
)

// State stores the console sub-systems. It is produced by the Snapshot()
// function and can be restored with the Plumb() function.
//
// The contents of GROM space and the CRU bits are not part of the state.
type State struct {
	CPU  *cpu.Snapshot
	GROM grom.State
}

// Snapshot the state of the console sub-systems. Should not be called while
// Run() is executing.
func (ti *TI99) Snapshot() *State {
	return &State{
		CPU:  ti.CPU.Snapshot(),
		GROM: ti.GROM.Snapshot(),
	}
}

// Plumb a previously snapshotted state. Must not be called while the CPU is
// running.
func (ti *TI99) Plumb(state *State) {
	if state == nil {
		panic("hardware: cannot plumb in a nil state")
	}
	ti.CPU.Restore(state.CPU)
	ti.GROM.Restore(state.GROM)
}
