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
	"github.com/gopher99/gopher99/hardware/cpu/execution"
)

// Step the emulation one instruction. Returns the result of the instruction
// and whether a stop was requested.
func (ti *TI99) Step() (execution.Result, bool) {
	stop := ti.CPU.Step()
	return ti.CPU.LastResult, stop
}
