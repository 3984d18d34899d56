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

package govern

// State indicates the execution state of the CPU.
type State int

// List of possible states.
//
// Stepping is the state while a single instruction is being executed by a
// call to Step() outside of the Run() loop.
const (
	Stopped State = iota
	Stepping
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Stepping:
		return "Stepping"
	case Running:
		return "Running"
	}

	return ""
}
