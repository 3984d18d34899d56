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

// Package script runs Lua programs as debug handlers. The Lua program is run
// once when the Handler is created. It places watches on addresses with the
// watch() function and, if it defines a global function called access(), that
// function is called for every access to a watched address:
//
//	function access(address, isword, value, isread, isfetch)
//		if value == 0 then
//			stop()
//		end
//		return value
//	end
//
// A number returned by access() replaces the value being read or written.
// Returning nothing leaves the value unchanged.
//
// The following functions are available to the Lua program:
//
//	watch(address, classes)   classes is a combination of "f", "r" and "w"
//	unwatch(address, classes)
//	stop()                    stop the CPU at the end of the instruction
//	log(message)              add an entry to the central log
//	reg(n) setreg(n, value)   workspace registers
//	pc() wp() st()            CPU registers
//	peek(address) poke(address, value)
//
// peek() and poke() access memory directly. They are not seen by traps or by
// the debug handler.
package script
