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

// Package debugger provides the tools for inspecting a running TI99.
//
// Breakpoints are placed on the debug plane of the CPU's access table. When an
// access to a breakpoint address matches the access class of the breakpoint the
// CPU is stopped at the end of the current instruction and the hit is recorded.
// A second debug handler, such as a Lua script from the script package, can be
// chained behind the breakpoints so that both are served by the single debug
// handler slot of the CPU.
//
// The Monitor type is a single key command loop. It reads from any io.Reader,
// which is usually the terminal in cbreak mode (see the easyterm package) but
// can be a plain line buffered stream.
package debugger
