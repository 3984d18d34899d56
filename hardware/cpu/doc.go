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

// Package cpu emulates the TMS9900 microprocessor found in the TI-99/4A home
// computer. The TMS9900 has no general purpose registers on the chip. Instead,
// the workspace pointer (WP) addresses sixteen words of memory which are used
// as registers R0 to R15. The only internal registers are the program counter
// (PC), the workspace pointer and the status register (ST).
//
// The CPU type requires an instance of paging.Manager as the sole argument to
// NewCPU(). Every memory access made by the CPU goes through the paging
// manager after first consulting the access-flag table. The flag table is
// owned by the CPU and is manipulated with the trap and breakpoint functions.
//
// Let's assume mem is a paging.Manager with a program mapped at address
// zero, preceded by a reset vector.
//
//	mc := cpu.NewCPU(mem)
//	mc.Reset()
//
//	for i := 0; i < 1000; i++ {
//		mc.Step()
//	}
//
// The Run() function is the same as calling Step() repeatedly until Stop() is
// called. Stop() is safe to call from any goroutine. Everything else must be
// called from the goroutine that runs the CPU or while the CPU is not running,
// with the exception of Snapshot(), Restore() and Registers(), which take the
// lock that Step() holds for the duration of an instruction.
//
// Trap handlers and debug handlers are called by the CPU while it is holding
// the lock. Handlers should only use the unlocked accessors, PC(), WP(), etc.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
package cpu
