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

// Package disassembly formats TMS9900 instructions in the syntax of the TI
// assembler. Instructions are decoded with the same trie used by the CPU so
// the disassembly of an instruction word always agrees with the instruction
// the CPU would execute.
//
// Disassemble() decodes an instruction from memory, reading operand words with
// the supplied fetch function. FromResult() formats an instruction that has
// already been executed, using the operand words recorded in the
// execution.Result.
package disassembly
