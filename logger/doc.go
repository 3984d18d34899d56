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

// Package logger is the central log for the emulator. Entries are made up of
// a tag (usually the name of the emulated component, for example "cpu" or
// "grom") and a detail string.
//
//	logger.Logf(logger.Allow, "cpu", "invalid opcode %04x at %04x", opcode, pc)
//
// Consecutive identical entries are collapsed into a single entry with a
// repeat count. The log is bounded and the oldest entries are discarded when
// the maximum number of entries is exceeded.
//
// The Permission argument decides whether a log entry should be made at all.
// logger.Allow is the common case. Emulation components that can be run in a
// "quiet" context (the disassembler for example, which executes instructions
// speculatively) supply their own Permission implementation.
//
// Instances of Logger can be created with NewLogger() but most code should
// use the package level functions, which write to the central log.
package logger
