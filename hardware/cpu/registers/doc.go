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

// Package registers implements the status register of the TMS9900 and the
// arithmetic helpers used to derive status bits from instruction results.
//
// Unlike many CPUs of the era the TMS9900 has no general purpose registers
// inside the chip. The sixteen workspace registers live in memory at the
// address given by the workspace pointer. Only the PC, WP and ST registers are
// internal and only ST needs a dedicated type.
//
// The arithmetic functions in this package do not touch a Status value. The
// CPU decides which of the returned carry and overflow conditions are
// recorded, for example:
//
//	r, carry, overflow := registers.AddWord(dst, src)
//	st.Set(registers.Carry, carry)
//	st.Set(registers.Overflow, overflow)
//	st.CompareZero(r)
package registers
