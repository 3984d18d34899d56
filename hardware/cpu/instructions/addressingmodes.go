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

package instructions

// AddressingMode describes how a general address operand (the T and S fields,
// or the T and D fields, of an instruction word) is resolved.
type AddressingMode int

func (m AddressingMode) String() string {
	switch m {
	case Register:
		return "Register"
	case Indirect:
		return "Indirect"
	case AutoIncrement:
		return "AutoIncrement"
	case Symbolic:
		return "Symbolic"
	case Indexed:
		return "Indexed"
	}
	return "unknown addressing mode"
}

// List of addressing modes. The first four values are the same as the two-bit
// T field of the instruction word. Indexed is T field value 2 with a non-zero
// register.
const (
	Register      AddressingMode = iota // Rn
	Indirect                            // *Rn
	Symbolic                            // @addr
	AutoIncrement                       // *Rn+
	Indexed                             // @addr(Rn)
)

// ModeFromField returns the addressing mode for a T field and register
// number.
func ModeFromField(t uint16, reg uint16) AddressingMode {
	switch t & 0x03 {
	case 0:
		return Register
	case 1:
		return Indirect
	case 3:
		return AutoIncrement
	}
	if reg == 0 {
		return Symbolic
	}
	return Indexed
}

// Cost returns the number of cycles used to resolve an operand with the
// addressing mode. Auto-increment costs less for byte operands.
func (m AddressingMode) Cost(byteOperand bool) int {
	switch m {
	case Indirect:
		return 4
	case AutoIncrement:
		if byteOperand {
			return 6
		}
		return 8
	case Symbolic, Indexed:
		return 8
	}
	return 0
}

// ExtraWords returns the number of words taken from the instruction stream
// when resolving an operand with the addressing mode.
func (m AddressingMode) ExtraWords() int {
	if m == Symbolic || m == Indexed {
		return 1
	}
	return 0
}
