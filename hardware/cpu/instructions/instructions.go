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

import "fmt"

// Format is the layout of the fields in the instruction word. The TMS9900 has
// nine formats.
type Format int

// List of instruction formats. FormatNone is only used by the Invalid
// definition.
const (
	FormatNone Format = iota
	Format1           // two general addresses
	Format2           // jump or CRU bit, 8 bit signed displacement
	Format3           // general source, workspace register destination
	Format4           // CRU multi-bit, general source and bit count
	Format5           // shift, workspace register and count
	Format6           // single general address
	Format7           // no operands
	Format8           // immediate and/or workspace register
	Format9           // general source, workspace register destination
)

func (f Format) String() string {
	if f == FormatNone {
		return "no format"
	}
	return fmt.Sprintf("format %d", int(f))
}

// Definition defines each instruction in the instruction set; one per
// instruction. An instruction word matches the definition when
// (word & Mask) == Match.
type Definition struct {
	Mnemonic string
	Match    uint16
	Mask     uint16
	Format   Format
	Operator Operator
	Cycles   int
	Effect   Category

	// byte variants of format 1 instructions operate on the high byte of a
	// register or on a single byte of memory
	ByteOperand bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Operator == Invalid {
		return "invalid instruction"
	}
	return fmt.Sprintf("%04x/%04x %s (%d cycles) [%s effect=%s]", defn.Match, defn.Mask, defn.Mnemonic, defn.Cycles, defn.Format, defn.Effect)
}

// Matches returns true if the instruction word is an instance of the
// definition.
func (defn Definition) Matches(word uint16) bool {
	return word&defn.Mask == defn.Match
}

// IsJump returns true if the instruction is one of the format 2 jump
// instructions.
func (defn Definition) IsJump() bool {
	return defn.Format == Format2 && defn.Effect == Flow
}
