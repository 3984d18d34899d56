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

// InvalidDefinition is the definition used for any instruction word that does not match
// one of the entries returned by Definitions(). The CPU logs the instruction
// word and continues with the next word.
var InvalidDefinition = &Definition{
	Mnemonic: "DATA",
	Operator: Invalid,
	Cycles:   6,
	Effect:   Control,
}

// the order of the table is significant. the decode trie is built in table
// order and a later entry will overwrite the leaves of an earlier entry if the
// two entries overlap. entries are grouped by format and the formats are in
// order of increasing mask specificity.
var definitions = []*Definition{
	// format 1
	{Mnemonic: "SZC", Match: 0x4000, Mask: 0xf000, Format: Format1, Operator: SZC, Cycles: 14, Effect: Modify},
	{Mnemonic: "SZCB", Match: 0x5000, Mask: 0xf000, Format: Format1, Operator: SZCB, Cycles: 14, Effect: Modify, ByteOperand: true},
	{Mnemonic: "S", Match: 0x6000, Mask: 0xf000, Format: Format1, Operator: S, Cycles: 14, Effect: Modify},
	{Mnemonic: "SB", Match: 0x7000, Mask: 0xf000, Format: Format1, Operator: SB, Cycles: 14, Effect: Modify, ByteOperand: true},
	{Mnemonic: "C", Match: 0x8000, Mask: 0xf000, Format: Format1, Operator: C, Cycles: 14, Effect: Read},
	{Mnemonic: "CB", Match: 0x9000, Mask: 0xf000, Format: Format1, Operator: CB, Cycles: 14, Effect: Read, ByteOperand: true},
	{Mnemonic: "A", Match: 0xa000, Mask: 0xf000, Format: Format1, Operator: A, Cycles: 14, Effect: Modify},
	{Mnemonic: "AB", Match: 0xb000, Mask: 0xf000, Format: Format1, Operator: AB, Cycles: 14, Effect: Modify, ByteOperand: true},
	{Mnemonic: "MOV", Match: 0xc000, Mask: 0xf000, Format: Format1, Operator: MOV, Cycles: 14, Effect: Write},
	{Mnemonic: "MOVB", Match: 0xd000, Mask: 0xf000, Format: Format1, Operator: MOVB, Cycles: 14, Effect: Write, ByteOperand: true},
	{Mnemonic: "SOC", Match: 0xe000, Mask: 0xf000, Format: Format1, Operator: SOC, Cycles: 14, Effect: Modify},
	{Mnemonic: "SOCB", Match: 0xf000, Mask: 0xf000, Format: Format1, Operator: SOCB, Cycles: 14, Effect: Modify, ByteOperand: true},

	// format 3
	{Mnemonic: "COC", Match: 0x2000, Mask: 0xfc00, Format: Format3, Operator: COC, Cycles: 14, Effect: Read},
	{Mnemonic: "CZC", Match: 0x2400, Mask: 0xfc00, Format: Format3, Operator: CZC, Cycles: 14, Effect: Read},
	{Mnemonic: "XOR", Match: 0x2800, Mask: 0xfc00, Format: Format3, Operator: XOR, Cycles: 14, Effect: Modify},

	// format 4
	{Mnemonic: "LDCR", Match: 0x3000, Mask: 0xfc00, Format: Format4, Operator: LDCR, Cycles: 20, Effect: CRU},
	{Mnemonic: "STCR", Match: 0x3400, Mask: 0xfc00, Format: Format4, Operator: STCR, Cycles: 42, Effect: CRU},

	// format 9
	{Mnemonic: "XOP", Match: 0x2c00, Mask: 0xfc00, Format: Format9, Operator: XOP, Cycles: 36, Effect: Subroutine},
	{Mnemonic: "MPY", Match: 0x3800, Mask: 0xfc00, Format: Format9, Operator: MPY, Cycles: 52, Effect: Modify},
	{Mnemonic: "DIV", Match: 0x3c00, Mask: 0xfc00, Format: Format9, Operator: DIV, Cycles: 16, Effect: Modify},

	// format 2
	{Mnemonic: "JMP", Match: 0x1000, Mask: 0xff00, Format: Format2, Operator: JMP, Cycles: 8, Effect: Flow},
	{Mnemonic: "JLT", Match: 0x1100, Mask: 0xff00, Format: Format2, Operator: JLT, Cycles: 8, Effect: Flow},
	{Mnemonic: "JLE", Match: 0x1200, Mask: 0xff00, Format: Format2, Operator: JLE, Cycles: 8, Effect: Flow},
	{Mnemonic: "JEQ", Match: 0x1300, Mask: 0xff00, Format: Format2, Operator: JEQ, Cycles: 8, Effect: Flow},
	{Mnemonic: "JHE", Match: 0x1400, Mask: 0xff00, Format: Format2, Operator: JHE, Cycles: 8, Effect: Flow},
	{Mnemonic: "JGT", Match: 0x1500, Mask: 0xff00, Format: Format2, Operator: JGT, Cycles: 8, Effect: Flow},
	{Mnemonic: "JNE", Match: 0x1600, Mask: 0xff00, Format: Format2, Operator: JNE, Cycles: 8, Effect: Flow},
	{Mnemonic: "JNC", Match: 0x1700, Mask: 0xff00, Format: Format2, Operator: JNC, Cycles: 8, Effect: Flow},
	{Mnemonic: "JOC", Match: 0x1800, Mask: 0xff00, Format: Format2, Operator: JOC, Cycles: 8, Effect: Flow},
	{Mnemonic: "JNO", Match: 0x1900, Mask: 0xff00, Format: Format2, Operator: JNO, Cycles: 8, Effect: Flow},
	{Mnemonic: "JL", Match: 0x1a00, Mask: 0xff00, Format: Format2, Operator: JL, Cycles: 8, Effect: Flow},
	{Mnemonic: "JH", Match: 0x1b00, Mask: 0xff00, Format: Format2, Operator: JH, Cycles: 8, Effect: Flow},
	{Mnemonic: "JOP", Match: 0x1c00, Mask: 0xff00, Format: Format2, Operator: JOP, Cycles: 8, Effect: Flow},
	{Mnemonic: "SBO", Match: 0x1d00, Mask: 0xff00, Format: Format2, Operator: SBO, Cycles: 12, Effect: CRU},
	{Mnemonic: "SBZ", Match: 0x1e00, Mask: 0xff00, Format: Format2, Operator: SBZ, Cycles: 12, Effect: CRU},
	{Mnemonic: "TB", Match: 0x1f00, Mask: 0xff00, Format: Format2, Operator: TB, Cycles: 12, Effect: CRU},

	// format 5
	{Mnemonic: "SRA", Match: 0x0800, Mask: 0xff00, Format: Format5, Operator: SRA, Cycles: 12, Effect: Modify},
	{Mnemonic: "SRL", Match: 0x0900, Mask: 0xff00, Format: Format5, Operator: SRL, Cycles: 12, Effect: Modify},
	{Mnemonic: "SLA", Match: 0x0a00, Mask: 0xff00, Format: Format5, Operator: SLA, Cycles: 12, Effect: Modify},
	{Mnemonic: "SRC", Match: 0x0b00, Mask: 0xff00, Format: Format5, Operator: SRC, Cycles: 12, Effect: Modify},

	// format 6
	{Mnemonic: "BLWP", Match: 0x0400, Mask: 0xffc0, Format: Format6, Operator: BLWP, Cycles: 26, Effect: Subroutine},
	{Mnemonic: "B", Match: 0x0440, Mask: 0xffc0, Format: Format6, Operator: B, Cycles: 8, Effect: Flow},
	{Mnemonic: "X", Match: 0x0480, Mask: 0xffc0, Format: Format6, Operator: X, Cycles: 8, Effect: Flow},
	{Mnemonic: "CLR", Match: 0x04c0, Mask: 0xffc0, Format: Format6, Operator: CLR, Cycles: 10, Effect: Write},
	{Mnemonic: "NEG", Match: 0x0500, Mask: 0xffc0, Format: Format6, Operator: NEG, Cycles: 12, Effect: Modify},
	{Mnemonic: "INV", Match: 0x0540, Mask: 0xffc0, Format: Format6, Operator: INV, Cycles: 10, Effect: Modify},
	{Mnemonic: "INC", Match: 0x0580, Mask: 0xffc0, Format: Format6, Operator: INC, Cycles: 10, Effect: Modify},
	{Mnemonic: "INCT", Match: 0x05c0, Mask: 0xffc0, Format: Format6, Operator: INCT, Cycles: 10, Effect: Modify},
	{Mnemonic: "DEC", Match: 0x0600, Mask: 0xffc0, Format: Format6, Operator: DEC, Cycles: 10, Effect: Modify},
	{Mnemonic: "DECT", Match: 0x0640, Mask: 0xffc0, Format: Format6, Operator: DECT, Cycles: 10, Effect: Modify},
	{Mnemonic: "BL", Match: 0x0680, Mask: 0xffc0, Format: Format6, Operator: BL, Cycles: 12, Effect: Subroutine},
	{Mnemonic: "SWPB", Match: 0x06c0, Mask: 0xffc0, Format: Format6, Operator: SWPB, Cycles: 10, Effect: Modify},
	{Mnemonic: "SETO", Match: 0x0700, Mask: 0xffc0, Format: Format6, Operator: SETO, Cycles: 10, Effect: Write},
	{Mnemonic: "ABS", Match: 0x0740, Mask: 0xffc0, Format: Format6, Operator: ABS, Cycles: 12, Effect: Modify},

	// format 7
	{Mnemonic: "IDLE", Match: 0x0340, Mask: 0xffe0, Format: Format7, Operator: IDLE, Cycles: 12, Effect: Control},
	{Mnemonic: "RSET", Match: 0x0360, Mask: 0xffe0, Format: Format7, Operator: RSET, Cycles: 12, Effect: Control},
	{Mnemonic: "RTWP", Match: 0x0380, Mask: 0xffe0, Format: Format7, Operator: RTWP, Cycles: 14, Effect: Subroutine},
	{Mnemonic: "CKON", Match: 0x03a0, Mask: 0xffe0, Format: Format7, Operator: CKON, Cycles: 12, Effect: Control},
	{Mnemonic: "CKOF", Match: 0x03c0, Mask: 0xffe0, Format: Format7, Operator: CKOF, Cycles: 12, Effect: Control},
	{Mnemonic: "LREX", Match: 0x03e0, Mask: 0xffe0, Format: Format7, Operator: LREX, Cycles: 12, Effect: Control},

	// format 8. LWPI and LIMI have no register field
	{Mnemonic: "LWPI", Match: 0x02e0, Mask: 0xffe0, Format: Format8, Operator: LWPI, Cycles: 10, Effect: Control},
	{Mnemonic: "LIMI", Match: 0x0300, Mask: 0xffe0, Format: Format8, Operator: LIMI, Cycles: 16, Effect: Control},
	{Mnemonic: "LI", Match: 0x0200, Mask: 0xfff0, Format: Format8, Operator: LI, Cycles: 12, Effect: Write},
	{Mnemonic: "AI", Match: 0x0220, Mask: 0xfff0, Format: Format8, Operator: AI, Cycles: 14, Effect: Modify},
	{Mnemonic: "ANDI", Match: 0x0240, Mask: 0xfff0, Format: Format8, Operator: ANDI, Cycles: 14, Effect: Modify},
	{Mnemonic: "ORI", Match: 0x0260, Mask: 0xfff0, Format: Format8, Operator: ORI, Cycles: 14, Effect: Modify},
	{Mnemonic: "CI", Match: 0x0280, Mask: 0xfff0, Format: Format8, Operator: CI, Cycles: 14, Effect: Read},
	{Mnemonic: "STWP", Match: 0x02a0, Mask: 0xfff0, Format: Format8, Operator: STWP, Cycles: 8, Effect: Write},
	{Mnemonic: "STST", Match: 0x02c0, Mask: 0xfff0, Format: Format8, Operator: STST, Cycles: 8, Effect: Write},
}

// indexed by Operator
var byOperator [NumOperators]*Definition

func init() {
	byOperator[Invalid] = InvalidDefinition
	for _, defn := range definitions {
		byOperator[defn.Operator] = defn
	}
}

// Definitions returns the table of instruction definitions in decode order.
// The returned slice should not be modified.
func Definitions() []*Definition {
	return definitions
}

// Lookup returns the definition for an operator.
func Lookup(op Operator) *Definition {
	if op < 0 || op >= NumOperators {
		return InvalidDefinition
	}
	return byOperator[op]
}
