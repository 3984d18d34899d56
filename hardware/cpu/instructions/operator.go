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

// Operator identifies the operation performed by an instruction. The CPU uses
// the operator to select the instruction handler.
type Operator int

// List of operators. Invalid is the zero value and is the operator of any
// instruction word that does not match a definition.
const (
	Invalid Operator = iota

	// format 1
	SZC
	SZCB
	S
	SB
	C
	CB
	A
	AB
	MOV
	MOVB
	SOC
	SOCB

	// format 2
	JMP
	JLT
	JLE
	JEQ
	JHE
	JGT
	JNE
	JNC
	JOC
	JNO
	JL
	JH
	JOP
	SBO
	SBZ
	TB

	// format 3
	COC
	CZC
	XOR

	// format 4
	LDCR
	STCR

	// format 5
	SRA
	SRL
	SLA
	SRC

	// format 6
	BLWP
	B
	X
	CLR
	NEG
	INV
	INC
	INCT
	DEC
	DECT
	BL
	SWPB
	SETO
	ABS

	// format 7
	IDLE
	RSET
	RTWP
	CKON
	CKOF
	LREX

	// format 8
	LI
	AI
	ANDI
	ORI
	CI
	STWP
	STST
	LWPI
	LIMI

	// format 9
	XOP
	MPY
	DIV

	// NumOperators is the number of operators, including Invalid
	NumOperators
)

func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "unknown operator"
	}
	if op == Invalid {
		return "Invalid"
	}
	return byOperator[op].Mnemonic
}
