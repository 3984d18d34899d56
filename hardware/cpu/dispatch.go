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

package cpu

import (
	"github.com/gopher99/gopher99/hardware/cpu/instructions"
	"github.com/gopher99/gopher99/logger"
)

type handler func(mc *CPU, opcode uint16)

// indexed by instructions.Operator. filled in init() because the X
// instruction handler refers back to the table
var handlers [instructions.NumOperators]handler

func init() {
	handlers = [instructions.NumOperators]handler{
		instructions.Invalid: (*CPU).invalid,

		instructions.SZC:  (*CPU).szc,
		instructions.SZCB: (*CPU).szcb,
		instructions.S:    (*CPU).s,
		instructions.SB:   (*CPU).sb,
		instructions.C:    (*CPU).c,
		instructions.CB:   (*CPU).cb,
		instructions.A:    (*CPU).a,
		instructions.AB:   (*CPU).ab,
		instructions.MOV:  (*CPU).mov,
		instructions.MOVB: (*CPU).movb,
		instructions.SOC:  (*CPU).soc,
		instructions.SOCB: (*CPU).socb,

		instructions.JMP: (*CPU).jump,
		instructions.JLT: (*CPU).jump,
		instructions.JLE: (*CPU).jump,
		instructions.JEQ: (*CPU).jump,
		instructions.JHE: (*CPU).jump,
		instructions.JGT: (*CPU).jump,
		instructions.JNE: (*CPU).jump,
		instructions.JNC: (*CPU).jump,
		instructions.JOC: (*CPU).jump,
		instructions.JNO: (*CPU).jump,
		instructions.JL:  (*CPU).jump,
		instructions.JH:  (*CPU).jump,
		instructions.JOP: (*CPU).jump,
		instructions.SBO: (*CPU).sbo,
		instructions.SBZ: (*CPU).sbz,
		instructions.TB:  (*CPU).tb,

		instructions.COC: (*CPU).coc,
		instructions.CZC: (*CPU).czc,
		instructions.XOR: (*CPU).xor,

		instructions.LDCR: (*CPU).ldcr,
		instructions.STCR: (*CPU).stcr,

		instructions.SRA: (*CPU).shift,
		instructions.SRL: (*CPU).shift,
		instructions.SLA: (*CPU).shift,
		instructions.SRC: (*CPU).shift,

		instructions.BLWP: (*CPU).blwp,
		instructions.B:    (*CPU).b,
		instructions.X:    (*CPU).x,
		instructions.CLR:  (*CPU).clr,
		instructions.NEG:  (*CPU).neg,
		instructions.INV:  (*CPU).inv,
		instructions.INC:  (*CPU).inc,
		instructions.INCT: (*CPU).inct,
		instructions.DEC:  (*CPU).dec,
		instructions.DECT: (*CPU).dect,
		instructions.BL:   (*CPU).bl,
		instructions.SWPB: (*CPU).swpb,
		instructions.SETO: (*CPU).seto,
		instructions.ABS:  (*CPU).abs,

		instructions.IDLE: (*CPU).idleInstruction,
		instructions.RSET: (*CPU).rset,
		instructions.RTWP: (*CPU).rtwp,
		instructions.CKON: (*CPU).ckon,
		instructions.CKOF: (*CPU).ckof,
		instructions.LREX: (*CPU).lrex,

		instructions.LI:   (*CPU).li,
		instructions.AI:   (*CPU).ai,
		instructions.ANDI: (*CPU).andi,
		instructions.ORI:  (*CPU).ori,
		instructions.CI:   (*CPU).ci,
		instructions.STWP: (*CPU).stwp,
		instructions.STST: (*CPU).stst,
		instructions.LWPI: (*CPU).lwpi,
		instructions.LIMI: (*CPU).limi,

		instructions.XOP: (*CPU).xop,
		instructions.MPY: (*CPU).mpy,
		instructions.DIV: (*CPU).div,
	}
}

// execute decodes and executes the opcode. The result of the execution is
// recorded in the current result.
func (mc *CPU) execute(opcode uint16) {
	defn := mc.trie.Lookup(opcode)
	mc.result.Opcode = opcode
	mc.result.Defn = defn
	mc.result.Cycles += defn.Cycles
	handlers[defn.Operator](mc, opcode)
	mc.result.Final = true
}

func (mc *CPU) invalid(opcode uint16) {
	logger.Logf(logger.Allow, "cpu", "invalid opcode %04x at >%04x", opcode, mc.result.Address)
}
