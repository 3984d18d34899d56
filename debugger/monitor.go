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

package debugger

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/debugger/easyterm"
	"github.com/gopher99/gopher99/disassembly"
	"github.com/gopher99/gopher99/hardware"
	"github.com/gopher99/gopher99/logger"
)

// list of monitor commands
const (
	CmdStep      = 's'
	CmdRun       = 'r'
	CmdRegisters = 'g'
	CmdBreaks    = 'b'
	CmdLog       = 'l'
	CmdHelp      = 'h'
	CmdQuit      = 'q'
)

const help = `s  step one instruction
r  run until a breakpoint
g  show registers
b  list breakpoints
l  show recent log entries
h  this help
q  quit
`

// Monitor is a single key command loop for a TI99.
type Monitor struct {
	ti     *hardware.TI99
	bp     *Breakpoints
	input  *bufio.Reader
	output io.Writer
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The breakpoints argument can be nil.
func NewMonitor(ti *hardware.TI99, bp *Breakpoints, input io.Reader, output io.Writer) *Monitor {
	return &Monitor{
		ti:     ti,
		bp:     bp,
		input:  bufio.NewReader(input),
		output: output,
	}
}

func (m *Monitor) printf(format string, args ...any) {
	io.WriteString(m.output, fmt.Sprintf(format, args...))
}

// next instruction without disturbing the devices mapped into the address
// space
func (m *Monitor) prompt() {
	e, _ := disassembly.Disassemble(m.ti.CPU.PC(), m.ti.Mem.ReadWord)
	m.printf("%s\n> ", e)
}

func (m *Monitor) hits() {
	if m.bp == nil {
		return
	}
	for _, h := range m.bp.Hits() {
		m.printf("break: %s\n", h)
	}
}

// Loop reads and acts on commands until the quit command is read, the input
// is exhausted or the context is cancelled. Whitespace between commands is
// ignored. The interrupt and escape keys are the same as the quit command.
func (m *Monitor) Loop(ctx context.Context) error {
	m.prompt()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c, err := m.input.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("monitor: %v", err)
		}

		switch c {
		case ' ', easyterm.KeyTab, easyterm.KeyLineFeed, easyterm.KeyCarriageReturn:
			continue

		case CmdQuit, easyterm.KeyInterrupt, easyterm.KeyEsc:
			m.printf("\n")
			return nil

		case CmdStep:
			r, _ := m.ti.Step()
			e := disassembly.FromResult(r)
			m.printf("\n%s  [%s] %s\n", e, e.Cycles(), e.Notes())
			m.hits()

		case CmdRun:
			m.printf("\n")
			if err := m.ti.Run(ctx); err != nil {
				return err
			}
			m.hits()

		case CmdRegisters:
			m.printf("\n%s", m.ti.CPU.Registers())

		case CmdBreaks:
			m.printf("\n")
			if m.bp == nil {
				m.printf("no breakpoints\n")
			} else {
				m.bp.List(m.output)
			}

		case CmdLog:
			m.printf("\n")
			logger.Tail(m.output, 10)

		case CmdHelp:
			m.printf("\n%s", help)

		default:
			m.printf("\nunknown command '%c'\n", c)
		}

		m.prompt()
	}
}
