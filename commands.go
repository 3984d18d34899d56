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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/term"

	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/debugger"
	"github.com/gopher99/gopher99/debugger/easyterm"
	"github.com/gopher99/gopher99/disassembly"
	"github.com/gopher99/gopher99/hardware"
	"github.com/gopher99/gopher99/hardware/cpu/decode"
	"github.com/gopher99/gopher99/statsview"
)

type runCmd struct {
	MachineFlags

	MaxInstructions uint32 `name:"max-instructions" help:"stop after at least this number of instructions"`
	Trace           bool   `help:"write every instruction executed to stdout"`
	Statsview       bool   `help:"launch the runtime statistics server"`
}

func (c *runCmd) Run(ctx *kong.Context) error {
	opts := hardware.Options{
		DisableNarrow:   c.NoNarrow,
		MaxInstructions: c.MaxInstructions,
	}
	if c.Trace {
		opts.Trace = ctx.Stdout
	}

	m, err := newMachine(c.MachineFlags, opts)
	if err != nil {
		return err
	}
	defer m.cleanUp()

	if c.Statsview {
		if err := statsview.Launch(ctx.Stdout); err != nil {
			return err
		}
	}

	sig, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	err = m.ti.Run(sig)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	report(ctx.Stdout, m, time.Since(start))

	return m.scriptErr()
}

func report(output io.Writer, m *machine, elapsed time.Duration) {
	for _, h := range m.bp.Hits() {
		io.WriteString(output, fmt.Sprintf("break: %s\n", h))
	}

	io.WriteString(output, m.ti.CPU.Registers().String())

	cycles := m.ti.CPU.ClockCycles()
	s := fmt.Sprintf("%d instructions, %d cycles in %s", m.ti.CPU.InstructionCount(), cycles, elapsed.Round(time.Millisecond))
	if elapsed > 0 {
		s = fmt.Sprintf("%s (%.2fMHz)", s, float64(cycles)/elapsed.Seconds()/1e6)
	}
	io.WriteString(output, s+"\n")
}

type disasmCmd struct {
	Image  string `arg type:"existingfile" help:"raw program image"`
	Origin string `default:">a000" help:"address the image is loaded at"`
	Count  int    `help:"number of instructions to disassemble. defaults to the whole image"`
}

func (c *disasmCmd) Run(ctx *kong.Context) error {
	image, err := readFile(c.Image)
	if err != nil {
		return err
	}
	origin, err := debugger.ParseAddress(c.Origin)
	if err != nil {
		return curated.Errorf("gopher99: origin: %v", err)
	}

	fetch := disassembly.FetchFromImage(origin, image)

	if c.Count > 0 {
		_, err = disassembly.Write(ctx.Stdout, origin, c.Count, fetch)
		return err
	}

	end := int(origin) + len(image)
	pc := origin
	for int(pc) < end {
		next, err := disassembly.Write(ctx.Stdout, pc, 1, fetch)
		if err != nil {
			return err
		}

		// wrapped around the top of the address space
		if next <= pc {
			break
		}
		pc = next
	}

	return nil
}

type trieCmd struct{}

func (c *trieCmd) Run(ctx *kong.Context) error {
	decode.Standard().Visualise(ctx.Stdout)
	return nil
}

type monitorCmd struct {
	MachineFlags
}

func (c *monitorCmd) Run(ctx *kong.Context) error {
	m, err := newMachine(c.MachineFlags, hardware.Options{DisableNarrow: c.NoNarrow})
	if err != nil {
		return err
	}
	defer m.cleanUp()

	sig, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var input io.Reader = os.Stdin
	var output io.Writer = ctx.Stdout

	// single key commands when stdin is a terminal. otherwise commands are
	// read from the line buffered stream
	if term.IsTerminal(int(os.Stdin.Fd())) {
		var pt easyterm.Terminal
		if err := pt.Initialise(os.Stdin, os.Stdout); err != nil {
			return err
		}
		defer pt.CleanUp()
		pt.CBreakMode()
		input = &pt
		output = &pt
	}

	err = debugger.NewMonitor(m.ti, m.bp, input, output).Loop(sig)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	return m.scriptErr()
}
