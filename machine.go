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
	"os"

	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/debugger"
	"github.com/gopher99/gopher99/debugger/script"
	"github.com/gopher99/gopher99/hardware"
	"github.com/gopher99/gopher99/logger"
)

// MachineFlags are the flags that describe how to prepare a TI99 for running
// a program image. Used by the run and monitor commands.
type MachineFlags struct {
	Image string `arg type:"existingfile" help:"raw program image"`

	Origin   string   `default:">a000" help:"address the image is loaded at"`
	PC       string   `name:"pc" help:"initial program counter. defaults to the origin"`
	WP       string   `name:"wp" default:">8300" help:"initial workspace pointer"`
	ROM      string   `name:"rom" type:"existingfile" help:"console ROM image. the CPU is reset through the vector at >0000"`
	GROM     string   `name:"grom" type:"existingfile" help:"console GROM image, loaded at GROM address >0000"`
	Cart     string   `type:"existingfile" help:"cartridge ROM image"`
	NoNarrow bool     `help:"put all memory on the 16-bit bus"`
	Break    []string `help:"breakpoints. an address optionally preceded by access classes, eg. read|write:>8300"`
	Script   string   `type:"existingfile" help:"lua debugging script"`
}

// machine is a TI99 with the program image loaded and the debugging tools
// attached.
type machine struct {
	ti     *hardware.TI99
	bp     *debugger.Breakpoints
	script *script.Handler
}

func (m *machine) cleanUp() {
	if m.script != nil {
		m.bp.Chain(nil)
		m.script.Close()
	}
}

// scriptErr returns the error raised by the debugging script.
func (m *machine) scriptErr() error {
	if m.script == nil {
		return nil
	}
	return m.script.Err()
}

func readFile(path string) ([]byte, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf("gopher99: %v", err)
	}
	return d, nil
}

func newMachine(f MachineFlags, opts hardware.Options) (*machine, error) {
	ti, err := hardware.NewTI99(opts)
	if err != nil {
		return nil, err
	}

	origin, err := debugger.ParseAddress(f.Origin)
	if err != nil {
		return nil, curated.Errorf("gopher99: origin: %v", err)
	}

	image, err := readFile(f.Image)
	if err != nil {
		return nil, err
	}
	if err := ti.LoadRAM(origin, image); err != nil {
		return nil, err
	}

	if f.ROM != "" {
		d, err := readFile(f.ROM)
		if err != nil {
			return nil, err
		}
		if err := ti.LoadROM(d); err != nil {
			return nil, err
		}
	}

	if f.GROM != "" {
		d, err := readFile(f.GROM)
		if err != nil {
			return nil, err
		}
		if err := ti.LoadGROM(0x0000, d); err != nil {
			return nil, err
		}
	}

	if f.Cart != "" {
		d, err := readFile(f.Cart)
		if err != nil {
			return nil, err
		}
		if err := ti.LoadCartridge(d); err != nil {
			return nil, err
		}
	}

	if f.ROM != "" {
		ti.Reset()
	} else {
		wp, err := debugger.ParseAddress(f.WP)
		if err != nil {
			return nil, curated.Errorf("gopher99: wp: %v", err)
		}
		pc := origin
		if f.PC != "" {
			pc, err = debugger.ParseAddress(f.PC)
			if err != nil {
				return nil, curated.Errorf("gopher99: pc: %v", err)
			}
		}
		ti.CPU.SetWP(wp)
		ti.CPU.SetPC(pc)
	}

	m := &machine{
		ti: ti,
		bp: debugger.NewBreakpoints(ti.CPU),
	}

	for _, s := range f.Break {
		b, err := debugger.ParseBreakpoint(s)
		if err != nil {
			return nil, err
		}
		if err := m.bp.Add(b); err != nil {
			return nil, err
		}
	}

	if f.Script != "" {
		r, err := os.Open(f.Script)
		if err != nil {
			return nil, curated.Errorf("gopher99: %v", err)
		}
		defer r.Close()

		m.script, err = script.NewHandler(ti.CPU, f.Script, r)
		if err != nil {
			return nil, err
		}
		m.bp.Chain(m.script)
	}

	logger.Logf(logger.Allow, "gopher99", "PC=>%04x WP=>%04x", ti.CPU.PC(), ti.CPU.WP())

	return m, nil
}
