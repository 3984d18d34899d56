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

package debugger_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gopher99/gopher99/debugger"
	"github.com/gopher99/gopher99/hardware/memory/traps"
	"github.com/gopher99/gopher99/test"
)

func TestMonitorStep(t *testing.T) {
	ti := newConsole(t)
	tw := &test.CompareWriter{}

	m := debugger.NewMonitor(ti, nil, strings.NewReader("s s\ng x q s"), tw)
	test.ExpectedSuccess(t, m.Loop(context.Background()))

	test.Equate(t, tw.Contains("LI   R1,>0000"), true)
	test.Equate(t, tw.Contains("MOV  R1,@>A100"), true)
	test.Equate(t, tw.Contains("R1 =0000"), true)
	test.Equate(t, tw.Contains("unknown command 'x'"), true)

	// the step after the quit command is never performed
	test.Equate(t, ti.CPU.PC(), 0xa008)
}

func TestMonitorRun(t *testing.T) {
	ti := newConsole(t)
	bp := debugger.NewBreakpoints(ti.CPU)
	test.ExpectedSuccess(t, bp.Add(debugger.Breakpoint{Address: 0xa100, Class: traps.DebugWrite}))
	tw := &test.CompareWriter{}

	// end of input is the same as quitting
	m := debugger.NewMonitor(ti, bp, strings.NewReader("rb"), tw)
	test.ExpectedSuccess(t, m.Loop(context.Background()))

	test.Equate(t, tw.Contains("break: write of >a100 at >a004 (value >0000)"), true)
	test.Equate(t, tw.Contains(" 0: >a100 write"), true)
	test.Equate(t, ti.CPU.PC(), 0xa008)
}

func TestMonitorCancel(t *testing.T) {
	ti := newConsole(t)
	tw := &test.CompareWriter{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := debugger.NewMonitor(ti, nil, strings.NewReader("s"), tw)
	test.ExpectedFailure(t, m.Loop(ctx))
	test.Equate(t, ti.CPU.PC(), 0xa000)
}
