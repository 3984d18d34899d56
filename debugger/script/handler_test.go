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

package script_test

import (
	"context"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/gopher99/gopher99/debugger/script"
	"github.com/gopher99/gopher99/hardware"
	"github.com/gopher99/gopher99/hardware/memory/traps"
	"github.com/gopher99/gopher99/logger"
	"github.com/gopher99/gopher99/test"
)

// a loop that stores an incrementing counter at >a100
//
//	a000  LI   R1,>0000
//	a004  MOV  R1,@>A100
//	a008  INC  R1
//	a00a  JMP  >A004
var program = []byte{
	0x02, 0x01, 0x00, 0x00,
	0xc8, 0x01, 0xa1, 0x00,
	0x05, 0x81,
	0x10, 0xfc,
}

func newConsole(t *testing.T) *hardware.TI99 {
	t.Helper()
	ti, err := hardware.NewTI99(hardware.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := ti.LoadRAM(0xa000, program); err != nil {
		t.Fatal(err)
	}
	ti.CPU.SetWP(0x8300)
	ti.CPU.SetPC(0xa000)
	return ti
}

func TestAccess(t *testing.T) {
	is := is.New(t)
	ti := newConsole(t)

	h, err := script.NewHandler(ti.CPU, "access.lua", strings.NewReader(`
count = 0
watch(0xa100, "w")
function access(address, isword, value, isread, isfetch)
	count = count + 1
	if count == 3 then
		stop()
	end
	return value + 0x10
end
`))
	is.NoErr(err)
	defer h.Close()
	ti.CPU.RegisterDebugHandler(h, nil)

	is.NoErr(ti.Run(context.Background()))
	is.NoErr(h.Err())
	is.Equal(ti.CPU.PC(), uint16(0xa008))
	is.Equal(ti.CPU.Register(1), uint16(2))
	is.Equal(ti.Mem.ReadWord(0xa100), uint16(0x0012))
}

func TestNoAccessFunction(t *testing.T) {
	is := is.New(t)
	ti := newConsole(t)

	h, err := script.NewHandler(ti.CPU, "watch.lua", strings.NewReader(`watch(0xa100, "rw")`))
	is.NoErr(err)
	defer h.Close()
	ti.CPU.RegisterDebugHandler(h, nil)

	is.Equal(ti.CPU.Traps().Flags(0xa100)&traps.DebugMask, traps.DebugRead|traps.DebugWrite)

	ti.Step()
	ti.Step()
	is.Equal(ti.Mem.ReadWord(0xa100), uint16(0x0000))
}

func TestRegisters(t *testing.T) {
	is := is.New(t)
	ti := newConsole(t)
	ti.CPU.SetRegister(3, 0x1234)

	h, err := script.NewHandler(ti.CPU, "registers.lua", strings.NewReader(`
setreg(4, reg(3) + 1)
poke(0xa200, peek(0xa000))
if pc() ~= 0xa000 or wp() ~= 0x8300 then
	error("bad registers")
end
watched = watch(0xa000)
again = watch(0xa000, "f")
unwatch(0xa000, "f")
`))
	is.NoErr(err)
	defer h.Close()

	is.Equal(ti.CPU.Register(4), uint16(0x1235))
	is.Equal(ti.Mem.ReadWord(0xa200), uint16(0x0201))
	is.Equal(ti.CPU.Traps().Flags(0xa000)&traps.DebugMask, traps.Flag(0))
}

func TestLog(t *testing.T) {
	is := is.New(t)
	ti := newConsole(t)
	logger.Clear()

	h, err := script.NewHandler(ti.CPU, "log.lua", strings.NewReader(`log("hello from lua")`))
	is.NoErr(err)
	defer h.Close()

	tw := &test.CompareWriter{}
	logger.Write(tw)
	is.True(tw.Contains("script: hello from lua"))
	is.True(tw.Contains("script: loaded log.lua"))
}

func TestErrors(t *testing.T) {
	is := is.New(t)
	ti := newConsole(t)

	_, err := script.NewHandler(ti.CPU, "syntax.lua", strings.NewReader(`function (`))
	is.True(err != nil)

	_, err = script.NewHandler(ti.CPU, "runtime.lua", strings.NewReader(`error("at load")`))
	is.True(err != nil)

	_, err = script.NewHandler(ti.CPU, "classes.lua", strings.NewReader(`watch(0xa100, "x")`))
	is.True(err != nil)

	// an error in access() stops the CPU and no further calls are made
	h, err := script.NewHandler(ti.CPU, "access.lua", strings.NewReader(`
calls = 0
watch(0xa100, "w")
function access()
	calls = calls + 1
	error("boom")
end
`))
	is.NoErr(err)
	defer h.Close()
	ti.CPU.RegisterDebugHandler(h, nil)

	is.NoErr(ti.Run(context.Background()))
	is.True(h.Err() != nil)
	is.Equal(ti.CPU.PC(), uint16(0xa008))
	is.Equal(ti.Mem.ReadWord(0xa100), uint16(0x0000))

	ti.Step()
	ti.Step()
	is.Equal(h.L.GetGlobal("calls").String(), "1")
}
