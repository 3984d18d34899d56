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

package script

import (
	"io"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/hardware/cpu"
	"github.com/gopher99/gopher99/hardware/memory/traps"
	"github.com/gopher99/gopher99/logger"
)

// Handler is a debug handler backed by a Lua program.
type Handler struct {
	mc *cpu.CPU
	L  *lua.LState

	// the access() function defined by the program. nil if the program did
	// not define one
	access *lua.LFunction

	// the first error raised by the access() function
	err error
}

// NewHandler compiles and runs the Lua program. The name is used in error
// messages. The Handler is not registered with the CPU.
func NewHandler(mc *cpu.CPU, name string, source io.Reader) (*Handler, error) {
	h := &Handler{
		mc: mc,
		L:  lua.NewState(),
	}

	h.L.SetGlobal("watch", h.L.NewFunction(h.watch))
	h.L.SetGlobal("unwatch", h.L.NewFunction(h.unwatch))
	h.L.SetGlobal("stop", h.L.NewFunction(h.stop))
	h.L.SetGlobal("log", h.L.NewFunction(h.log))
	h.L.SetGlobal("reg", h.L.NewFunction(h.reg))
	h.L.SetGlobal("setreg", h.L.NewFunction(h.setreg))
	h.L.SetGlobal("pc", h.L.NewFunction(h.pc))
	h.L.SetGlobal("wp", h.L.NewFunction(h.wp))
	h.L.SetGlobal("st", h.L.NewFunction(h.st))
	h.L.SetGlobal("peek", h.L.NewFunction(h.peek))
	h.L.SetGlobal("poke", h.L.NewFunction(h.poke))

	fn, err := h.L.Load(source, name)
	if err != nil {
		h.L.Close()
		return nil, curated.Errorf("script: %v", err)
	}

	h.L.Push(fn)
	if err := h.L.PCall(0, lua.MultRet, nil); err != nil {
		h.L.Close()
		return nil, curated.Errorf("script: %v", err)
	}

	if f, ok := h.L.GetGlobal("access").(*lua.LFunction); ok {
		h.access = f
	}

	logger.Logf(logger.Allow, "script", "loaded %s", name)

	return h, nil
}

// Close the Lua state. The Handler must be deregistered from the CPU first.
func (h *Handler) Close() {
	h.L.Close()
}

// Err returns the first error raised by the access() function.
func (h *Handler) Err() error {
	return h.err
}

// Debug implements the traps.DebugHandler interface.
func (h *Handler) Debug(_ any, address uint16, isWord bool, value uint16, isRead bool, isFetch bool) uint16 {
	if h.access == nil || h.err != nil {
		return value
	}

	err := h.L.CallByParam(lua.P{
		Fn:      h.access,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(address), lua.LBool(isWord), lua.LNumber(value), lua.LBool(isRead), lua.LBool(isFetch))
	if err != nil {
		h.err = curated.Errorf("script: %v", err)
		logger.Log(logger.Allow, "script", h.err)
		h.mc.Stop()
		return value
	}

	ret := h.L.Get(-1)
	h.L.Pop(1)

	if n, ok := ret.(lua.LNumber); ok {
		return uint16(int64(n))
	}

	return value
}

func classes(L *lua.LState, n int) traps.Flag {
	var f traps.Flag
	for _, c := range strings.ToLower(L.OptString(n, "f")) {
		switch c {
		case 'f':
			f |= traps.DebugFetch
		case 'r':
			f |= traps.DebugRead
		case 'w':
			f |= traps.DebugWrite
		default:
			L.ArgError(n, "access classes are a combination of f, r and w")
		}
	}
	return f
}

func (h *Handler) watch(L *lua.LState) int {
	address := uint16(L.CheckInt(1))
	L.Push(lua.LBool(h.mc.SetBreakpoint(address, classes(L, 2))))
	return 1
}

func (h *Handler) unwatch(L *lua.LState) int {
	address := uint16(L.CheckInt(1))
	L.Push(lua.LBool(h.mc.ClearBreakpoint(address, classes(L, 2))))
	return 1
}

func (h *Handler) stop(L *lua.LState) int {
	h.mc.Stop()
	return 0
}

func (h *Handler) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func register(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 || n > 15 {
		L.ArgError(1, "register number must be between 0 and 15")
	}
	return n
}

func (h *Handler) reg(L *lua.LState) int {
	L.Push(lua.LNumber(h.mc.Register(register(L))))
	return 1
}

func (h *Handler) setreg(L *lua.LState) int {
	h.mc.SetRegister(register(L), uint16(L.CheckInt(2)))
	return 0
}

func (h *Handler) pc(L *lua.LState) int {
	L.Push(lua.LNumber(h.mc.PC()))
	return 1
}

func (h *Handler) wp(L *lua.LState) int {
	L.Push(lua.LNumber(h.mc.WP()))
	return 1
}

func (h *Handler) st(L *lua.LState) int {
	L.Push(lua.LNumber(h.mc.ST()))
	return 1
}

func (h *Handler) peek(L *lua.LState) int {
	L.Push(lua.LNumber(h.mc.Memory().ReadWord(uint16(L.CheckInt(1)))))
	return 1
}

func (h *Handler) poke(L *lua.LState) int {
	h.mc.Memory().WriteWord(uint16(L.CheckInt(1)), uint16(L.CheckInt(2)))
	return 0
}
