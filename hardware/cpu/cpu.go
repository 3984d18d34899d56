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
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopher99/gopher99/debugger/govern"
	"github.com/gopher99/gopher99/hardware/cpu/decode"
	"github.com/gopher99/gopher99/hardware/cpu/execution"
	"github.com/gopher99/gopher99/hardware/cpu/registers"
	"github.com/gopher99/gopher99/hardware/memory/paging"
	"github.com/gopher99/gopher99/hardware/memory/traps"
)

// InterruptSource is implemented by devices that assert interrupt lines. The
// CPU calls UpdateInterrupts() before every instruction and the device should
// respond by calling SignalInterrupt() and ClearInterrupt() as required.
type InterruptSource interface {
	UpdateInterrupts(mc *CPU)
}

// CPU implements the TMS9900.
type CPU struct {
	// held for the duration of an instruction
	crit sync.Mutex

	pc uint16
	wp uint16
	st registers.Status

	clockCycles  uint32
	instructions uint32

	// bit n is set when interrupt level n is asserted
	interruptFlag atomic.Uint32

	// the CPU is waiting for an interrupt after an IDLE instruction
	idle bool

	state atomic.Int32
	stop  atomic.Bool

	mem   *paging.Manager
	traps *traps.Table
	trie  *decode.Trie

	interrupts InterruptSource
	cru        CRU
	external   func(ExternalCode)
	tick       func()

	// LastResult records the most recently executed instruction. It is
	// updated during the instruction so a trap handler sees the instruction in
	// progress
	LastResult execution.Result

	// result is normally a pointer to LastResult. it points elsewhere while
	// an interrupt is being serviced and while an X instruction executes its
	// operand
	result *execution.Result

	// used for memory accesses that are not part of an instruction
	service execution.Result
}

// NewCPU is the preferred method of initialisation for the CPU type. The CPU
// is not reset and will start executing from address zero with a workspace
// at address zero unless Reset() is called.
func NewCPU(mem *paging.Manager) *CPU {
	mc := &CPU{
		mem:   mem,
		traps: traps.NewTable(),
		trie:  decode.Standard(),
	}
	mc.LastResult.Reset()
	mc.result = &mc.LastResult
	mc.state.Store(int32(govern.Stopped))
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x WP=%04x %s=%s", mc.pc, mc.wp, mc.st.Label(), mc.st)
}

// Memory returns the paging manager used by the CPU.
func (mc *CPU) Memory() *paging.Manager {
	return mc.mem
}

// Traps returns the access-flag table used by the CPU.
func (mc *CPU) Traps() *traps.Table {
	return mc.traps
}

// SetInterruptSource sets the device that is polled for interrupts before
// every instruction. A nil value disables polling.
func (mc *CPU) SetInterruptSource(src InterruptSource) {
	mc.interrupts = src
}

// SetTick sets the function that is called every 256 instructions.
func (mc *CPU) SetTick(tick func()) {
	mc.tick = tick
}

// PC returns the program counter.
func (mc *CPU) PC() uint16 {
	return mc.pc
}

// SetPC sets the program counter. The low bit is ignored.
func (mc *CPU) SetPC(pc uint16) {
	mc.pc = pc &^ 1
}

// WP returns the workspace pointer.
func (mc *CPU) WP() uint16 {
	return mc.wp
}

// SetWP sets the workspace pointer. The low bit is ignored.
func (mc *CPU) SetWP(wp uint16) {
	mc.wp = wp &^ 1
}

// ST returns the status register.
func (mc *CPU) ST() registers.Status {
	return mc.st
}

// SetST sets the status register.
func (mc *CPU) SetST(st registers.Status) {
	mc.st = st
}

// ClockCycles returns the number of cycles since the counters were last reset.
func (mc *CPU) ClockCycles() uint32 {
	return mc.clockCycles
}

// InstructionCount returns the number of instructions executed since the
// counters were last reset.
func (mc *CPU) InstructionCount() uint32 {
	return mc.instructions
}

// ResetCounters zeroes the clock cycle and instruction counters.
func (mc *CPU) ResetCounters() {
	mc.clockCycles = 0
	mc.instructions = 0
}

// Register returns the value of workspace register n. The memory is read
// directly and is not subject to traps or breakpoints.
func (mc *CPU) Register(n int) uint16 {
	return mc.mem.ReadWord(mc.wp + uint16(n&0x0f)<<1)
}

// SetRegister sets the value of workspace register n. The memory is written
// directly and is not subject to traps or breakpoints.
func (mc *CPU) SetRegister(n int, v uint16) {
	mc.mem.WriteWord(mc.wp+uint16(n&0x0f)<<1, v)
}

// Registers is a copy of the CPU registers at an instruction boundary.
type Registers struct {
	PC           uint16
	WP           uint16
	ST           registers.Status
	Workspace    [16]uint16
	ClockCycles  uint32
	Instructions uint32
	Idle         bool
}

func (r Registers) String() string {
	s := fmt.Sprintf("PC=%04x WP=%04x ST=%04x [%s]\n", r.PC, r.WP, uint16(r.ST), r.ST)
	for i, v := range r.Workspace {
		s = fmt.Sprintf("%sR%-2d=%04x", s, i, v)
		if i%4 == 3 {
			s = fmt.Sprintf("%s\n", s)
		} else {
			s = fmt.Sprintf("%s ", s)
		}
	}
	return s
}

// Registers returns a copy of the registers. Safe to call from any goroutine.
func (mc *CPU) Registers() Registers {
	mc.crit.Lock()
	defer mc.crit.Unlock()

	r := Registers{
		PC:           mc.pc,
		WP:           mc.wp,
		ST:           mc.st,
		ClockCycles:  mc.clockCycles,
		Instructions: mc.instructions,
		Idle:         mc.idle,
	}
	for i := range r.Workspace {
		r.Workspace[i] = mc.Register(i)
	}
	return r
}

// IsIdle returns true if the CPU is waiting for an interrupt after an IDLE
// instruction.
func (mc *CPU) IsIdle() bool {
	return mc.idle
}

// State returns the current execution state. Safe to call from any goroutine.
func (mc *CPU) State() govern.State {
	return govern.State(mc.state.Load())
}

// IsRunning returns true if the CPU is inside the Run() loop. Safe to call
// from any goroutine.
func (mc *CPU) IsRunning() bool {
	return mc.State() == govern.Running
}
