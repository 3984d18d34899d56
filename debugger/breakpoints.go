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
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/hardware/cpu"
	"github.com/gopher99/gopher99/hardware/memory/traps"
	"github.com/gopher99/gopher99/logger"
)

// Breakpoint halts the CPU when address is accessed with one of the access
// classes in Class.
type Breakpoint struct {
	Address uint16
	Class   traps.Flag
}

func (b Breakpoint) String() string {
	var c []string
	if b.Class&traps.DebugFetch == traps.DebugFetch {
		c = append(c, "fetch")
	}
	if b.Class&traps.DebugRead == traps.DebugRead {
		c = append(c, "read")
	}
	if b.Class&traps.DebugWrite == traps.DebugWrite {
		c = append(c, "write")
	}
	return fmt.Sprintf(">%04x %s", b.Address, strings.Join(c, "|"))
}

// ParseBreakpoint converts a string to a Breakpoint. The string is an address,
// optionally preceded by the access classes and a colon. For example:
//
//	>6000
//	read:8300
//	read|write:0x83e0
//
// Without the classes the breakpoint is a fetch breakpoint. Addresses are
// hexadecimal and may be prefixed with > or 0x.
func ParseBreakpoint(s string) (Breakpoint, error) {
	b := Breakpoint{Class: traps.DebugFetch}

	classes, address, found := strings.Cut(s, ":")
	if !found {
		address = classes
	} else {
		b.Class = 0
		for _, c := range strings.Split(classes, "|") {
			switch strings.ToLower(strings.TrimSpace(c)) {
			case "f", "fetch":
				b.Class |= traps.DebugFetch
			case "r", "read":
				b.Class |= traps.DebugRead
			case "w", "write":
				b.Class |= traps.DebugWrite
			default:
				return Breakpoint{}, curated.Errorf("debugger: unknown access class (%s)", c)
			}
		}
	}

	a, err := ParseAddress(address)
	if err != nil {
		return Breakpoint{}, err
	}
	b.Address = a

	return b, nil
}

// ParseAddress converts a hexadecimal string to an address. The string may be
// prefixed with > or 0x.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ">")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	a, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, curated.Errorf("debugger: %v", err)
	}
	return uint16(a), nil
}

// Hit records a breakpoint being triggered.
type Hit struct {
	Breakpoint

	// the address of the instruction that caused the access
	PC uint16

	// the value read or written
	Value  uint16
	IsWord bool
	IsRead bool
}

func (h Hit) String() string {
	access := "write"
	if h.IsRead {
		access = "read"
	}
	if h.Class == traps.DebugFetch {
		access = "fetch"
	}
	if h.IsWord {
		return fmt.Sprintf("%s of >%04x at >%04x (value >%04x)", access, h.Address, h.PC, h.Value)
	}
	return fmt.Sprintf("%s of >%04x at >%04x (value >%02x)", access, h.Address, h.PC, h.Value&0xff)
}

// Breakpoints is the debug handler for a CPU.
type Breakpoints struct {
	mc *cpu.CPU

	crit  sync.Mutex
	list  []Breakpoint
	hits  []Hit
	chain traps.DebugHandler
}

// NewBreakpoints is the preferred method of initialisation for the Breakpoints
// type. The new instance becomes the debug handler of the CPU.
func NewBreakpoints(mc *cpu.CPU) *Breakpoints {
	bp := &Breakpoints{mc: mc}
	mc.RegisterDebugHandler(bp, nil)
	return bp
}

// Chain another debug handler. The chained handler is called for every access
// the CPU delivers to the debug handler, including accesses that trigger a
// breakpoint. The value returned by the chained handler replaces the value of
// the access. A nil handler removes the chain.
func (bp *Breakpoints) Chain(h traps.DebugHandler) {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	bp.chain = h
}

// Add a breakpoint. Fails if any of the access classes are already being
// watched at the address, either by an existing breakpoint or by a chained
// handler.
func (bp *Breakpoints) Add(b Breakpoint) error {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	if b.Class == 0 || b.Class&^traps.DebugMask != 0 {
		return curated.Errorf("debugger: breakpoint has an invalid access class (%s)", b)
	}
	if !bp.mc.SetBreakpoint(b.Address, b.Class) {
		return curated.Errorf("debugger: breakpoint already exists (%s)", b)
	}
	bp.list = append(bp.list, b)

	logger.Logf(logger.Allow, "debugger", "added breakpoint %s", b)

	return nil
}

// Drop the breakpoint at index i of the list.
func (bp *Breakpoints) Drop(i int) error {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	if i < 0 || i >= len(bp.list) {
		return curated.Errorf("debugger: breakpoint #%d is not defined", i)
	}

	b := bp.list[i]
	bp.mc.ClearBreakpoint(b.Address, b.Class)
	bp.list = append(bp.list[:i], bp.list[i+1:]...)

	logger.Logf(logger.Allow, "debugger", "dropped breakpoint %s", b)

	return nil
}

// Clear all breakpoints.
func (bp *Breakpoints) Clear() {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	for _, b := range bp.list {
		bp.mc.ClearBreakpoint(b.Address, b.Class)
	}
	bp.list = bp.list[:0]
}

// Len returns the number of breakpoints.
func (bp *Breakpoints) Len() int {
	bp.crit.Lock()
	defer bp.crit.Unlock()
	return len(bp.list)
}

// List writes the breakpoints to output.
func (bp *Breakpoints) List(output io.Writer) {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	if len(bp.list) == 0 {
		io.WriteString(output, "no breakpoints\n")
		return
	}
	for i, b := range bp.list {
		io.WriteString(output, fmt.Sprintf("%2d: %s\n", i, b))
	}
}

// Hits returns the hits since the last call to Hits().
func (bp *Breakpoints) Hits() []Hit {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	h := bp.hits
	bp.hits = nil
	return h
}

// Debug implements the traps.DebugHandler interface.
func (bp *Breakpoints) Debug(ctx any, address uint16, isWord bool, value uint16, isRead bool, isFetch bool) uint16 {
	bp.crit.Lock()
	defer bp.crit.Unlock()

	var class traps.Flag
	switch {
	case isFetch:
		class = traps.DebugFetch
	case isRead:
		class = traps.DebugRead
	default:
		class = traps.DebugWrite
	}

	for _, b := range bp.list {
		if !matches(b.Address, address, isWord) || b.Class&class != class {
			continue
		}
		bp.hits = append(bp.hits, Hit{
			Breakpoint: Breakpoint{Address: address, Class: class},
			PC:         bp.mc.LastResult.Address,
			Value:      value,
			IsWord:     isWord,
			IsRead:     isRead,
		})
		bp.mc.Stop()
		break
	}

	if bp.chain != nil {
		return bp.chain.Debug(ctx, address, isWord, value, isRead, isFetch)
	}

	return value
}

// word accesses are delivered once, at the even address, but cover a
// breakpoint on either byte
func matches(breakAddress uint16, address uint16, isWord bool) bool {
	if isWord {
		return breakAddress&0xfffe == address&0xfffe
	}
	return breakAddress == address
}
