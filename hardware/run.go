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

package hardware

import (
	"context"
	"fmt"

	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/disassembly"
)

// PerformanceBrake is the number of instructions between checks of the
// context when Run() is tracing.
const PerformanceBrake = 100

// Run the CPU until it is stopped or the context is cancelled. The CPU is
// stopped with CPU.Stop() from a trap handler, a debug handler, another
// goroutine or by the MaxInstructions option. Returns the context's error if
// the context was cancelled.
func (ti *TI99) Run(ctx context.Context) error {
	if ti.opts.Trace != nil {
		return ti.runTrace(ctx)
	}

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			ti.CPU.Stop()
		case <-done:
		}
	}()

	ti.CPU.Run()
	close(done)
	<-stopped

	return ctx.Err()
}

func (ti *TI99) runTrace(ctx context.Context) error {
	brake := 0
	for {
		count := ti.CPU.InstructionCount()
		stop := ti.CPU.Step()

		// an idle CPU does not execute an instruction
		if ti.CPU.InstructionCount() != count {
			e := disassembly.FromResult(ti.CPU.LastResult)
			if _, err := fmt.Fprintf(ti.opts.Trace, "%s  [%s]\n", e, e.Cycles()); err != nil {
				return curated.Errorf("hardware: trace: %v", err)
			}
		}

		if stop {
			return nil
		}

		brake++
		if brake >= PerformanceBrake {
			brake = 0
			if err := ctx.Err(); err != nil {
				return err
			}
		}
	}
}
