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

package test

import "strings"

// CompareWriter collects everything written to it. Tests use it in place of
// an output file or terminal and then check what the engine, the log or the
// debugger produced.
type CompareWriter struct {
	buffer strings.Builder
}

func (tw *CompareWriter) Write(p []byte) (int, error) {
	return tw.buffer.Write(p)
}

// Clear discards the collected output.
func (tw *CompareWriter) Clear() {
	tw.buffer.Reset()
}

// Compare returns true if the collected output is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.buffer.String() == s
}

// Contains returns true if s appears anywhere in the collected output.
func (tw *CompareWriter) Contains(s string) bool {
	return strings.Contains(tw.buffer.String(), s)
}

// Lines returns the collected output split into lines. Leading and trailing
// white space is removed first so a final newline does not produce an empty
// line. No output returns no lines.
func (tw *CompareWriter) Lines() []string {
	s := strings.TrimSpace(tw.buffer.String())
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (tw *CompareWriter) String() string {
	return tw.buffer.String()
}
