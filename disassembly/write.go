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

package disassembly

import (
	"fmt"
	"io"

	"github.com/gopher99/gopher99/curated"
)

// FetchFromImage returns a fetch function for a memory image loaded at
// origin. Addresses outside the image read as zero.
func FetchFromImage(origin uint16, image []byte) func(address uint16) uint16 {
	return func(address uint16) uint16 {
		o := int(address&0xfffe) - int(origin)
		if o < 0 || o >= len(image) {
			return 0
		}
		w := uint16(image[o]) << 8
		if o+1 < len(image) {
			w |= uint16(image[o+1])
		}
		return w
	}
}

// Write disassembles count instructions starting at pc. Returns the address
// after the last instruction written.
func Write(output io.Writer, pc uint16, count int, fetch func(address uint16) uint16) (uint16, error) {
	for i := 0; i < count; i++ {
		var e Entry
		e, pc = Disassemble(pc, fetch)
		if _, err := io.WriteString(output, fmt.Sprintf("%s\n", e)); err != nil {
			return pc, curated.Errorf("disassembly: %v", err)
		}
	}
	return pc, nil
}
