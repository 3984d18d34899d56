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

//go:build !statsview

package statsview

import (
	"io"

	"github.com/gopher99/gopher99/curated"
)

// Address of the stats server.
const Address = ""

// Path of the graphical statistics page on the stats server.
const Path = ""

// Launch fails because the statsview build constraint was not present.
func Launch(_ io.Writer) error {
	return curated.Errorf("statsview: not available in this build")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
