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

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync/atomic"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/gopher99/gopher99/curated"
)

// Address of the stats server.
const Address = "localhost:12699"

// Path of the graphical statistics page on the stats server.
const Path = "/debug/statsview"

// sampling interval of the charts in milliseconds. a long run of the engine
// changes slowly so there is no need for the default rate.
const interval = 2000

var launched atomic.Bool

// Launch starts the stats server in a new goroutine and writes its location to
// output. The server runs for the lifetime of the process and can only be
// launched once.
func Launch(output io.Writer) error {
	if !launched.CompareAndSwap(false, true) {
		return curated.Errorf("statsview: already running at %s%s", Address, Path)
	}

	viewer.SetConfiguration(viewer.WithAddr(Address), viewer.WithInterval(interval))
	go statsview.New().Start()

	_, err := fmt.Fprintf(output, "stats server available at %s%s\n", Address, Path)
	return err
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
