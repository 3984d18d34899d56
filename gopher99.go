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

// Gopher99 runs TMS9900 machine code on an emulated TI-99/4A.
//
// Program images are raw binary files, loaded into RAM at the origin address
// (by default >A000). Without a console ROM the CPU starts at the origin with
// the workspace at >8300. With a console ROM the CPU is reset through the
// reset vector in the ROM.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gopher99/gopher99/logger"
)

type cli struct {
	Log bool `help:"echo log entries to stderr as they are made"`

	Run     runCmd     `cmd help:"run a program image"`
	Disasm  disasmCmd  `cmd help:"disassemble a program image"`
	Trie    trieCmd    `cmd help:"write the opcode decoding trie in graphviz format"`
	Monitor monitorCmd `cmd help:"step through a program image one key at a time"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("gopher99"),
		kong.Description("TMS9900 emulation"),
	)

	if c.Log {
		logger.SetEcho(os.Stderr)
	}

	err := ctx.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "recent log entries:")
		logger.Tail(os.Stderr, 10)
	}
	ctx.FatalIfErrorf(err)
}
