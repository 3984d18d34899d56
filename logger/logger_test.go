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

package logger_test

import (
	"strings"
	"testing"

	"github.com/gopher99/gopher99/logger"
	"github.com/gopher99/gopher99/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.CompareWriter{}

	log.Write(tw)
	test.Equate(t, tw.Compare(""), true)

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\n"), true)

	tw.Clear()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(tw)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	log.Tail(tw, 100)
	test.Equate(t, tw.Compare("test: this is a test\ntest2: this is another test\n"), true)

	// asking for fewer entries is okay too
	tw.Clear()
	log.Tail(tw, 1)
	test.Equate(t, tw.Compare("test2: this is another test\n"), true)

	// and no entries
	tw.Clear()
	log.Tail(tw, 0)
	test.Equate(t, tw.Compare(""), true)
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.CompareWriter{}

	log.Logf(logger.Allow, "cpu", "invalid opcode %04x", 0x0000)
	log.Logf(logger.Allow, "cpu", "invalid opcode %04x", 0x0000)
	log.Logf(logger.Allow, "cpu", "invalid opcode %04x", 0x0000)
	log.Write(tw)
	test.Equate(t, tw.Compare("cpu: invalid opcode 0000 (repeat x3)\n"), true)
}

func TestPermission(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.CompareWriter{}

	log.Log(logger.Deny, "test", "should not appear")
	log.Write(tw)
	test.Equate(t, tw.Compare(""), true)
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		log.Log(logger.Allow, "tag", s)
	}

	w := &strings.Builder{}
	log.Write(w)
	test.Equate(t, w.String(), "tag: c\ntag: d\ntag: e\n")
}

func TestWriteRecent(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.CompareWriter{}

	log.Log(logger.Allow, "tag", "one")
	log.WriteRecent(tw)
	test.Equate(t, tw.Compare("tag: one\n"), true)

	tw.Clear()
	log.Log(logger.Allow, "tag", "two")
	log.WriteRecent(tw)
	test.Equate(t, tw.Compare("tag: two\n"), true)

	tw.Clear()
	log.WriteRecent(tw)
	test.Equate(t, tw.Compare(""), true)
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	tw := &test.CompareWriter{}
	log.SetEcho(tw)
	log.Log(logger.Allow, "grom", "address set")
	test.Equate(t, tw.Compare("grom: address set\n"), true)
}
