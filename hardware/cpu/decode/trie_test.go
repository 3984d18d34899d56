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

package decode_test

import (
	"strings"
	"testing"

	"github.com/gopher99/gopher99/hardware/cpu/decode"
	"github.com/gopher99/gopher99/hardware/cpu/instructions"
	"github.com/gopher99/gopher99/test"
)

func TestOpcodeCoverage(t *testing.T) {
	trie := decode.NewTrie(instructions.Definitions())

	for _, defn := range instructions.Definitions() {
		// canonical pattern with all don't care bits clear
		d := trie.Lookup(defn.Match)
		if d != defn {
			t.Errorf("%04x decoded as %s instead of %s", defn.Match, d.Mnemonic, defn.Mnemonic)
		}

		// all don't care bits set
		w := defn.Match | ^defn.Mask
		d = trie.Lookup(w)
		if d != defn {
			t.Errorf("%04x decoded as %s instead of %s", w, d.Mnemonic, defn.Mnemonic)
		}
	}
}

func TestExhaustive(t *testing.T) {
	trie := decode.NewTrie(instructions.Definitions())

	// every word decodes to the one definition that matches it, or to the
	// invalid definition if nothing matches
	for w := 0; w <= 0xffff; w++ {
		want := instructions.InvalidDefinition
		for _, defn := range instructions.Definitions() {
			if defn.Matches(uint16(w)) {
				want = defn
				break
			}
		}
		if got := trie.Lookup(uint16(w)); got != want {
			t.Fatalf("%04x decoded as %s instead of %s", w, got.Mnemonic, want.Mnemonic)
		}
	}
}

func TestInvalid(t *testing.T) {
	trie := decode.NewTrie(instructions.Definitions())

	for _, w := range []uint16{0x0000, 0x01ff, 0x0210, 0x0780, 0x07ff, 0x0c00, 0x0fff} {
		test.Equate(t, trie.Lookup(w) == instructions.InvalidDefinition, true)
	}
}

func TestInsertionOrder(t *testing.T) {
	general := &instructions.Definition{Mnemonic: "GEN", Match: 0x0400, Mask: 0xff00, Operator: instructions.B}
	specific := &instructions.Definition{Mnemonic: "SPEC", Match: 0x0440, Mask: 0xffc0, Operator: instructions.BL}

	// specific after general overwrites the leaves it shares with general
	trie := decode.NewTrie([]*instructions.Definition{general, specific})
	test.Equate(t, trie.Lookup(0x0400).Mnemonic, "GEN")
	test.Equate(t, trie.Lookup(0x0445).Mnemonic, "SPEC")
	test.Equate(t, trie.Lookup(0x04ff).Mnemonic, "GEN")

	// general after specific overwrites everything
	trie = decode.NewTrie([]*instructions.Definition{specific, general})
	test.Equate(t, trie.Lookup(0x0445).Mnemonic, "GEN")
	test.Equate(t, trie.Lookup(0x0400).Mnemonic, "GEN")
}

func TestVisualise(t *testing.T) {
	trie := decode.NewTrie(instructions.Definitions())
	test.Equate(t, trie.Nodes() > 1, true)

	w := &strings.Builder{}
	trie.Visualise(w)
	test.Equate(t, strings.Contains(w.String(), "digraph"), true)
}
