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

package decode

import (
	"io"
	"sync"

	"github.com/bradleyjkemp/memviz"

	"github.com/gopher99/gopher99/hardware/cpu/instructions"
)

type entry struct {
	Child *node
	Defn  *instructions.Definition
}

type node [16]entry

func newNode(fill *instructions.Definition) *node {
	var n node
	for i := range n {
		n[i].Defn = fill
	}
	return &n
}

// Trie maps every possible instruction word to an instruction definition.
type Trie struct {
	root  *node
	nodes int
}

// NewTrie is the preferred method of initialisation for the Trie type. The
// definitions are inserted in order and later definitions take precedence
// over earlier definitions where they overlap.
func NewTrie(defs []*instructions.Definition) *Trie {
	t := &Trie{
		root:  newNode(instructions.InvalidDefinition),
		nodes: 1,
	}
	for _, defn := range defs {
		t.insert(t.root, 12, defn)
	}
	return t
}

// Standard returns the trie for the standard definitions table. The trie is
// built on first use and shared afterwards.
var Standard = sync.OnceValue(func() *Trie {
	return NewTrie(instructions.Definitions())
})

// insert defn into the level of the trie that decodes the nibble at shift.
func (t *Trie) insert(n *node, shift uint, defn *instructions.Definition) {
	m := (defn.Mask >> shift) & 0x0f
	v := (defn.Match >> shift) & 0x0f

	// deeper levels are required if the mask covers bits below this nibble
	deeper := shift > 0 && defn.Mask&(uint16(1)<<shift-1) != 0

	for i := uint16(0); i < 16; i++ {
		if i&m != v {
			continue
		}

		e := &n[i]
		if deeper {
			if e.Child == nil {
				// the new child inherits the leaf it replaces
				e.Child = newNode(e.Defn)
				t.nodes++
			}
			t.insert(e.Child, shift-4, defn)
		} else {
			e.Defn = defn
			if e.Child != nil {
				fill(e.Child, defn)
			}
		}
	}
}

// fill every leaf in the subtree.
func fill(n *node, defn *instructions.Definition) {
	for i := range n {
		n[i].Defn = defn
		if n[i].Child != nil {
			fill(n[i].Child, defn)
		}
	}
}

// Lookup returns the definition for the instruction word. It never returns
// nil.
func (t *Trie) Lookup(word uint16) *instructions.Definition {
	n := t.root
	shift := 12
	for {
		e := &n[(word>>shift)&0x0f]
		if e.Child == nil {
			return e.Defn
		}
		n = e.Child
		shift -= 4
	}
}

// Nodes returns the number of nodes in the trie, including the root.
func (t *Trie) Nodes() int {
	return t.nodes
}

// Visualise writes a graphviz rendering of the trie to w.
func (t *Trie) Visualise(w io.Writer) {
	memviz.Map(w, t.root)
}
