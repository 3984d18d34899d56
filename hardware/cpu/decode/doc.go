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

// Package decode resolves instruction words to instruction definitions. The
// Trie type is built once from the definitions table and is immutable
// afterwards. It is safe to share between CPU instances.
//
// The trie has four levels, one per nibble of the instruction word, with the
// most significant nibble at the root. Each level is a fixed array of sixteen
// entries. An entry is either a leaf, pointing to a definition, or a child
// node when the definitions below that entry depend on lower nibbles. Lookup
// stops at the first leaf and so never takes more than four array indexes.
//
// Every leaf that is not filled by a definition points to the
// instructions.InvalidDefinition.
package decode
