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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Equate() function compares a value against an expected value. Literal
// int values are accepted as the expected value for the unsigned types that
// the emulation uses everywhere, which saves casting in every test:
//
//	test.Equate(t, mc.PC(), 0x0100)
//
// ExpectedSuccess() and ExpectedFailure() test bool and error values for the
// success/failure condition appropriate for the type.
//
// CompareWriter is an io.Writer that buffers output for later comparison
// against an expected string.
package test
