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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values.
//
// The pattern is retained and can be used to identify the error later:
//
//	e := curated.Errorf("paging: region %#04x not page aligned", addr)
//
//	if curated.Is(e, "paging: region %#04x not page aligned") {
//		...
//	}
//
// Has() is similar to Is() but searches the entire chain of wrapped curated
// errors. Any other error wrapped with the %w verb is reachable with the
// standard errors.Is() and errors.As() functions.
//
// By convention the pattern begins with the name of the package creating the
// error followed by a colon. When errors are wrapped the message would
// therefore often repeat the same prefix ("cpu: cpu: invalid"). The Error()
// implementation removes adjacent duplicate parts so that callers can wrap
// without worrying about how the message will finally read.
package curated
