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

package curated_test

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/gopher99/gopher99/curated"
	"github.com/gopher99/gopher99/test"
)

const testPattern = "test: %d"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("cpu: %v", curated.Errorf("cpu: %v", curated.Errorf("invalid opcode")))
	test.Equate(t, e.Error(), "cpu: invalid opcode")

	f := curated.Errorf("machine: %v", e)
	test.Equate(t, f.Error(), "machine: cpu: invalid opcode")
}

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectedSuccess(t, curated.IsAny(e))
	test.ExpectedSuccess(t, curated.Is(e, testPattern))
	test.ExpectedSuccess(t, curated.Has(e, testPattern))

	f := curated.Errorf("wrapped: %v", e)
	test.ExpectedFailure(t, curated.Is(f, testPattern))
	test.ExpectedSuccess(t, curated.Has(f, testPattern))

	// plain errors are not curated
	g := errors.New("plain error")
	test.ExpectedFailure(t, curated.IsAny(g))
	test.ExpectedFailure(t, curated.Has(g, testPattern))

	// curated error wrapped by the fmt package is still found by Has()
	h := fmt.Errorf("outer: %w", e)
	test.ExpectedSuccess(t, curated.Has(h, testPattern))

	test.ExpectedFailure(t, curated.IsAny(nil))
	test.ExpectedFailure(t, curated.Has(nil, testPattern))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf("loader: %v", io.ErrUnexpectedEOF)
	test.ExpectedSuccess(t, errors.Is(e, io.ErrUnexpectedEOF))
	test.Equate(t, e.Error(), "loader: unexpected EOF")
}
