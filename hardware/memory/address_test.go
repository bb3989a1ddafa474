// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

package memory_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestNewAddress(t *testing.T) {
	// in-range values are unchanged
	test.ExpectEquality(t, memory.NewAddress(0x0abc).Inner(), 0x0abc)
	test.ExpectEquality(t, memory.NewAddress(0x0000).Inner(), 0x0000)
	test.ExpectEquality(t, memory.NewAddress(0x0fff).Inner(), 0x0fff)

	// bits outside the 12-bit space are discarded
	test.ExpectEquality(t, memory.NewAddress(0x1200).Inner(), 0x0200)
	test.ExpectEquality(t, memory.NewAddress(0xffff).Inner(), 0x0fff)
}

func TestAddAssign(t *testing.T) {
	a := memory.NewAddress(0x0200)
	test.ExpectedSuccess(t, a.AddAssign(2))
	test.ExpectEquality(t, a.Inner(), 0x0202)

	// adding up to the very top of memory is fine
	a = memory.NewAddress(0x0ffe)
	test.ExpectedSuccess(t, a.AddAssign(1))
	test.ExpectEquality(t, a, memory.Memtop)

	// but one past the top is an error and the address does not move
	err := a.AddAssign(1)
	test.ExpectedFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, memory.AddressOutOfRange), true)
	test.ExpectEquality(t, a, memory.Memtop)

	// a large delta that would wrap the underlying integer is also caught
	a = memory.NewAddress(0x0100)
	test.ExpectedFailure(t, a.AddAssign(0xffff))
	test.ExpectEquality(t, a.Inner(), 0x0100)
}
