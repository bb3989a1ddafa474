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

package test

import (
	"testing"
)

// ExpectEquality is used to test equality between one value and another. The
// test is only useful for types that satisfy the comparable constraint.
//
// Untyped constants as the expected value convert naturally at the call site:
//
//	var r uint8
//	r = someFunction()
//	test.ExpectEquality(t, r, 10)
func ExpectEquality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()

	if value != expectedValue {
		t.Errorf("equality test of type %T failed (%v  - wanted %v)", value, value, expectedValue)
		return false
	}

	return true
}

// ExpectInequality is the inverse of ExpectEquality.
func ExpectInequality[T comparable](t *testing.T, value T, expectedValue T) bool {
	t.Helper()

	if value == expectedValue {
		t.Errorf("inequality test of type %T failed (%v  - wanted anything else)", value, value)
		return false
	}

	return true
}
