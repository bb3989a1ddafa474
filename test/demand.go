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

import "testing"

// DemandEquality is used to test equality between one value and another. If
// the test fails it is a testing fatality.
//
// This is particularly useful if the values being tested are used in further
// tests and so must be correct. For example, testing that the lengths of two
// slices are equal before iterating over them in unison.
func DemandEquality[T comparable](t *testing.T, value T, expectedValue T) {
	t.Helper()

	if value != expectedValue {
		t.Fatalf("equality test of type %T failed (%v - wanted %v)", value, value, expectedValue)
	}
}

// DemandSuccess is the fatal version of ExpectedSuccess. The same success
// conditions apply but failure ends the test immediately.
func DemandSuccess(t *testing.T, v interface{}) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if !v {
			t.Fatalf("demanded success (bool)")
		}

	case error:
		if v != nil {
			t.Fatalf("demanded success (error: %v)", v)
		}

	case nil:

	default:
		t.Fatalf("unsupported type (%T) for demand testing", v)
	}
}

// DemandFailure is the fatal version of ExpectedFailure. The same failure
// conditions apply but an unexpected success ends the test immediately.
func DemandFailure(t *testing.T, v interface{}) {
	t.Helper()

	switch v := v.(type) {
	case bool:
		if v {
			t.Fatalf("demanded failure (bool)")
		}

	case error:
		if v == nil {
			t.Fatalf("demanded failure (error)")
		}

	case nil:
		t.Fatalf("demanded failure (nil)")

	default:
		t.Fatalf("unsupported type (%T) for demand testing", v)
	}
}
