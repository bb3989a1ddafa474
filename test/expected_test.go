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

package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/test"
)

func TestExpectedFailure(t *testing.T) {
	test.ExpectedFailure(t, false)
	test.ExpectedFailure(t, errors.New("test"))
}

func TestExpectedSuccess(t *testing.T) {
	test.ExpectedSuccess(t, true)
	var err error
	test.ExpectedSuccess(t, err)
	test.ExpectedSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, true)
	test.ExpectEquality(t, true, !false)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, tw.Compare(""), true)

	tw.Write([]byte("hello"))
	tw.Write([]byte(", world"))
	test.ExpectEquality(t, tw.Compare("hello, world"), true)
	test.ExpectEquality(t, tw.String(), "hello, world")

	tw.Clear()
	test.ExpectEquality(t, tw.Compare(""), true)
}
