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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/test"
)

func TestStack(t *testing.T) {
	var stk cpu.Stack

	test.ExpectEquality(t, stk.Len(), 0)
	test.ExpectedSuccess(t, stk.Push(memory.NewAddress(0x0202)))
	test.ExpectedSuccess(t, stk.Push(memory.NewAddress(0x0300)))
	test.ExpectEquality(t, stk.Len(), 2)

	// LIFO order
	address, err := stk.Pop()
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, address, memory.NewAddress(0x0300))
	address, err = stk.Pop()
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, address, memory.NewAddress(0x0202))
	test.ExpectEquality(t, stk.Len(), 0)
}

func TestStackLimits(t *testing.T) {
	var stk cpu.Stack

	_, err := stk.Pop()
	test.ExpectedFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, cpu.StackUnderflow), true)

	for i := 0; i < cpu.StackDepth; i++ {
		test.ExpectedSuccess(t, stk.Push(memory.EntryPoint))
	}

	err = stk.Push(memory.EntryPoint)
	test.ExpectedFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, cpu.StackOverflow), true)

	// a failed push does not disturb the existing entries
	test.ExpectEquality(t, stk.Len(), cpu.StackDepth)

	stk.Clear()
	test.ExpectEquality(t, stk.Len(), 0)
}

func TestStackString(t *testing.T) {
	var stk cpu.Stack

	test.ExpectEquality(t, stk.String(), "empty")

	_ = stk.Push(memory.NewAddress(0x0202))
	_ = stk.Push(memory.NewAddress(0x0240))
	test.ExpectEquality(t, stk.String(), "0x202 0x240")
}
