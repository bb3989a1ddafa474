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

package cpu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/memory"
)

// StackDepth is the maximum number of nested subroutine calls.
const StackDepth = 16

// StackOverflow is returned by a push onto a full stack.
var StackOverflow = errors.New("stack overflow")

// StackUnderflow is returned by a pop from an empty stack.
var StackUnderflow = errors.New("stack underflow")

// Stack holds the return addresses of subroutine calls in progress. The
// machine has no other use for it. It is a plain value type so that copying a
// CPU copies the stack with it.
type Stack struct {
	addresses [StackDepth]memory.Address
	sp        int
}

// Push adds a return address to the stack.
func (stk *Stack) Push(address memory.Address) error {
	if stk.sp >= StackDepth {
		return fmt.Errorf("cpu: %w", StackOverflow)
	}
	stk.addresses[stk.sp] = address
	stk.sp++
	return nil
}

// Pop removes and returns the most recently pushed address.
func (stk *Stack) Pop() (memory.Address, error) {
	if stk.sp == 0 {
		return 0, fmt.Errorf("cpu: %w", StackUnderflow)
	}
	stk.sp--
	return stk.addresses[stk.sp], nil
}

// Clear empties the stack.
func (stk *Stack) Clear() {
	stk.sp = 0
}

// Len returns the number of addresses on the stack.
func (stk *Stack) Len() int {
	return stk.sp
}

// String lists the stack contents, most recent push last.
func (stk *Stack) String() string {
	if stk.sp == 0 {
		return "empty"
	}
	s := strings.Builder{}
	for i := 0; i < stk.sp; i++ {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(stk.addresses[i].String())
	}
	return s.String()
}
