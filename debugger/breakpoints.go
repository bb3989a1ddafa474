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

// breakpoints are used to halt execution when the program counter reaches a
// specific address.

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/commandline"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// breakpoints keeps track of all the currently defined breakers.
type breakpoints struct {
	dbg *Debugger

	// array of breakers are ORed together
	breaks []breaker
}

// breaker defines a specific break condition.
type breaker struct {
	address memory.Address

	// a breaker that has fired will not fire again until the program counter
	// has moved away from the break address. without this, a break would
	// refire before the instruction it halted on has even been executed.
	ignore bool
}

func (bk breaker) String() string {
	return fmt.Sprintf("PC->%s", bk.address)
}

// check the program counter against the break condition.
func (bk *breaker) check(pc memory.Address) bool {
	if pc != bk.address {
		bk.ignore = false
		return false
	}

	if bk.ignore {
		return false
	}

	bk.ignore = true

	return true
}

// newBreakpoints is the preferred method of initialisation for breakpoints.
func newBreakpoints(dbg *Debugger) *breakpoints {
	bp := &breakpoints{dbg: dbg}
	bp.clear()
	return bp
}

// clear all breakpoints.
func (bp *breakpoints) clear() {
	bp.breaks = make([]breaker, 0, 10)
}

// drop a specific breakpoint by position in list.
func (bp *breakpoints) drop(num int) error {
	if num < 0 || len(bp.breaks)-1 < num {
		return fmt.Errorf("breakpoint #%d is not defined", num)
	}

	h := bp.breaks[:num]
	t := bp.breaks[num+1:]
	bp.breaks = make([]breaker, len(h)+len(t), cap(bp.breaks))
	copy(bp.breaks, h)
	copy(bp.breaks[len(h):], t)

	return nil
}

// check compares the current state of the emulation with every breakpoint
// condition. returns a string listing every condition that matches (separated
// by \n).
func (bp *breakpoints) check(previousResult string) string {
	checkString := strings.Builder{}
	checkString.WriteString(previousResult)
	for i := range bp.breaks {
		if bp.breaks[i].check(bp.dbg.vm.CPU.PC) {
			checkString.WriteString(fmt.Sprintf("break on %s\n", bp.breaks[i]))
		}
	}
	return checkString.String()
}

// list currently defined breakpoints.
func (bp breakpoints) list() {
	if len(bp.breaks) == 0 {
		bp.dbg.printLine(terminal.StyleFeedback, "no breakpoints")
	} else {
		bp.dbg.printLine(terminal.StyleFeedback, "breakpoints:")
		for i := range bp.breaks {
			bp.dbg.printLine(terminal.StyleFeedback, "% 2d: %s", i, bp.breaks[i])
		}
	}
}

// parse tokens and add new breakpoint(s). every token is an address for the
// program counter to break on. for example:
//
//	BREAK 0x200 0x3ba
//
// adds two breakpoints, one fires when the program counter reaches 0x200 and
// the other when it reaches 0x3ba.
func (bp *breakpoints) parseBreakpoint(tokens *commandline.Tokens) error {
	// we don't add new breakpoints to the main list straight away. we append
	// them to newBreaks first and then check that we aren't adding duplicates
	newBreaks := make([]breaker, 0, 10)

	tok, present := tokens.Get()
	for present {
		v, err := strconv.ParseUint(tok, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid address (%s)", tok)
		}
		if v >= memory.Size {
			return fmt.Errorf("address outside of addressable memory (%s)", tok)
		}

		newBreaks = append(newBreaks, breaker{address: memory.NewAddress(uint16(v))})

		tok, present = tokens.Get()
	}

	for _, nb := range newBreaks {
		if err := bp.checkBreaker(nb); err != nil {
			return err
		}
		bp.breaks = append(bp.breaks, nb)
	}

	return nil
}

func (bp *breakpoints) checkBreaker(nb breaker) error {
	for _, ob := range bp.breaks {
		if nb.address == ob.address {
			return fmt.Errorf("breakpoint already exists (%s)", ob)
		}
	}

	return nil
}
