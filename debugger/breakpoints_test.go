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

package debugger_test

func (trm *mockTerm) testBreakpoints() {
	// debugger starts off with no breakpoints
	trm.sndInput("LIST")
	trm.cmpOutput("no breakpoints")

	// no cartridge is attached so the program counter is at the entry point.
	// a break on the entry point fires straight away
	trm.sndInput("BREAK 0x200")
	trm.cmpOutput("break on PC->0x0200")

	// list breaks and check last line of output
	trm.sndInput("LIST")
	trm.cmpOutput(" 0: PC->0x0200")

	// try to add the same break. check error feedback
	trm.sndInput("BREAK 0x200")
	trm.cmpOutput("breakpoint already exists (PC->0x0200)")

	// breaks outside of addressable memory are rejected
	trm.sndInput("BREAK 0x1000")
	trm.cmpOutput("address outside of addressable memory (0x1000)")

	// several breakpoints can be added in one command. the program counter
	// has not moved so neither break fires
	trm.sndInput("BREAK 0x202 0x204")
	trm.cmpOutput("")

	// we've already added a break so the new breaks are numbered from "1"
	trm.sndInput("LIST")
	trm.cmpOutput(" 2: PC->0x0204")

	trm.sndInput("DROP 1")
	trm.cmpOutput("breakpoint #1 dropped")

	trm.sndInput("LIST")
	trm.cmpOutput(" 1: PC->0x0204")

	trm.sndInput("CLEAR")
	trm.cmpOutput("breakpoints cleared")

	trm.sndInput("LIST")
	trm.cmpOutput("no breakpoints")
}
