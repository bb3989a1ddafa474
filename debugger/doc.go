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

// Package debugger implements a reasonably comprehensive debugging tool.
// Features include:
//
//   - cartridge disassembly
//   - memory peek and poke
//   - instruction stepping
//   - breakpoints
//   - basic scripting
//   - display digests for fingerprinting the state of the screen
//
// Some of these features come courtesy of other packages, described
// elsewhere, but all are nicely exposed via the debugger package.
//
// Initialisation of the debugger is done with the NewDebugger() function
//
//	dbg, _ := debugger.NewDebugger(gui, term)
//
// The gui and term arguments must be instances of types that satisfy the
// respective interfaces. This gives the debugger great flexibility and
// should allow easy porting to new platforms.
//
// Interaction with the debugger is primarily through a terminal. The
// Terminal interface is defined in the terminal package. The colorterm and
// plainterm sub-packages provide good reference implementations.
//
// The GUI visualises the display of the emulated machine and forwards user
// input (the keypad mapping in particular) to the debugger through the
// userinput package.
//
// Once initialised, the debugger is started with the Start() function.
//
//	dbg.Start(initScript, cartload)
//
// The initScript is a script previously created either by the script.Scribe
// type or by hand. It is run, silently, before control is handed to the
// user.
package debugger
