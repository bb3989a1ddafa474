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

package debugger

// debugger keywords
const (
	cmdReset = "RESET"
	cmdQuit  = "QUIT"

	cmdRun    = "RUN"
	cmdStep   = "STEP"
	cmdHalt   = "HALT"
	cmdScript = "SCRIPT"

	cmdInsert    = "INSERT"
	cmdCartridge = "CARTRIDGE"
	cmdDisasm    = "DISASM"
	cmdGrep      = "GREP"
	cmdOnHalt    = "ONHALT"
	cmdOnStep    = "ONSTEP"
	cmdLast      = "LAST"
	cmdCPU       = "CPU"
	cmdMemory    = "MEMORY"
	cmdPeek      = "PEEK"
	cmdPoke      = "POKE"
	cmdDisplay   = "DISPLAY"
	cmdKeypad    = "KEYPAD"
	cmdGrid      = "GRID"
	cmdGraph     = "GRAPH"

	// halt conditions
	cmdBreak = "BREAK"
	cmdList  = "LIST"
	cmdDrop  = "DROP"
	cmdClear = "CLEAR"

	// meta
	cmdLog      = "LOG"
	cmdMemUsage = "MEMUSAGE"
	cmdVersion  = "VERSION"
)

var commandTemplate = []string{
	cmdReset,
	cmdQuit,

	cmdRun,
	cmdStep + " (%<ticks>N)",
	cmdHalt,
	cmdScript + " [RECORD %<new file>F|END|%<file>F]",

	cmdInsert + " %<cartridge>F",
	cmdCartridge + " (PATH|NAME|HASH)",
	cmdDisasm + " (BYTECODE|DECODED)",
	cmdGrep + " (MNEMONIC|OPERAND) %<search>S",
	cmdOnHalt + " (OFF|ON|%<command>S {%<commands>S})",
	cmdOnStep + " (OFF|ON|%<command>S {%<commands>S})",
	cmdLast + " (BYTECODE)",
	cmdCPU,
	cmdMemory + " (%<address>N (%<length>N))",
	cmdPeek + " [%<address>N] {%<addresses>N}",
	cmdPoke + " %<address>N [%<value>N] {%<values>N}",
	cmdDisplay,
	cmdKeypad,
	cmdGrid + " [DIGEST|RESET]",
	cmdGraph + " (%<dot file>F)",

	// halt conditions
	cmdBreak + " [%<address>N] {%<addresses>N}",
	cmdList,
	cmdDrop + " %<number in list>N",
	cmdClear,

	// meta
	cmdLog + " (LAST|RECENT|CLEAR)",
	cmdMemUsage,
	cmdVersion + " (REVISION)",
}

// list of commands that should not be executed when recording/playing scripts.
var scriptUnsafeTemplate = []string{
	cmdScript + " [RECORD %S]",
	cmdRun,
}
