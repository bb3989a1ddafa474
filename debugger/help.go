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

// cmdHelp is not part of the command template. the HELP command is added
// to the parsed commands by the AddHelp() function.
const cmdHelp = "HELP"

// help contains the help text for the debugger's top level commands.
var helps = map[string]string{
	cmdHelp:  "Lists commands and provides help for individual debugger commands",
	cmdReset: "Reset the machine to its initial state",
	cmdQuit:  "Exits the emulator",

	cmdRun:    "Run emulator until next halt state",
	cmdStep:   "Step forward one tick. Optional argument steps by the specified number of ticks",
	cmdHalt:   "Halt emulation",
	cmdScript: "Run commands from specified file or record commands to a file",

	cmdInsert:    "Insert cartridge into emulation (from file)",
	cmdCartridge: "Display information about the current cartridge",
	cmdDisasm:    "Print the full cartridge disassembly",
	cmdGrep:      "Simple string search (case insensitive) of the disassembly",
	cmdOnHalt:    "Commands to run whenever emulation is halted (separate commands with commas)",
	cmdOnStep:    "Commands to run whenever emulation steps forward one tick (separate commands with commas)",
	cmdLast:      "Prints the result of the last execution tick",
	cmdCPU:       "Display the current state of the CPU",
	cmdMemory:    "Display a hexdump of memory. Defaults to the whole address space",
	cmdPeek:      "Inspect individual memory addresses",
	cmdPoke:      "Modify individual memory addresses",
	cmdDisplay:   "Display the emulated screen in the terminal",
	cmdKeypad:    "Display the current state of the keypad",
	cmdGrid:      "Capture or reset the hash digest of the display grid",
	cmdGraph:     "Write the machine's object graph to a dot file",

	// halt conditions
	cmdBreak: "Cause emulator to halt when the program counter matches the address",
	cmdList:  "List current breakpoints",
	cmdDrop:  "Drop a specific breakpoint, using the number reported by LIST",
	cmdClear: "Clear all breakpoints",

	// meta
	cmdLog:      "Print log to terminal",
	cmdMemUsage: "Display the memory usage of the emulator",
	cmdVersion:  "Print version number of emulator",
}
