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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// EntryLevel describes the level of confidence in an Entry.
type EntryLevel int

// List of valid EntryLevel values in increasing reliability.
//
// Decoded entries have been decoded as though every address in the program
// region is a valid instruction, whatever its alignment. Blessed entries have
// been reached by following the flow of the program from the entry point and
// are deemed more accurate. Executed entries have actually been seen by the
// CPU.
//
// Decoded entries are useful in the event of the CPU landing on an address
// that didn't look like an instruction at disassembly time.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
	EntryLevelExecuted
)

// Entry is a single disassembled instruction.
type Entry struct {
	// the level of reliability of the information in the Entry
	Level EntryLevel

	// the address the instruction was found at
	Address memory.Address

	// the decoded instruction
	Instruction instructions.Instruction
}

// Bytecode returns the raw opcode rendering of the entry.
func (e Entry) Bytecode() string {
	return fmt.Sprintf("%04x", e.Instruction.Value)
}

// String returns a single line representation of the entry, without any
// annotation about the entry level.
func (e Entry) String() string {
	return fmt.Sprintf("%s  %s", e.Address, e.Instruction)
}
