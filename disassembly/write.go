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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// include the raw opcode bytes with every line
	ByteCode bool

	// include entries that were not reached by the flow analysis. alignment
	// is not enforced by the machine so this includes the overlapping
	// entries at odd addresses
	Decoded bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	level := EntryLevelBlessed
	if attr.Decoded {
		level = EntryLevelDecoded
	}

	for e := range dsm.Entries(level) {
		dsm.WriteEntry(output, attr, e)
	}
}

// WriteEntry writes a single disassembly entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) {
	if e == nil {
		return
	}

	output.Write([]byte(e.Address.String()))
	output.Write([]byte("  "))

	if attr.ByteCode {
		output.Write([]byte(e.Bytecode()))
		output.Write([]byte("  "))
	}

	operand := e.Instruction.Operand()
	if operand == "" {
		output.Write([]byte(e.Instruction.Mnemonic()))
	} else {
		output.Write([]byte(fmt.Sprintf("%-4s %s", e.Instruction.Mnemonic(), operand)))
	}

	output.Write([]byte("\n"))
}
