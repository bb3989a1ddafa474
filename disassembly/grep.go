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
	"bytes"
	"io"
	"strings"
)

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepMnemonic GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string, writing
// matching lines to output. The search only considers blessed and executed
// entries.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) {
	var s, m string

	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	for e := range dsm.Entries(EntryLevelBlessed) {
		// line representation of the entry. we'll print this in case of a
		// match
		line := &bytes.Buffer{}
		dsm.WriteEntry(line, WriteAttr{}, e)

		// limit scope of the grep to the correct entry field
		switch scope {
		case GrepMnemonic:
			s = e.Instruction.Mnemonic()
		case GrepOperand:
			s = e.Instruction.Operand()
		case GrepAll:
			s = line.String()
		}

		if !caseSensitive {
			m = strings.ToUpper(s)
		} else {
			m = s
		}

		if strings.Contains(m, search) {
			output.Write(line.Bytes())
		}
	}
}
