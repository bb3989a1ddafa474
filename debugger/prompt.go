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

import (
	"strings"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/hardware/cpu"
)

// buildPrompt reflects the next instruction to be executed. The program
// counter always points at the instruction the next STEP will run so the
// prompt address and the prompt disassembly never disagree.
func (dbg *Debugger) buildPrompt() terminal.Prompt {
	prompt := strings.Builder{}
	prompt.WriteString(dbg.vm.CPU.PC.String())

	// add disassembly of the next instruction if the disassembly covers the
	// program counter. a jump into the font area, for example, will leave us
	// with nothing to show
	if e, ok := dbg.Disasm.GetEntryByAddress(dbg.vm.CPU.PC); ok {
		prompt.WriteString(" ")
		operand := e.Instruction.Operand()
		if operand == "" {
			prompt.WriteString(e.Instruction.Mnemonic())
		} else {
			prompt.WriteString(e.Instruction.Mnemonic())
			prompt.WriteString(" ")
			prompt.WriteString(operand)
		}
	} else {
		prompt.WriteString(" no disasm")
	}

	// indicate that the machine is blocked on keypad input
	if dbg.vm.CPU.State == cpu.WaitingKey {
		prompt.WriteString(" !")
	}

	return terminal.Prompt{
		Type:      terminal.PromptTypeCPUStep,
		Content:   prompt.String(),
		Recording: dbg.scriptScribe.IsActive(),
	}
}
