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

package terminal

// Style is used to identify the category of text being sent to the
// Terminal.TermPrintLine() function. The terminal implementation can interpret
// the style any way it sees fit, including ignoring it entirely.
type Style int

// List of terminal styles.
const (
	// input from the user echoed back in its normalised form
	StyleNormalisedInput Style = iota

	// the prompt asking for the next instruction to the debugger
	StylePromptCPUStep

	// the prompt asking for a response to a yes/no question
	StylePromptConfirm

	// text from the help system
	StyleHelp

	// information in response to a command
	StyleFeedback

	// information from the emulation sent when the terminal is not
	// interactive
	StyleFeedbackNonInteractive

	// disassembly of the instruction to be executed next
	StyleCPUStep

	// detailed information about the state of the machine
	StyleInstrument

	// error messages. the emulation or the debugger can be the source
	StyleError
)

// IsPrompt returns true if the style is one of the prompt styles.
func (sty Style) IsPrompt() bool {
	return sty == StylePromptCPUStep || sty == StylePromptConfirm
}

// IncludeInScriptOutput returns true if text in this style should be committed
// to any script that is being recorded.
func (sty Style) IncludeInScriptOutput() bool {
	switch sty {
	case StyleNormalisedInput, StylePromptCPUStep, StylePromptConfirm:
		return false
	}

	return true
}
