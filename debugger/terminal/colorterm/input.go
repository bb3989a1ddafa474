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

//go:build !windows
// +build !windows

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm/easyterm/ansi"
)

// promptStyle returns the terminal style appropriate for the prompt type.
func promptStyle(prompt terminal.Prompt) terminal.Style {
	if prompt.Type == terminal.PromptTypeConfirm {
		return terminal.StylePromptConfirm
	}
	return terminal.StylePromptCPUStep
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(buffer []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	// the terminal is put into raw mode for the duration of the read so that
	// individual keypresses, including control characters and escape
	// sequences, are seen as they happen
	err := ct.RawMode()
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = ct.CanonicalMode()
	}()

	inputLen := 0
	cursorPos := 0

	// liveHistory is a copy of the input as it was before the user started
	// scrolling through the command history
	historyIdx := len(ct.commandHistory)
	liveHistory := make([]byte, len(buffer))
	liveHistoryLen := 0

	// width of the prompt decoration. used to stop input extending past the
	// width of the terminal
	promptLen := len(prompt.String())

	for {
		// redraw the prompt and the current input, placing the cursor in the
		// correct position
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(ansi.ClearLine)
		ct.TermPrintLine(promptStyle(prompt), prompt.String())
		ct.EasyTerm.TermPrint(string(buffer[:inputLen]))
		ct.EasyTerm.TermPrint(ansi.CursorMove(cursorPos - inputLen))

		select {
		case ev := <-events.UserInput:
			err := events.UserInputHandler(ev)
			if err != nil {
				return 0, err
			}

		case <-events.IntEvents:
			return 0, terminal.UserInterrupt

		case f := <-events.RawEvents:
			f()

		case f := <-events.RawEventsReturn:
			f()
			return 0, nil

		case readRune := <-ct.reader:
			if readRune.err != nil {
				return 0, readRune.err
			}

			switch readRune.r {
			case easyterm.KeyInterrupt:
				return 0, terminal.UserInterrupt

			case easyterm.KeySuspend:
				// the terminal is returned to canonical mode for the
				// duration of the suspension
				_ = ct.CanonicalMode()
				easyterm.SuspendProcess()
				_ = ct.RawMode()

			case easyterm.KeyTab:
				if ct.tabCompletion != nil {
					s := ct.tabCompletion.Complete(string(buffer[:inputLen]))

					// the completed input may be too long for the buffer
					if len(s) <= len(buffer) {
						copy(buffer, s)
						inputLen = len(s)
						cursorPos = inputLen
					}
				}

			case easyterm.KeyCarriageReturn:
				// input is complete. send it to the debugger

				ct.EasyTerm.TermPrint("\r\n")

				if ct.tabCompletion != nil {
					ct.tabCompletion.Reset()
				}

				// add the input to the command history unless it is empty or
				// repeats the most recent entry
				if inputLen > 0 {
					n := len(ct.commandHistory)
					if n == 0 || string(ct.commandHistory[n-1].input) != string(buffer[:inputLen]) {
						h := make([]byte, inputLen)
						copy(h, buffer[:inputLen])
						ct.commandHistory = append(ct.commandHistory, command{input: h})
					}
				}

				// the return key counts as an inputted character
				return inputLen + 1, nil

			case easyterm.KeyEsc:
				readRune = <-ct.reader
				if readRune.err != nil {
					return 0, readRune.err
				}

				switch readRune.r {
				case easyterm.EscCursor:
					readRune = <-ct.reader
					if readRune.err != nil {
						return 0, readRune.err
					}

					switch readRune.r {
					case easyterm.CursorUp:
						// move backwards through the command history
						if historyIdx > 0 {
							// store the live input when leaving it for the
							// first time
							if historyIdx == len(ct.commandHistory) {
								copy(liveHistory, buffer[:inputLen])
								liveHistoryLen = inputLen
							}
							historyIdx--
							copy(buffer, ct.commandHistory[historyIdx].input)
							inputLen = len(ct.commandHistory[historyIdx].input)
							cursorPos = inputLen
						}

					case easyterm.CursorDown:
						// move forwards through the command history. the
						// most recent entry is the live input as it was
						// before the history was entered
						if historyIdx < len(ct.commandHistory) {
							historyIdx++
							if historyIdx == len(ct.commandHistory) {
								copy(buffer, liveHistory[:liveHistoryLen])
								inputLen = liveHistoryLen
							} else {
								copy(buffer, ct.commandHistory[historyIdx].input)
								inputLen = len(ct.commandHistory[historyIdx].input)
							}
							cursorPos = inputLen
						}

					case easyterm.CursorForward:
						if cursorPos < inputLen {
							cursorPos++
						}

					case easyterm.CursorBackward:
						if cursorPos > 0 {
							cursorPos--
						}

					case easyterm.EscDelete:
						if cursorPos < inputLen {
							copy(buffer[cursorPos:], buffer[cursorPos+1:inputLen])
							inputLen--
							historyIdx = len(ct.commandHistory)
						}

						// eat the tilde character that finishes the sequence
						<-ct.reader

					case easyterm.EscHome:
						cursorPos = 0

					case easyterm.EscEnd:
						cursorPos = inputLen
					}
				}

			case easyterm.KeyBackspace, 127:
				// some terminal emulators send DEL (127) for the backspace
				// key
				if cursorPos > 0 {
					copy(buffer[cursorPos-1:], buffer[cursorPos:inputLen])
					cursorPos--
					inputLen--
					historyIdx = len(ct.commandHistory)
				}

			default:
				if unicode.IsPrint(readRune.r) {
					l := utf8.RuneLen(readRune.r)

					// input is limited by the size of the buffer and by the
					// width of the terminal. the redraw method cannot cope
					// with input that wraps onto a second line
					if inputLen+l > len(buffer) {
						continue
					}
					if cols := ct.Geometry().Cols; cols > 0 && promptLen+inputLen+l >= cols {
						continue
					}

					// insert the rune at the cursor position
					copy(buffer[cursorPos+l:], buffer[cursorPos:inputLen])
					utf8.EncodeRune(buffer[cursorPos:], readRune.r)
					inputLen += l
					cursorPos += l
					historyIdx = len(ct.commandHistory)
				}
			}
		}
	}
}

// TermReadCheck implements the terminal.Input interface.
func (ct *ColorTerminal) TermReadCheck() bool {
	return len(ct.reader) > 0
}
