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
	"errors"
	"io"

	"github.com/jetsetilly/gopher8/debugger/script"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/cpu"
)

// to speed things up a bit we only check for events every inputCtDelay
// iterations of the input loop while the emulation is running
const inputCtDelay = 50

// inputLoop is the main loop of the debugger. it reads user input from the
// inputter, parses it, and steps the emulation forward as required. the
// function does not return until the debugging session is to end or, in the
// case of a script inputter, the script has finished.
func (dbg *Debugger) inputLoop(inputter terminal.Input) error {
	for dbg.running {
		var err error
		var checkTerm bool

		dbg.inputCt++
		if dbg.inputCt%inputCtDelay == 0 {
			dbg.inputCt = 0

			// check for events
			checkTerm, err = dbg.checkEvents(inputter)
			if err != nil {
				dbg.printLine(terminal.StyleError, "%s", err)
			}
		}

		// if the debugger is no longer running after checking interrupts and
		// events then break for loop
		if !dbg.running {
			break // for loop
		}

		// check for breakpoints in the context of the next instruction
		dbg.breakMessages = dbg.breakpoints.check(dbg.breakMessages)

		// check for halt conditions
		haltEmulation := dbg.breakMessages != "" ||
			dbg.lastStepError || dbg.haltImmediately

		// expand halt to include the end of a STEP sequence
		haltEmulation = haltEmulation || (!dbg.runUntilHalt && dbg.stepsRemaining <= 0)

		// reset last step error
		dbg.lastStepError = false

		// if the emulation is to be halted or if we need to check the
		// terminal for pending input
		if haltEmulation || checkTerm {
			if haltEmulation {
				// print and reset accumulated break messages
				if dbg.breakMessages != "" {
					dbg.printLine(terminal.StyleFeedback, "%s", dbg.breakMessages)
					dbg.breakMessages = ""
				}

				// input has halted. run the onHalt commands
				if len(dbg.commandOnHalt) > 0 {
					if _, err := dbg.processTokensList(dbg.commandOnHalt); err != nil {
						dbg.printLine(terminal.StyleError, "%s", err)
					}
				}

				// tell the gui the emulation is waiting for the user
				if err := dbg.scr.ReqFeature(gui.ReqState, gui.StatePaused); err != nil {
					return err
				}
			}

			// reset run and step state. the flags will be set again by the
			// next RUN or STEP command as required
			dbg.runUntilHalt = false
			dbg.haltImmediately = false
			dbg.stepsRemaining = 0
			dbg.continueEmulation = false

			// get user input
			inputLen, err := inputter.TermRead(dbg.input, dbg.buildPrompt(), dbg.events)

			// errors returned by TermRead() are rich. the following block
			// interprets the error carefully and proceeds appropriately
			if err != nil {
				if errors.Is(err, io.EOF) {
					// treat EOF errors the same as UserAbort
					err = terminal.UserAbort
				}

				if errors.Is(err, terminal.UserInterrupt) {
					// user interrupts are triggered by the user (in a
					// terminal environment, usually by pressing ctrl-c)
					dbg.handleInterrupt(inputter)
				} else if errors.Is(err, terminal.UserAbort) {
					// like UserInterrupt but with no confirmation stage
					dbg.running = false
				} else if errors.Is(err, script.ScriptEnd) {
					// a script inputter ends with a ScriptEnd error. say
					// goodbye to the script with a feedback style rather
					// than an error style
					dbg.printLine(terminal.StyleFeedback, "%s", err)
					return nil
				} else {
					// all other errors are passed upwards to the calling
					// function
					return err
				}

				continue // for loop
			}

			// sometimes TermRead can return zero bytes read. filter that out
			// before trying to parse anything
			if inputLen > 0 {
				dbg.continueEmulation, err = dbg.parseInput(string(dbg.input[:inputLen-1]),
					inputter.IsInteractive(), false)
				if err != nil {
					dbg.printLine(terminal.StyleError, "%s", err)
					dbg.continueEmulation = false
				}
			}

			// if we stopped only to check the terminal then continue as
			// before the pause
			if checkTerm {
				dbg.continueEmulation = true
				dbg.runUntilHalt = true
			}

			// tell the gui if the emulation is running freely again. not
			// after a checkTerm pause, the gui was never told about those
			if !checkTerm && dbg.runUntilHalt {
				if err := dbg.scr.ReqFeature(gui.ReqState, gui.StateRunning); err != nil {
					return err
				}
			}
		}

		if dbg.continueEmulation && dbg.running {
			if err := dbg.step(); err != nil {
				// errors from the emulated machine are informational. print
				// the error and halt rather than ending the session
				dbg.printLine(terminal.StyleError, "%s", err)
				dbg.lastStepError = true
			}
		}
	}

	return nil
}

// step the emulation forward one instruction. the result of the instruction
// is reflected in the disassembly and the gui.
func (dbg *Debugger) step() error {
	stepErr := dbg.vm.Step()

	// update the disassembly whether or not there was an error. the CPU
	// result is valid either way. a machine without a cartridge is dormant
	// and will not have executed anything
	if dbg.vm.CPU.State != cpu.New {
		dbg.Disasm.ExecutedEntry(dbg.vm.CPU.LastResult)
	}

	// count down a STEP sequence
	if dbg.stepsRemaining > 0 {
		dbg.stepsRemaining--
	}

	// propagate display changes to the gui
	if dbg.vm.Dsp.Updated {
		dbg.vm.Dsp.Updated = false
		if err := dbg.scr.Render(dbg.vm.Dsp); err != nil {
			return err
		}
	}

	// sound the beeper according to the state of the sound timer
	if err := dbg.scr.Buzz(dbg.vm.CPU.SoundTimer > 0); err != nil {
		return err
	}

	if stepErr != nil {
		return stepErr
	}

	// run the onStep commands but not when the emulation is running freely.
	// at several hundred instructions per second the output would be
	// overwhelming
	if !dbg.runUntilHalt && len(dbg.commandOnStep) > 0 {
		if _, err := dbg.processTokensList(dbg.commandOnStep); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// interrupt errors that are sent back to the debugger need some special care
// depending on the current state.
//
//   - if script recording is active then the recording is ended
//   - if the emulation is running freely then the emulation is halted
//   - for non-interactive input the running flag is unset immediately
//   - otherwise, the user is prompted for confirmation that the debugger
//     should quit
func (dbg *Debugger) handleInterrupt(inputter terminal.Input) {
	// if a script is being recorded then the user interrupt is treated as a
	// request to end the recording
	if dbg.scriptScribe.IsActive() {
		dbg.printLine(terminal.StyleFeedback, "ending script recording")
		if err := dbg.scriptScribe.EndSession(); err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
		return
	}

	// if the emulation is currently running then stop the emulation rather
	// than the debugger
	if dbg.runUntilHalt {
		dbg.runUntilHalt = false
		dbg.continueEmulation = false
		return
	}

	if !inputter.IsInteractive() {
		dbg.running = false
		return
	}

	// terminal is interactive so ask for quit confirmation
	confirm := make([]byte, 1)
	_, err := inputter.TermRead(confirm,
		terminal.Prompt{
			Content: "really quit (y/n) ",
			Type:    terminal.PromptTypeConfirm},
		dbg.events)

	if err != nil {
		// another UserInterrupt has occurred. we treat a second
		// UserInterrupt as though 'y' was pressed
		if errors.Is(err, terminal.UserInterrupt) {
			confirm[0] = 'y'
		} else {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	if confirm[0] == 'y' || confirm[0] == 'Y' {
		dbg.running = false
	}
}
