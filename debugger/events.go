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

	"github.com/jetsetilly/gopher8/debugger/terminal"
)

// checkEvents makes sure the event channels are being serviced while the
// emulation is running. when the emulation is halted the terminal services
// the channels itself, as part of TermRead().
//
// the returned boolean indicates whether the terminal has input waiting to
// be read.
func (dbg *Debugger) checkEvents(inputter terminal.Input) (bool, error) {
	err := dbg.readEventsHandler()
	if err != nil {
		if errors.Is(err, terminal.UserInterrupt) {
			dbg.handleInterrupt(inputter)
			err = nil
		}
	}

	return inputter != nil && inputter.TermReadCheck(), err
}

// readEventsHandler runs down the event channels, handling everything that
// is pending. it does not block.
func (dbg *Debugger) readEventsHandler() error {
	for {
		select {
		case <-dbg.events.IntEvents:
			return terminal.UserInterrupt
		case ev := <-dbg.events.UserInput:
			if err := dbg.events.UserInputHandler(ev); err != nil {
				return err
			}
		case f := <-dbg.events.RawEvents:
			f()
		case f := <-dbg.events.RawEventsReturn:
			f()
			return nil
		default:
			return nil
		}
	}
}
