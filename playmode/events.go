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

package playmode

import (
	"fmt"

	"github.com/jetsetilly/gopher8/userinput"
)

// eventCheck services the interrupt signal and any buffered user input. The
// first return value is false when the emulation should stop.
func (pl *playmode) eventCheck() (bool, error) {
	for {
		select {
		case <-pl.intChan:
			return false, nil

		case ev := <-pl.userinput:
			quit, err := pl.userInputHandler(ev)
			if err != nil {
				return false, err
			}
			if quit {
				return false, nil
			}

		default:
			return true, nil
		}
	}
}

// userInputHandler reacts to an event from the GUI. Returns true if the event
// means the emulation should end.
func (pl *playmode) userInputHandler(ev userinput.Event) (bool, error) {
	// keys with a meaning to the emulator rather than the emulated machine
	if kev, ok := ev.(userinput.EventKeyboard); ok && kev.Down && kev.Mod == userinput.KeyModNone {
		switch kev.Key {
		case "Escape":
			return true, nil
		case "Space":
			return false, pl.setPause(!pl.paused)
		}
	}

	quit, err := userinput.HandleUserInput(ev, pl.vm.Kpd)
	if err != nil {
		return false, fmt.Errorf("playmode: %w", err)
	}

	return quit, nil
}
