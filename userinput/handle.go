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

package userinput

// translation of the host keyboard to the CHIP-8 keypad. the left side of a
// modern keyboard maps onto the 4x4 grid of the original machine:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
func keypadKey(key string) (uint8, bool) {
	switch key {
	case "1":
		return 0x01, true
	case "2":
		return 0x02, true
	case "3":
		return 0x03, true
	case "4":
		return 0x0c, true
	case "Q":
		return 0x04, true
	case "W":
		return 0x05, true
	case "E":
		return 0x06, true
	case "R":
		return 0x0d, true
	case "A":
		return 0x07, true
	case "S":
		return 0x08, true
	case "D":
		return 0x09, true
	case "F":
		return 0x0e, true
	case "Z":
		return 0x0a, true
	case "X":
		return 0x00, true
	case "C":
		return 0x0b, true
	case "V":
		return 0x0f, true
	}

	return 0, false
}

// keyboard handles keypresses sent from a GUI. For reasons of consistency,
// this handler is used by the debugger too.
//
// A press is ignored when a modifier is held. A release never is.
func keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Down && ev.Mod != KeyModNone {
		return nil
	}

	if key, ok := keypadKey(ev.Key); ok {
		return handle.HandleEvent(key, ev.Down)
	}

	return nil
}

// HandleUserInput deciphers the Event and forwards the input to the CHIP-8
// keypad. Returns true if the event is a Quit event and false otherwise.
func HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	var err error
	switch ev := ev.(type) {
	case EventQuit:
		return true, nil
	case EventKeyboard:
		err = keyboard(ev, handle)
	default:
	}

	return false, err
}
