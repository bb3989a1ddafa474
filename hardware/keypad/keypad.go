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

package keypad

import (
	"fmt"
	"strings"
)

// NumKeys on the keypad. Keys are identified by index, 0 to NumKeys-1,
// matching the hexadecimal legend on the original machine.
const NumKeys = 16

// Keypad records which of the sixteen keys are currently held. The emulation
// core only ever reads it. Whatever is translating host input is responsible
// for calling Press() and Release().
type Keypad struct {
	keys uint16
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Press marks a key as held. Key indexes outside the keypad are folded onto
// it.
func (kp *Keypad) Press(key uint8) {
	kp.keys |= 1 << (key & 0x0f)
}

// Release marks a key as no longer held.
func (kp *Keypad) Release(key uint8) {
	kp.keys &^= 1 << (key & 0x0f)
}

// IsPressed returns whether a key is currently held.
func (kp *Keypad) IsPressed(key uint8) bool {
	return kp.keys&(1<<(key&0x0f)) != 0
}

// Reset releases every key.
func (kp *Keypad) Reset() {
	kp.keys = 0
}

// HandleEvent forwards a press or release to the keypad. It implements the
// userinput.HandleInput interface.
func (kp *Keypad) HandleEvent(key uint8, down bool) error {
	if down {
		kp.Press(key)
	} else {
		kp.Release(key)
	}
	return nil
}

// String lists the held keys by their hexadecimal legend.
func (kp *Keypad) String() string {
	s := strings.Builder{}
	for k := uint8(0); k < NumKeys; k++ {
		if kp.IsPressed(k) {
			if s.Len() > 0 {
				s.WriteRune(' ')
			}
			s.WriteString(fmt.Sprintf("%X", k))
		}
	}
	if s.Len() == 0 {
		return "no keys held"
	}
	return s.String()
}
