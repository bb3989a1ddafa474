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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
	"github.com/jetsetilly/gopher8/userinput"
)

func TestKeyboardMapping(t *testing.T) {
	mapping := []struct {
		host string
		key  uint8
	}{
		{"1", 0x1}, {"2", 0x2}, {"3", 0x3}, {"4", 0xc},
		{"Q", 0x4}, {"W", 0x5}, {"E", 0x6}, {"R", 0xd},
		{"A", 0x7}, {"S", 0x8}, {"D", 0x9}, {"F", 0xe},
		{"Z", 0xa}, {"X", 0x0}, {"C", 0xb}, {"V", 0xf},
	}

	kp := keypad.NewKeypad()

	for _, m := range mapping {
		quit, err := userinput.HandleUserInput(userinput.EventKeyboard{Key: m.host, Down: true}, kp)
		test.ExpectedSuccess(t, err)
		test.ExpectEquality(t, quit, false)
		test.ExpectEquality(t, kp.IsPressed(m.key), true)

		quit, err = userinput.HandleUserInput(userinput.EventKeyboard{Key: m.host, Down: false}, kp)
		test.ExpectedSuccess(t, err)
		test.ExpectEquality(t, quit, false)
		test.ExpectEquality(t, kp.IsPressed(m.key), false)
	}
}

func TestKeyboardModifiers(t *testing.T) {
	kp := keypad.NewKeypad()

	// a modified keypress is not forwarded to the keypad
	_, err := userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Mod: userinput.KeyModShift, Down: true}, kp)
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, kp.IsPressed(0x5), false)

	// a release is forwarded even when a modifier is held
	_, err = userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Down: true}, kp)
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, kp.IsPressed(0x5), true)

	_, err = userinput.HandleUserInput(userinput.EventKeyboard{Key: "W", Mod: userinput.KeyModShift, Down: false}, kp)
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, kp.IsPressed(0x5), false)
}

func TestUnmappedKeys(t *testing.T) {
	kp := keypad.NewKeypad()

	_, err := userinput.HandleUserInput(userinput.EventKeyboard{Key: "F1", Down: true}, kp)
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, kp.String(), "no keys held")
}

func TestQuitEvent(t *testing.T) {
	kp := keypad.NewKeypad()

	quit, err := userinput.HandleUserInput(userinput.EventQuit{}, kp)
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, quit, true)
}
