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

package keypad_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/test"
)

func TestKeypad(t *testing.T) {
	kp := keypad.NewKeypad()

	for k := uint8(0); k < keypad.NumKeys; k++ {
		test.ExpectEquality(t, kp.IsPressed(k), false)
	}

	kp.Press(0x0)
	kp.Press(0xf)
	test.ExpectEquality(t, kp.IsPressed(0x0), true)
	test.ExpectEquality(t, kp.IsPressed(0xf), true)
	test.ExpectEquality(t, kp.IsPressed(0x7), false)

	// keys are held until released
	kp.Release(0x0)
	test.ExpectEquality(t, kp.IsPressed(0x0), false)
	test.ExpectEquality(t, kp.IsPressed(0xf), true)

	// releasing a key that is not held does nothing
	kp.Release(0x3)
	test.ExpectEquality(t, kp.IsPressed(0xf), true)

	kp.Reset()
	test.ExpectEquality(t, kp.IsPressed(0xf), false)
}

func TestKeypadString(t *testing.T) {
	kp := keypad.NewKeypad()
	test.ExpectEquality(t, kp.String(), "no keys held")

	kp.Press(0x1)
	kp.Press(0xa)
	test.ExpectEquality(t, kp.String(), "1 A")
}
