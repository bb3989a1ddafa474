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

// HandleInput conceptualises keypad input being sent to the emulated machine.
type HandleInput interface {
	// HandleEvent forwards a key press or release to the emulated keypad. Key
	// is an index into the keypad, 0 to 15, matching the hexadecimal legend
	// on the original machine.
	HandleEvent(key uint8, down bool) error
}
