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

// Event represents the actions that can be performed by the user of the
// emulator at the host level.
type Event interface{}

// EventQuit is sent when the user closes the GUI window or otherwise asks for
// the emulation to end.
type EventQuit struct{}

// EventKeyboard is the data associated with a key press or release on the
// host keyboard.
//
// The Key field is the name of the key as reported by the GUI library. The
// names used during development are those reported by SDL.
type EventKeyboard struct {
	Key  string
	Mod  KeyMod
	Down bool
}

// KeyMod identifies the modifier key held at the time of a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)
