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

// Package playmode is the glue between a GUI and the emulated machine for
// normal play of a CHIP-8 program.
//
// The machine has no clock of its own so playmode supplies the cadence.
// Instructions are grouped into batches of tickRate over clocks.FrameRate.
// At the end of each batch the display is rendered (if it has changed), the
// loop stalls on a frame limiter and buffered user input is forwarded to the
// emulated keypad.
//
// Keys with a meaning to the emulator rather than the emulated machine: the
// escape key ends the session, as does closing the window; the space bar
// toggles a pause.
//
// The beeper of the host GUI follows the sound timer. The same signal can be
// written to a WAV file by supplying a filename to Play().
package playmode
