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

// Package clocks defines the rates at which the emulated machine is commonly
// run. The machine itself has no clock. One call to the CPU Tick() function
// executes one instruction and it is the caller that decides how often that
// happens.
//
// The original COSMAC VIP interpreter ran at whatever speed the host hardware
// allowed so there is no authoritative instruction rate, only a range that
// the software of the period is comfortable with. The nominal value here is
// the customary choice for new emulators:
//
// https://tobiasvl.github.io/blog/write-a-chip-8-emulator/
package clocks

const (
	// NominalTickRate is the number of CPU instructions per second that a
	// typical CHIP-8 program expects. Most programs tolerate anything from
	// around 500 to 1000 instructions per second.
	NominalTickRate = 700

	// FrameRate is the refresh rate of the original machine's video output.
	// Pacing loops batch instructions into groups of NominalTickRate over
	// FrameRate and render the display once per batch.
	FrameRate = 60
)
