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

// Package cpu emulates the instruction core of the CHIP-8 machine. CHIP-8
// was never silicon; it is a virtual machine specification from the 1970s
// and so, unlike a real processor, instructions have no cycle counts. One
// call to Tick() fetches, decodes and executes exactly one instruction.
//
// The bread-and-butter of the CPU type is the Tick() function. A host
// emulation calls it in a loop at whatever instruction rate it wants the
// machine to run at. The two timers count down once per tick; the
// convention on real interpreters is that they count at 60Hz, which is the
// caller's problem to arrange (see the hardware package).
//
// The CPU type contains some public fields that are worthy of mention. The
// registers are all exported and can be inspected or poked freely between
// calls to Tick(). Very useful for debuggers. The LastResult field can be
// probed for information about the last instruction executed.
//
// Decoding lives in the instructions sub-package. Execution is a single
// switch over the decoded operation; there is no second decoding step
// anywhere in the package.
package cpu
