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

// Package hardware assembles the sub-systems of the emulated machine into a
// whole. The Chip8 type is the root of the emulation and the only type most
// users of this package need to think about.
//
// The pace of the emulation is not decided here. Run() executes instructions
// as quickly as the host allows and it is for the caller, the playmode
// package for instance, to slow the machine down to the speed of a real
// interpreter. The machine's timers count down once per instruction so the
// chosen pace is also the timer pace.
package hardware
