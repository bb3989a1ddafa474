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

// Package performance contains helper functions relating to performance.
//
// Check() is a quick way of running the emulation flat out for a fixed
// duration of time. It will optionally generate profiling information.
//
// ProfileCPU() and ProfileMem() can be used on their own to profile any part
// of the program. Neither limits the amount of time the program runs for so
// they are useful for more real-world situations.
//
// CalcTickRate() calculates instructions-per-second in aggregate along with
// an accuracy value (as compared to the nominal rate of the emulated
// machine). Probably not suitable for "live" monitoring.
package performance
