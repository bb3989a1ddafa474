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

// Package random should be used in preference to the math/rand package when a
// random number is required inside the emulation.
//
// The generator is a simple linear congruential generator rather than
// anything from the standard library. The emulated machine only ever asks
// for single bytes and the quality demands on those bytes are very low. In
// exchange we get a generator whose entire state is one integer, which makes
// machine snapshots trivially comparable.
//
// If the same random numbers are required every single time then create the
// generator with NewRandomWithSeed(). This is useful for testing purposes.
package random
