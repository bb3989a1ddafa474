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

// Package regression facilitates the regression testing of emulation code.
// By adding test results to a database the tests can be rerun automatically
// and checked for consistency.
//
// The digest test runs a ROM for a set number of ticks, with a set random
// number seed, and compares a hash of the video or audio output against the
// hash stored in the test database. Because the random number generator is
// reseeded for every run, even ROMs that rely on random numbers produce the
// same output every time.
//
// Tests that fail are remembered. The special key FAILS, given to
// RegressRunTests(), selects whatever failed on the previous run, which is
// convenient when working on a fix.
package regression
