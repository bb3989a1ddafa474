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

// Package digest produces cryptographic hashes of the emulated machine's
// output. A hash can be compared with the output of subsequent emulation
// runs. If a new hash differs from a previously recorded value then something
// has changed. The regression package uses this as the basis for its tests.
//
// The hashes are chained. Each capture folds the previous digest value in
// with the new output, so a final hash fingerprints the entire history of
// captures and not just the most recent one.
package digest

// Digest implementations return a cryptographic hash of everything they have
// seen since the last reset. How output reaches the implementation differs
// between them.
type Digest interface {
	Hash() string
	ResetDigest()
}
