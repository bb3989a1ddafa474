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

// Package memory implements the CHIP-8 memory model. Compared to most
// machines the model is very simple: a single flat area of 4096 bytes,
// addressable with 12 bits and shared by program, data and font sprites.
//
//	0x000 +---------------------+
//	      |  font table         |
//	      |                     |
//	      |  (reserved area,    |
//	      |   once occupied by  |
//	      |   the interpreter   |
//	      |   itself)           |
//	      |                     |
//	0x200 +---------------------+
//	      |  program            |
//	      |                     |
//	      |          .          |
//	      |          .          |
//	      |          .          |
//	      |                     |
//	0xfff +---------------------+
//
// The Address type expresses the 12-bit limit in a way the compiler can help
// with. Addresses are created with NewAddress(), which discards the out of
// range bits of the raw value, and advanced with AddAssign(), which refuses
// to leave the addressable space.
//
// Bulk access is through WriteRange() and ReadRange(). The important
// distinction: WriteRange() copies the caller's bytes into memory and
// ReadRange() fills the caller's slice from memory.
package memory
