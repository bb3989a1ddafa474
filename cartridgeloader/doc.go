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

// Package cartridgeloader is used to specify the ROM data that is to be
// attached to the emulated machine.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently, local files and data over HTTP are supported.
//
// The simplest instance of the Loader type:
//
//	cl := cartridgeloader.Loader{
//		Filename: "roms/pong.ch8",
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function notes filenames with unusual extensions in the log,
// which can help diagnose a mistyped filename.
//
// The Hash field can be set before loading to insist on a particular SHA-1
// digest for the data. This is how the regression package detects a ROM file
// that has changed on disk since the regression entry was recorded.
package cartridgeloader
