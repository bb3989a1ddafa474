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

// Package sdlplay implements the gui.GUI interface with SDL. It is suitable
// for playing and for debugging sessions where the debugging itself happens
// at the terminal.
//
// SDL requires that window handling is done in the main thread. The Service()
// function must be called repeatedly from that thread; everything else in the
// package hands its work over to the servicing loop and waits for the result.
package sdlplay
