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

// Package prefs facilitates the storage of preference values on disk.
//
// Preferences are typed. The Bool, String, Int and Float types cover most
// needs and can be read and written concurrently without further locking.
// The Generic type is for values that cannot be represented by a single live
// value.
//
// Preferences are grouped with the Disk type. Each preference is added to
// the group with a unique key and the group is written to, and read from,
// the prefs file named when the group was created. Several groups can share
// one prefs file. Keys not claimed by a group are passed over and survive a
// Save() from that group.
//
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("playmode.tickrate", &tickrate)
//	dsk.Load(false)
//
// Values given on the command line with the -prefs flag take precedence over
// values stored on disk. The command line is pushed onto a stack with
// PushCommandLineStack() and consulted whenever a preference is added to a
// Disk group.
package prefs
