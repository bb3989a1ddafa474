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

// Package database provides a very rudimentary way of storing structured
// data on disk. It is not suitable for very large pools of data, or data
// with complex relationships. For small numbers of simple entries however,
// it is perfectly adequate.
//
// Access to a database is through a Session. Sessions are started with the
// StartSession() function and must be concluded with a call to EndSession().
// The activity argument given when starting a session controls what is
// permitted during the session. Sessions opened with ActivityReading cannot
// add or delete entries and cannot commit changes to disk.
//
//	db, err := database.StartSession(dbPath, database.ActivityReading, initSession)
//	if err != nil {
//		return err
//	}
//	defer db.EndSession(false)
//
// The init function passed to StartSession() is called before any data is
// read from disk. It is the correct place to register the entry types that
// the session expects to find in the database.
//
//	func initSession(db *database.Session) error {
//		return db.RegisterEntryType("example", deserialiseExample)
//	}
//
// Entry types implement the Entry interface. The deserialise function
// registered for a type receives the serialised fields of a stored entry
// as a single string. Fields are separated by commas and it is up to the
// deserialise function to split the string into its parts. Entries that
// store free-form text (a file path for instance) should serialise that
// field last so that any commas in the value survive the round-trip.
//
// New entries are added with the Add() function, which assigns and returns
// the lowest unused key. Existing entries are retrieved individually with
// Get(), or iterated over in key order with SelectAll() or SelectKeys().
// The Delete() function removes an entry, giving the entry a chance to
// clean up any resources it owns on disk.
//
// Changes to the database are only committed when the session ends.
//
//	db.EndSession(true)
package database
