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

package database

import (
	"fmt"
)

// the initialisation function when creating a new entry. fields is the
// undivided remainder of the record after the leader fields. the entry type
// decides how to split it, which allows a final field to contain the field
// separator. useful for filenames
type deserialiser func(fields string) (Entry, error)

// SerialisedEntry is the Entry data represented as an array of strings.
type SerialisedEntry []string

// Entry represents the generic entry in the database.
type Entry interface {
	// ID returns the string that is used to identify the entry type in the
	// database
	ID() string

	// String should return information about the entry in a human readable
	// format. by contrast, the machine readable representation is returned
	// by the Serialise function
	String() string

	// return the Entry data as an instance of SerialisedEntry
	Serialise() (SerialisedEntry, error)

	// a cleanup is performed when the entry is deleted from the database
	CleanUp() error
}

// RegisterEntryType tells the database what entries it may expect to find in
// the database file and what to do when it encounters one.
func (db *Session) RegisterEntryType(id string, des deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return fmt.Errorf("database: trying to register a duplicate entry ID (%s)", id)
	}
	db.entryTypes[id] = des
	return nil
}
