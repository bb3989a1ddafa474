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
	"io"
	"sort"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

const fieldSep = ","
const entrySep = "\n"

const (
	leaderFieldKey int = iota
	leaderFieldID
	numLeaderFields
)

func recordHeader(key int, id string) string {
	return fmt.Sprintf("%03d%s%s", key, fieldSep, id)
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := output.Write([]byte("database is empty\n"))
		return err
	}

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		if _, err := output.Write([]byte(fmt.Sprintf("%03d %s\n", key, ent.String()))); err != nil {
			return err
		}
	}

	_, err := output.Write([]byte(fmt.Sprintf("Total: %d\n", db.NumEntries())))
	return err
}

// Get returns the entry with the specified key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, fmt.Errorf("database: key not available (%d)", key)
	}
	return ent, nil
}

// Add an entry to the database. The key is assigned automatically and
// returned.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity == ActivityReading {
		return 0, fmt.Errorf("database: cannot add to a reading session")
	}

	// find spare key
	var key int
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}
	if key == maxEntries {
		return 0, fmt.Errorf("database: maximum entries exceeded (max %d)", maxEntries)
	}

	db.entries[key] = ent

	return key, nil
}

// Delete the entry with the specified key.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return fmt.Errorf("database: cannot delete from a reading session")
	}

	ent, ok := db.entries[key]
	if !ok {
		return fmt.Errorf("database: key not available (%d)", key)
	}

	if err := ent.CleanUp(); err != nil {
		return err
	}

	delete(db.entries, key)

	return nil
}
