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

// SelectAll calls onSelect for every entry in the database in key order.
// Returning an error from onSelect ends the selection early and the error is
// passed back to the caller, along with the key of the entry that caused it.
func (db *Session) SelectAll(onSelect func(key int, ent Entry) error) error {
	if onSelect == nil {
		return nil
	}

	for _, key := range db.SortedKeyList() {
		if err := onSelect(key, db.entries[key]); err != nil {
			return err
		}
	}

	return nil
}

// SelectKeys is like SelectAll but only matches entries with the specified
// keys. An empty list of keys matches every entry. A key with no entry is an
// error.
func (db *Session) SelectKeys(onSelect func(key int, ent Entry) error, keys ...int) error {
	if len(keys) == 0 {
		return db.SelectAll(onSelect)
	}

	if onSelect == nil {
		return nil
	}

	for _, key := range keys {
		ent, ok := db.entries[key]
		if !ok {
			return fmt.Errorf("database: key not available (%d)", key)
		}
		if err := onSelect(key, ent); err != nil {
			return err
		}
	}

	return nil
}
