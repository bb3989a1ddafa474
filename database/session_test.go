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

package database_test

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8/database"
	"github.com/jetsetilly/gopher8/test"
)

// testEntry is a minimal implementation of the Entry interface. the notes
// field is serialised last and so can contain the field separator.
type testEntry struct {
	name  string
	notes string
}

func deserialiseTestEntry(fields string) (database.Entry, error) {
	f := strings.SplitN(fields, ",", 2)
	if len(f) != 2 {
		return nil, fmt.Errorf("wrong number of fields in test entry")
	}
	return &testEntry{name: f[0], notes: f[1]}, nil
}

func (ent testEntry) ID() string {
	return "test"
}

func (ent testEntry) String() string {
	return ent.name
}

func (ent testEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name, ent.notes}, nil
}

func (ent testEntry) CleanUp() error {
	return nil
}

func registerTestEntry(db *database.Session) error {
	return db.RegisterEntryType("test", deserialiseTestEntry)
}

func TestSessionRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// create a database with two entries
	db, err := database.StartSession(dbPath, database.ActivityCreating, registerTestEntry)
	test.ExpectedSuccess(t, err)

	key, err := db.Add(&testEntry{name: "first", notes: "no comment"})
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, key, 0)

	key, err = db.Add(&testEntry{name: "second", notes: "no comment"})
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, key, 1)

	err = db.EndSession(true)
	test.ExpectedSuccess(t, err)

	// reopen the database for reading and check the entries survived
	db, err = database.StartSession(dbPath, database.ActivityReading, registerTestEntry)
	test.ExpectedSuccess(t, err)
	defer db.EndSession(false)

	test.ExpectEquality(t, db.NumEntries(), 2)

	ent, err := db.Get(0)
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "first")

	s := &strings.Builder{}
	err = db.List(s)
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, s.String(), "000 first\n001 second\nTotal: 2\n")
}

func TestFieldSeparatorInFinalField(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.StartSession(dbPath, database.ActivityCreating, registerTestEntry)
	test.ExpectedSuccess(t, err)

	_, err = db.Add(&testEntry{name: "first", notes: "notes, with, commas"})
	test.ExpectedSuccess(t, err)

	err = db.EndSession(true)
	test.ExpectedSuccess(t, err)

	db, err = database.StartSession(dbPath, database.ActivityReading, registerTestEntry)
	test.ExpectedSuccess(t, err)
	defer db.EndSession(false)

	ent, err := db.Get(0)
	test.ExpectedSuccess(t, err)

	if te, ok := ent.(*testEntry); ok {
		test.ExpectEquality(t, te.notes, "notes, with, commas")
	} else {
		t.Fatalf("unexpected entry type in database")
	}
}

func TestDelete(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.StartSession(dbPath, database.ActivityCreating, registerTestEntry)
	test.ExpectedSuccess(t, err)

	_, err = db.Add(&testEntry{name: "first", notes: "no comment"})
	test.ExpectedSuccess(t, err)
	_, err = db.Add(&testEntry{name: "second", notes: "no comment"})
	test.ExpectedSuccess(t, err)

	err = db.EndSession(true)
	test.ExpectedSuccess(t, err)

	// delete the first entry. the key for the second entry is unaffected
	db, err = database.StartSession(dbPath, database.ActivityModifying, registerTestEntry)
	test.ExpectedSuccess(t, err)

	err = db.Delete(0)
	test.ExpectedSuccess(t, err)

	err = db.EndSession(true)
	test.ExpectedSuccess(t, err)

	db, err = database.StartSession(dbPath, database.ActivityReading, registerTestEntry)
	test.ExpectedSuccess(t, err)
	defer db.EndSession(false)

	test.ExpectEquality(t, db.NumEntries(), 1)

	_, err = db.Get(0)
	test.ExpectedFailure(t, err)

	ent, err := db.Get(1)
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "second")

	// a new entry would reuse the deleted key but adding is not permitted
	// in a reading session
	_, err = db.Add(&testEntry{name: "third", notes: "no comment"})
	test.ExpectedFailure(t, err)
}

func TestReadingSessionActivity(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.StartSession(dbPath, database.ActivityCreating, registerTestEntry)
	test.ExpectedSuccess(t, err)
	_, err = db.Add(&testEntry{name: "first", notes: "no comment"})
	test.ExpectedSuccess(t, err)
	err = db.EndSession(true)
	test.ExpectedSuccess(t, err)

	db, err = database.StartSession(dbPath, database.ActivityReading, registerTestEntry)
	test.ExpectedSuccess(t, err)

	_, err = db.Add(&testEntry{name: "second", notes: "no comment"})
	test.ExpectedFailure(t, err)

	err = db.Delete(0)
	test.ExpectedFailure(t, err)

	err = db.EndSession(true)
	test.ExpectedFailure(t, err)

	err = db.EndSession(false)
	test.ExpectedSuccess(t, err)
}

func TestDuplicateEntryType(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	_, err := database.StartSession(dbPath, database.ActivityCreating, func(db *database.Session) error {
		if err := db.RegisterEntryType("test", deserialiseTestEntry); err != nil {
			return err
		}
		return db.RegisterEntryType("test", deserialiseTestEntry)
	})
	test.ExpectedFailure(t, err)
}

func TestSelect(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := database.StartSession(dbPath, database.ActivityCreating, registerTestEntry)
	test.ExpectedSuccess(t, err)
	defer db.EndSession(false)

	for _, name := range []string{"first", "second", "third"} {
		_, err = db.Add(&testEntry{name: name, notes: "no comment"})
		test.ExpectedSuccess(t, err)
	}

	// selection visits every entry in key order
	names := []string{}
	err = db.SelectAll(func(key int, ent database.Entry) error {
		names = append(names, ent.String())
		return nil
	})
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, strings.Join(names, " "), "first second third")

	// selection by key visits the keys in the order given
	names = names[:0]
	err = db.SelectKeys(func(key int, ent database.Entry) error {
		names = append(names, ent.String())
		return nil
	}, 2, 0)
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, strings.Join(names, " "), "third first")

	// a key with no entry is an error
	err = db.SelectKeys(func(key int, ent database.Entry) error {
		return nil
	}, 100)
	test.ExpectedFailure(t, err)
}
