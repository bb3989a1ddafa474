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
	"os"
	"strconv"
	"strings"
)

// Activity describes the general purpose of the database session.
type Activity int

// List of valid Activity values. ActivityCreating is treated the same as
// ActivityModifying when the database file already exists.
const (
	ActivityReading Activity = iota
	ActivityCreating
	ActivityModifying
)

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]deserialiser
}

// StartSession starts/initialises a new database session. The init argument
// is the function to call once the database file has been successfully
// opened, typically a series of RegisterEntryType() calls.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	var err error

	db := &Session{activity: activity}
	db.entryTypes = make(map[string]deserialiser)

	flags := os.O_RDWR
	if activity == ActivityReading {
		flags = os.O_RDONLY
	} else if activity == ActivityCreating {
		flags |= os.O_CREATE
	}

	db.dbfile, err = os.OpenFile(path, flags, 0o600)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	// closing of db.dbfile requires a call to EndSession()

	if err = init(db); err != nil {
		return nil, err
	}

	if err = db.readDBFile(); err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database, writing any changes back to disk when
// requested. Asking to commit changes in a reading session is an error.
func (db *Session) EndSession(commitChanges bool) error {
	if commitChanges && db.activity == ActivityReading {
		return fmt.Errorf("database: cannot commit changes in a reading session")
	}

	// write entries to database
	if commitChanges {
		if err := db.dbfile.Truncate(0); err != nil {
			return fmt.Errorf("database: %w", err)
		}

		if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
			return fmt.Errorf("database: %w", err)
		}

		for _, key := range db.SortedKeyList() {
			ser, err := db.entries[key].Serialise()
			if err != nil {
				return err
			}

			s := strings.Builder{}
			s.WriteString(recordHeader(key, db.entries[key].ID()))
			for i := 0; i < len(ser); i++ {
				s.WriteString(fieldSep)
				s.WriteString(ser[i])
			}
			s.WriteString(entrySep)

			if _, err := db.dbfile.WriteString(s.String()); err != nil {
				return fmt.Errorf("database: %w", err)
			}
		}
	}

	// end session by closing file
	if db.dbfile != nil {
		if err := db.dbfile.Close(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
		db.dbfile = nil
	}

	return nil
}

func (db *Session) readDBFile() error {
	// clobbers the contents of db.entries
	db.entries = make(map[int]Entry)

	// make sure we're at the beginning of the file
	if _, err := db.dbfile.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}

	lines := strings.Split(string(buffer), entrySep)

	for i := 0; i < len(lines); i++ {
		lines[i] = strings.TrimSpace(lines[i])
		if len(lines[i]) == 0 {
			continue
		}

		// split leader fields from the entry's own fields. the remainder is
		// passed undivided to the deserialiser
		fields := strings.SplitN(lines[i], fieldSep, numLeaderFields+1)
		if len(fields) < numLeaderFields+1 {
			return fmt.Errorf("database: truncated record at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return fmt.Errorf("database: invalid key (%s) at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return fmt.Errorf("database: duplicate key (%d) at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return fmt.Errorf("database: unrecognised entry type (%s) at line %d", fields[leaderFieldID], i+1)
		}

		ent, err := des(fields[numLeaderFields])
		if err != nil {
			return err
		}

		db.entries[key] = ent
	}

	return nil
}
