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

package prefs

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// DefaultPrefsFile is the name of the prefs file used by all parts of the
// program, relative to the resources path.
const DefaultPrefsFile = "gopher8.prefs"

// WarningBoilerPlate is the first line of a prefs file. A file that does not
// begin with it is not treated as a prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the string that separates the key from the value in a prefs file.
const keySep = " :: "

// Disk represents a group of preference values as stored on disk. Many Disk
// instances can use the same file, the keys of one instance being invisible
// to the others.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// path is to the prefs file the group is stored in. The file does not need
// to exist yet.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path for prefs file")
	}

	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add a preference to the disk group under the specified key. If a value for
// the key has been supplied on the command line then the preference is set
// to that value immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, "::") || strings.ContainsAny(key, "\n") {
		return fmt.Errorf("prefs: invalid key (%s)", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: duplicate key (%s)", key)
	}

	dsk.entries[key] = p

	// command line values take precedence over whatever is on disk
	if ok, v := GetCommandLinePref(key); ok {
		return p.Set(v)
	}

	return nil
}

func (dsk Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, dsk.entries[key].String()))
	}
	return s.String()
}

// read the prefs file into a key/value map. a missing file returns an empty
// map, not an error.
func (dsk *Disk) loadFromDisk() (map[string]string, error) {
	vals := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return vals, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("prefs: %w", err)
	}

	lines := strings.Split(string(b), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != WarningBoilerPlate {
		return nil, fmt.Errorf("prefs: not a valid prefs file (%s)", dsk.path)
	}

	for i, l := range lines[1:] {
		if strings.TrimSpace(l) == "" {
			continue
		}

		kv := strings.SplitN(l, keySep, 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("prefs: invalid entry at line %d (%s)", i+2, dsk.path)
		}

		// quietly drop values that are no longer used
		if isDefunct(kv[0]) {
			continue
		}

		vals[kv[0]] = kv[1]
	}

	return vals, nil
}

// Save all added preferences to disk. Keys in the file that are not part of
// this Disk instance are preserved.
func (dsk *Disk) Save() error {
	vals, err := dsk.loadFromDisk()
	if err != nil {
		return err
	}

	// our own entries take precedence over the values on disk
	for key, p := range dsk.entries {
		vals[key] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for key := range vals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", key, keySep, vals[key]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load previously saved preferences from disk, setting the values of the
// preferences added to this Disk instance.
//
// When strict is false, a missing prefs file or a missing key leaves the
// preference value as it is. When strict is true they are errors.
func (dsk *Disk) Load(strict bool) error {
	vals, err := dsk.loadFromDisk()
	if err != nil {
		return err
	}

	for key, p := range dsk.entries {
		v, ok := vals[key]
		if !ok {
			if strict {
				return fmt.Errorf("prefs: missing value for key (%s)", key)
			}
			continue
		}
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %w", err)
		}
	}

	return nil
}

// Reset all preferences in this Disk instance to their zero values. The
// prefs file is not touched until the next Save().
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
