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

package playmode

import (
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
)

// Preferences for the playmode loop.
type Preferences struct {
	dsk *prefs.Disk

	// the number of CPU instructions per second
	TickRate prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// newPreferences is the preferred method of initialisation for the
// Preferences type.
func newPreferences() (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("playmode.tickrate", &p.TickRate)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all playmode settings to default values.
func (p *Preferences) SetDefaults() {
	p.TickRate.Set(clocks.NominalTickRate)
}

// Load playmode preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current playmode preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
