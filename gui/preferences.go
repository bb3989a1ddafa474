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

package gui

import (
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/resources"
)

// Preferences for the display window. Every GUI implementation uses the same
// group so switching between them does not change how the emulation looks.
type Preferences struct {
	dsk *prefs.Disk

	// scale of the window relative to the display grid
	Scale prefs.Float

	// pixel colours as 24 bit RGB values
	Foreground prefs.Int
	Background prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

const (
	scale      = 10.0
	foreground = 0xffffff
	background = 0x000000
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
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

	err = p.dsk.Add("gui.scale", &p.Scale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gui.foreground", &p.Foreground)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("gui.background", &p.Background)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all window settings to default values.
func (p *Preferences) SetDefaults() {
	p.Scale.Set(scale)
	p.Foreground.Set(foreground)
	p.Background.Set(background)
}

// Load window preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current window preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
