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
	"github.com/jetsetilly/gopher8/hardware/display"
)

// Stub is a no-op implementation of the GUI interface. Useful when running
// the emulation with no interface at all, for example during regression and
// performance runs.
type Stub struct{}

// Render is a stub implementation for the GUI interface.
func (_ Stub) Render(_ *display.Display) error {
	return nil
}

// Buzz is a stub implementation for the GUI interface.
func (_ Stub) Buzz(_ bool) error {
	return nil
}

// EndBeeping is a stub implementation for the GUI interface.
func (_ Stub) EndBeeping() error {
	return nil
}

// ReqFeature is a stub implementation for the GUI interface.
func (_ Stub) ReqFeature(_ FeatureReq, _ ...interface{}) error {
	return nil
}
