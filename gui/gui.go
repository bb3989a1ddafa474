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

// Package gui defines the operations required of a graphical user interface
// and the requests that can be made of it.
//
// GUI implementations are free to service feature requests how they like but
// the PixelRenderer and Beeper interfaces must be satisfied so that the
// emulation can forward the display grid and the state of the sound timer
// without caring which implementation it is talking to.
package gui

import (
	"github.com/jetsetilly/gopher8/hardware/display"
)

// GUI is the principle interface between the emulation and the user
// interface. Implementations fold the PixelRenderer and Beeper interfaces
// together with the feature request mechanism.
type GUI interface {
	PixelRenderer
	Beeper

	// Send a request to the GUI. Requests are documented in the FeatureReq
	// type. The GUI may not support the request in which case an error is
	// returned.
	ReqFeature(request FeatureReq, args ...interface{}) error
}

// PixelRenderer implementations accept the display grid and present it to the
// user somehow.
//
// Render() is called from the emulation goroutine. Implementations that
// service a window on a different goroutine must copy the grid under a
// critical section and leave the actual drawing to the servicing goroutine.
type PixelRenderer interface {
	Render(dsp *display.Display) error
}

// Beeper implementations sound the single tone of the machine whenever the
// sound timer is running.
type Beeper interface {
	// Buzz starts and stops the tone. It is called repeatedly with the
	// current state of the sound timer so implementations should treat
	// repeated calls with the same value as a no-op.
	Buzz(on bool) error

	// EndBeeping is called when the emulation is finished with the Beeper.
	EndBeeping() error
}
