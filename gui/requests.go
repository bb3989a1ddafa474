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

// FeatureReq is used to request the setting of a gui attribute, eg. toggling
// the window visibility.
type FeatureReq string

// EmulationState indicates to the GUI that the emulation is in a particular
// state.
//
// The GUI starts in StateInitialising. The playmode loop should set
// StateRunning as soon as the emulation begins and the debugger should flip
// between StatePaused and StateRunning as the input loop halts and resumes.
type EmulationState int

// List of valid emulation states.
const (
	StateInitialising EmulationState = iota
	StatePaused
	StateRunning
	StateEnding
)

// List of valid feature requests. The arguments must be of the type specified
// or else the interface{} type conversion in the servicing GUI will fail and
// an error will be returned.
//
// Note that, like the name suggests, these are requests. They may or may not
// be satisfied depending on other conditions in the GUI.
const (
	// whether the gui window is visible or not.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// the scaling of the gui window. the base size of the window is the size
	// of the display grid so a scale of 10.0 gives a 640x320 window.
	ReqSetScale FeatureReq = "ReqSetScale" // float32

	// the channel on which the gui should forward user input events.
	ReqSetUserInput FeatureReq = "ReqSetUserInput" // chan userinput.Event

	// notify gui of the emulation state. the gui can use this to alter how it
	// presents itself, for example dimming the window while paused.
	ReqState FeatureReq = "ReqState" // EmulationState
)
