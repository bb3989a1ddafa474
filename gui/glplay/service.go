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

package glplay

import (
	"strings"

	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *GlPlay) Service() {
	// run any outstanding feature requests
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequests(r)
	default:
	}

	// the key callback fires from inside the event wait. the short timeout
	// stops the main loop from spinning when nothing at all is happening
	glfw.WaitEventsTimeout(0.001)

	// close window
	if scr.window.ShouldClose() {
		// the quit decision belongs to the emulation, not the window
		scr.window.SetShouldClose(false)

		if scr.events != nil {
			select {
			case scr.events <- userinput.EventQuit{}:
			default:
				logger.Log(logger.Allow, "glplay", "dropped quit event")
			}
		}
	}

	// run any outstanding service functions
	select {
	case f := <-scr.service:
		f()
	default:
	}
}

func (scr *GlPlay) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	// do not forward events if no event channel has been set
	if scr.events == nil {
		return
	}

	// key repeats are of no interest to the emulated keypad
	if action == glfw.Repeat {
		return
	}

	mod := userinput.KeyModNone
	if mods&glfw.ModAlt == glfw.ModAlt {
		mod = userinput.KeyModAlt
	} else if mods&glfw.ModShift == glfw.ModShift {
		mod = userinput.KeyModShift
	} else if mods&glfw.ModControl == glfw.ModControl {
		mod = userinput.KeyModCtrl
	}

	// GLFW reports printable keys in lower case. normalise to the SDL style
	// names expected by the userinput package
	name := strings.ToUpper(glfw.GetKeyName(key, scancode))

	// GetKeyName() returns the empty string for keys without a printable
	// representation. escape and space are the only such keys we care about
	switch key {
	case glfw.KeyEscape:
		name = "Escape"
	case glfw.KeySpace:
		name = "Space"
	}
	if name == "" {
		return
	}

	select {
	case scr.events <- userinput.EventKeyboard{
		Key:  name,
		Mod:  mod,
		Down: action == glfw.Press}:
	default:
		logger.Log(logger.Allow, "glplay", "dropped keyboard event")
	}
}
