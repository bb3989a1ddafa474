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

package sdlplay

import (
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

func setupService() {
	// MOUSEMOTION events fill up the event queue pretty quickly. they take
	// time to service and for no good reason; the emulated machine has no
	// concept of a pointing device
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)
}

// Service implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Service() {
	// run any outstanding feature requests
	select {
	case r := <-scr.featureReq:
		scr.serviceFeatureRequests(r)
	default:
	}

	// do not check for events if no event channel has been set
	if scr.events != nil {
		// loop until there are no more events to retrieve. servicing just
		// one event per call is not enough, queued events would take one
		// call or longer to resolve and input would feel sluggish.
		//
		// the short timeout on the wait means an empty queue stalls us for
		// no more than a millisecond. it also stops the main loop from
		// spinning when nothing at all is happening.
		empty := false
		for !empty {
			ev := sdl.WaitEventTimeout(1)

			switch ev := ev.(type) {
			// close window
			case *sdl.QuitEvent:
				select {
				case scr.events <- userinput.EventQuit{}:
				default:
					logger.Log(logger.Allow, "sdlplay", "dropped quit event")
				}

			case *sdl.KeyboardEvent:
				mod := userinput.KeyModNone

				if sdl.GetModState()&sdl.KMOD_LALT == sdl.KMOD_LALT ||
					sdl.GetModState()&sdl.KMOD_RALT == sdl.KMOD_RALT {
					mod = userinput.KeyModAlt
				} else if sdl.GetModState()&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT ||
					sdl.GetModState()&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
					mod = userinput.KeyModShift
				} else if sdl.GetModState()&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL ||
					sdl.GetModState()&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
					mod = userinput.KeyModCtrl
				}

				switch ev.Type {
				case sdl.KEYDOWN:
					if ev.Repeat == 0 {
						select {
						case scr.events <- userinput.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Mod:  mod,
							Down: true}:
						default:
							logger.Log(logger.Allow, "sdlplay", "dropped key down event")
						}
					}
				case sdl.KEYUP:
					if ev.Repeat == 0 {
						select {
						case scr.events <- userinput.EventKeyboard{
							Key:  sdl.GetKeyName(ev.Keysym.Sym),
							Mod:  mod,
							Down: false}:
						default:
							logger.Log(logger.Allow, "sdlplay", "dropped key up event")
						}
					}
				}

			case nil:
				// a nil value means WaitEventTimeout has timed out and we
				// can say that the event queue is empty
				empty = true
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
