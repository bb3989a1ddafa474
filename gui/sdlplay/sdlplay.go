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
	"io"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/sdlaudio"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

const windowTitle = "Gopher8"
const windowTitlePaused = "Gopher8 [paused]"

// SdlPlay is a simple SDL implementation of the gui.GUI interface. A single
// window shows the display grid and nothing else.
type SdlPlay struct {
	// the Audio type provides the Buzz() and EndBeeping() functions required
	// by the gui.Beeper interface
	*sdlaudio.Audio

	// functions that need to be performed in the main thread are queued for
	// service
	service    chan func()
	serviceErr chan error

	// ReqFeature() hands off requests to the featureReq channel for servicing
	featureReq chan featureRequest
	featureErr chan error

	// the channel on which user input events are forwarded to the emulation.
	// set with the ReqSetUserInput request
	events chan userinput.Event

	// sdl stuff
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array that we copy to the texture before applying
	// it to the renderer
	pixels []byte

	// pixel colours from the gui preferences
	foreground [3]byte
	background [3]byte

	// the amount of scaling applied to each pixel of the display grid
	scale float32

	// the emulation state according to the most recent ReqState request
	state gui.EmulationState
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay.
//
// MUST ONLY be called from the #mainthread
func NewSdlPlay(scale float32) (*SdlPlay, error) {
	scr := &SdlPlay{
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}

	var err error

	// set up sdl
	err = sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, err
	}

	setupService()

	// SDL window. window size is set in setScaling()
	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, err
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, err
	}

	// texture is applied to the renderer on every update. it is the same
	// size as the display grid, scaling fits it to the window
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(display.Width), int32(display.Height))
	if err != nil {
		return nil, err
	}

	scr.pixels = make([]byte, display.Width*display.Height*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	// initialise the sound system
	scr.Audio, err = sdlaudio.NewAudio()
	if err != nil {
		return nil, err
	}

	// window settings. a scale from the command line takes precedence over
	// the preferences value
	prf, err := gui.NewPreferences()
	if err != nil {
		return nil, err
	}
	scr.foreground = splitColour(prf.Foreground.Get().(int))
	scr.background = splitColour(prf.Background.Get().(int))

	if scale <= 0 {
		scale = float32(prf.Scale.Get().(float64))
	}
	err = scr.setScaling(scale)
	if err != nil {
		return nil, err
	}

	scr.renderer.Clear()
	scr.renderer.Present()

	// note that we've elected not to show the window on startup. the window
	// is instead opened on a ReqSetVisibility request

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) Destroy(output io.Writer) {
	err := scr.EndBeeping()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.texture.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.renderer.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}
}

// splitColour converts a 24 bit RGB value into the three bytes written to the
// pixels array.
func splitColour(col int) [3]byte {
	return [3]byte{byte(col >> 16), byte(col >> 8), byte(col)}
}

// show or hide window
func (scr *SdlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// use scale of -1 to reapply the existing scale value
func (scr *SdlPlay) setScaling(scale float32) error {
	if scale >= 0 {
		scr.scale = scale
	}

	w := int32(float32(display.Width) * scr.scale)
	h := int32(float32(display.Height) * scr.scale)
	scr.window.SetSize(w, h)

	// make sure everything drawn through the renderer is correctly scaled
	err := scr.renderer.SetScale(scr.scale, scr.scale)
	if err != nil {
		return err
	}

	return nil
}

// setState also updates the window title so that it is apparent that a paused
// emulation is paused and not wedged.
func (scr *SdlPlay) setState(state gui.EmulationState) {
	scr.state = state
	if state == gui.StatePaused {
		scr.window.SetTitle(windowTitlePaused)
	} else {
		scr.window.SetTitle(windowTitle)
	}
}

// update redraws the window from the pixels array.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlPlay) update() error {
	err := scr.texture.Update(nil, scr.pixels, display.Width*pixelDepth)
	if err != nil {
		return err
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// Render implements the gui.PixelRenderer interface.
//
// The pixels array is ours to write to here because the #mainthread only
// reads it in the serviced function below and we wait for that function to
// complete.
//
// MUST NOT be called from the #mainthread
func (scr *SdlPlay) Render(dsp *display.Display) error {
	i := 0
	for pix := range dsp.Grid() {
		col := scr.background
		if pix {
			col = scr.foreground
		}
		scr.pixels[i] = col[0]
		scr.pixels[i+1] = col[1]
		scr.pixels[i+2] = col[2]
		i += pixelDepth
	}

	scr.service <- func() {
		scr.serviceErr <- scr.update()
	}
	return <-scr.serviceErr
}
