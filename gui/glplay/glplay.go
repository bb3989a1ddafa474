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
	"io"
	"runtime"

	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/userinput"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// openGL requires the rendering context to stay on the one thread
	runtime.LockOSThread()
}

const pixelDepth = 4

const windowTitle = "Gopher8"
const windowTitlePaused = "Gopher8 [paused]"

// GlPlay is an implementation of the gui.GUI interface using GLFW and
// OpenGL directly. Functionally it is the same as the sdlplay package and
// exists for builds where SDL is not wanted.
type GlPlay struct {
	// the beeper type provides the Buzz() and EndBeeping() functions
	// required by the gui.Beeper interface
	*beeper

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

	window  *glfw.Window
	texture uint32

	// pixels is the byte array that we upload to the texture on every update
	pixels []byte

	// pixel colours from the gui preferences
	foreground [3]byte
	background [3]byte

	// the amount of scaling applied to each pixel of the display grid
	scale float32

	// the emulation state according to the most recent ReqState request
	state gui.EmulationState
}

// NewGlPlay is the preferred method of initialisation for GlPlay.
//
// MUST ONLY be called from the #mainthread
func NewGlPlay(scale float32) (*GlPlay, error) {
	scr := &GlPlay{
		service:    make(chan func(), 1),
		serviceErr: make(chan error, 1),
		featureReq: make(chan featureRequest, 1),
		featureErr: make(chan error, 1),
	}

	err := glfw.Init()
	if err != nil {
		return nil, err
	}

	// window hints must be in place before the window is created. the
	// drawing in this package is plain textured quads so the oldest context
	// worth asking for is fine
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

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
	scr.scale = scale

	scr.window, err = glfw.CreateWindow(int(float32(display.Width)*scr.scale),
		int(float32(display.Height)*scr.scale),
		windowTitle, nil, nil)
	if err != nil {
		return nil, err
	}

	scr.window.MakeContextCurrent()

	err = gl.Init()
	if err != nil {
		return nil, err
	}

	// the emulation runs to its own frame limiter. locking buffer swaps to
	// the monitor refresh as well would fight it
	glfw.SwapInterval(0)

	gl.GenTextures(1, &scr.texture)
	gl.BindTexture(gl.TEXTURE_2D, scr.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.Enable(gl.TEXTURE_2D)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	scr.pixels = make([]byte, display.Width*display.Height*pixelDepth)

	// preset alpha channel. we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	// initialise the sound system
	scr.beeper, err = newBeeper()
	if err != nil {
		return nil, err
	}

	scr.window.SetKeyCallback(scr.keyCallback)

	// note that we've elected not to show the window on startup. the window
	// is instead opened on a ReqSetVisibility request

	return scr, nil
}

// Destroy implements the GuiCreator interface.
//
// MUST ONLY be called from the #mainthread
func (scr *GlPlay) Destroy(output io.Writer) {
	err := scr.EndBeeping()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	gl.DeleteTextures(1, &scr.texture)
	scr.window.Destroy()
	glfw.Terminate()
}

// splitColour converts a 24 bit RGB value into the three bytes written to the
// pixels array.
func splitColour(col int) [3]byte {
	return [3]byte{byte(col >> 16), byte(col >> 8), byte(col)}
}

// show or hide window
func (scr *GlPlay) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

// use scale of -1 to reapply the existing scale value
func (scr *GlPlay) setScaling(scale float32) error {
	if scale >= 0 {
		scr.scale = scale
	}

	scr.window.SetSize(int(float32(display.Width)*scr.scale),
		int(float32(display.Height)*scr.scale))

	return nil
}

// setState also updates the window title so that it is apparent that a paused
// emulation is paused and not wedged.
func (scr *GlPlay) setState(state gui.EmulationState) {
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
func (scr *GlPlay) update() error {
	w, h := scr.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))

	gl.BindTexture(gl.TEXTURE_2D, scr.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		display.Width, display.Height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(scr.pixels))

	gl.Clear(gl.COLOR_BUFFER_BIT)

	// a single quad covering the whole window. texture row zero is the top
	// row of the display grid so the texture coordinates are flipped with
	// respect to the vertex coordinates
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0.0, 0.0)
	gl.Vertex2f(-1.0, 1.0)
	gl.TexCoord2f(1.0, 0.0)
	gl.Vertex2f(1.0, 1.0)
	gl.TexCoord2f(1.0, 1.0)
	gl.Vertex2f(1.0, -1.0)
	gl.TexCoord2f(0.0, 1.0)
	gl.Vertex2f(-1.0, -1.0)
	gl.End()

	scr.window.SwapBuffers()

	return nil
}

// Render implements the gui.PixelRenderer interface.
//
// The pixels array is ours to write to here because the #mainthread only
// reads it in the serviced function below and we wait for that function to
// complete.
//
// MUST NOT be called from the #mainthread
func (scr *GlPlay) Render(dsp *display.Display) error {
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
