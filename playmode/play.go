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
	"fmt"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/performance/limiter"
	"github.com/jetsetilly/gopher8/userinput"
	"github.com/jetsetilly/gopher8/wavwriter"
)

type playmode struct {
	vm  *hardware.Chip8
	scr gui.GUI

	prefs *Preferences

	// the resolved number of CPU instructions per second
	tickRate int

	// frames are pinned to the refresh rate of the emulated machine
	lim *limiter.FpsLimiter

	// ticks remaining in the current frame batch and the fractional
	// remainder carried between batches
	remaining   int
	accumulator float64

	// user input events forwarded by the GUI
	userinput chan userinput.Event

	// ctrl-c. unlike an interrupt during the launch sequence, an interrupt
	// while the machine is running stops the emulation cleanly
	intChan chan os.Signal

	// the optional recording of the beeper. nil when no recording was
	// requested
	wav *wavwriter.WavWriter

	paused bool
}

// Play sets the emulation running, without any debugging features.
//
// A tickRate of zero or less means the rate stored in the playmode
// preferences. A non-empty wavFile names a WAV file that the sound of the
// session is written to.
func Play(scr gui.GUI, cartload cartridgeloader.Loader, tickRate int, wavFile string) error {
	pl := &playmode{
		vm:        hardware.NewChip8(),
		scr:       scr,
		userinput: make(chan userinput.Event, 10),
		intChan:   make(chan os.Signal, 1),
	}

	var err error

	pl.prefs, err = newPreferences()
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	// a tick rate from the command line takes precedence over the
	// preferences value
	if tickRate <= 0 {
		tickRate = pl.prefs.TickRate.Get().(int)
	}
	if tickRate <= 0 {
		return fmt.Errorf("playmode: tick rate must be a positive number")
	}
	pl.tickRate = tickRate
	logger.Logf(logger.Allow, "playmode", "running at %d ticks per second", pl.tickRate)

	err = pl.vm.AttachCartridge(cartload)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	if wavFile != "" {
		pl.wav, err = wavwriter.New(wavFile, pl.tickRate)
		if err != nil {
			return fmt.Errorf("playmode: %w", err)
		}
	}

	// connect gui
	err = scr.ReqFeature(gui.ReqSetUserInput, pl.userinput)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	err = scr.ReqFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	err = scr.ReqFeature(gui.ReqState, gui.StateRunning)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	signal.Notify(pl.intChan, os.Interrupt)

	err = pl.run()

	// the state request at the end of the session is advisory. any error
	// from the run loop is the one worth keeping
	_ = scr.ReqFeature(gui.ReqState, gui.StateEnding)

	// the WAV file is written on the way out whether or not the loop ended
	// cleanly
	if pl.wav != nil {
		werr := pl.wav.EndBeeping()
		if werr != nil {
			if err == nil {
				err = werr
			} else {
				logger.Logf(logger.Allow, "playmode", "wav recording lost: %v", werr)
			}
		}
	}

	return err
}

func (pl *playmode) run() error {
	var err error

	pl.lim, err = limiter.NewFPSLimiter(clocks.FrameRate)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	pl.nextBatch()

	err = pl.vm.Run(pl.continueCheck)
	if err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	return nil
}

// nextBatch decides how many ticks make up the coming frame. the fractional
// part is carried over so that the average rate is honoured exactly. rates
// below the frame rate are floored at one tick per frame by the run loop.
func (pl *playmode) nextBatch() {
	n := float64(pl.tickRate)/float64(clocks.FrameRate) + pl.accumulator
	pl.remaining = int(n)
	pl.accumulator = n - float64(pl.remaining)
}

// continueCheck is called by the machine once per tick.
func (pl *playmode) continueCheck() (bool, error) {
	// beepers follow the sound timer at tick granularity
	on := pl.vm.CPU.SoundTimer > 0
	if err := pl.scr.Buzz(on); err != nil {
		return false, fmt.Errorf("playmode: %w", err)
	}
	if pl.wav != nil {
		if err := pl.wav.Buzz(on); err != nil {
			return false, fmt.Errorf("playmode: %w", err)
		}
	}

	pl.remaining--
	if pl.remaining > 0 {
		return true, nil
	}

	return pl.endOfFrame()
}

// endOfFrame renders the display if it has changed, stalls until the frame
// limiter trips and services buffered user input.
func (pl *playmode) endOfFrame() (bool, error) {
	if pl.vm.Dsp.Updated {
		pl.vm.Dsp.Updated = false
		if err := pl.scr.Render(pl.vm.Dsp); err != nil {
			return false, fmt.Errorf("playmode: %w", err)
		}
	}

	pl.lim.Wait()

	cont, err := pl.eventCheck()

	// hold here while paused. events are still serviced so that the pause
	// can be ended and the window closed
	for cont && err == nil && pl.paused {
		pl.lim.Wait()
		cont, err = pl.eventCheck()
	}

	pl.nextBatch()

	return cont, err
}

// setPause freezes or resumes the emulation. the GUI is told so that the
// window can reflect the state.
func (pl *playmode) setPause(paused bool) error {
	pl.paused = paused

	state := gui.StateRunning
	if paused {
		state = gui.StatePaused

		// silence the beeper for the duration of the pause. the sound timer
		// is not ticking so nothing will restart the tone until the
		// emulation resumes
		if err := pl.scr.Buzz(false); err != nil {
			return fmt.Errorf("playmode: %w", err)
		}
	}

	if err := pl.scr.ReqFeature(gui.ReqState, state); err != nil {
		return fmt.Errorf("playmode: %w", err)
	}

	return nil
}
