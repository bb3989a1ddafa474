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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/hardware"
)

// sentinal error returned by the Run() loop when the measurement period ends.
var timedOut = errors.New("performance timed out")

// Check the performance of the emulator using the supplied cartridge. The
// machine runs flat out for the specified duration and the tick rate is
// reported against the nominal rate of the emulated machine.
//
// The scr argument can be nil, in which case the session runs headless. With
// a GUI attached the display is rendered as it changes, which of course
// becomes part of what is being measured.
func Check(output io.Writer, profile bool, scr gui.GUI, cartload cartridgeloader.Loader, duration string) error {
	vm := hardware.NewChip8()

	err := vm.AttachCartridge(cartload)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// parse supplied duration
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	// number of ticks executed. reset when the leadtime concludes
	numTicks := 0

	runner := func() error {
		// trigger that expires when the measurement is over. signals false
		// to indicate that measurement should start and true when the
		// measurement period has finished
		timerChan := make(chan bool)

		// force a two second leadtime to allow the host to settle down and
		// then restart the timer for the specified duration
		go func() {
			time.AfterFunc(2*time.Second, func() {
				timerChan <- false
				time.AfterFunc(dur, func() {
					timerChan <- true
				})
			})
		}()

		// only look at the timer and the display every PerformanceBrake
		// ticks. checking a channel every tick is relatively expensive. it
		// does mean the measurement endpoints are quantised to the brake
		// interval
		brake := 0

		return vm.Run(func() (bool, error) {
			numTicks++

			brake++
			if brake < hardware.PerformanceBrake {
				return true, nil
			}
			brake = 0

			if scr != nil && vm.Dsp.Updated {
				vm.Dsp.Updated = false
				if err := scr.Render(vm.Dsp); err != nil {
					return false, err
				}
			}

			select {
			case v := <-timerChan:
				if v {
					return false, timedOut
				}

				// the leadtime has concluded. restart the count for the
				// measurement period proper
				numTicks = 0
			default:
			}

			return true, nil
		})
	}

	// launch the runner directly or through the CPU profiler, depending on
	// the supplied arguments
	if profile {
		err = ProfileCPU("performance.cpu.profile", runner)
	} else {
		err = runner()
	}
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	rate, accuracy := CalcTickRate(numTicks, dur.Seconds())
	output.Write([]byte(fmt.Sprintf("%.0f ticks/s (%d ticks in %.2f seconds) %.1f%% of nominal rate\n",
		rate, numTicks, dur.Seconds(), accuracy)))

	if profile {
		return ProfileMem("performance.mem.profile")
	}

	return nil
}
