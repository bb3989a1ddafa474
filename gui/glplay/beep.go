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
	"encoding/binary"
	"math"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"
)

// the machine produces a single fixed tone. no particular frequency is
// required, it just has to sound like a buzzer.
const (
	beepSampleFreq = 48000
	beepToneFreq   = 440
	beepAmplitude  = 0.25
)

// beeper sounds the machine's tone through an oto player.
//
// The player is always playing. The Read() function streams silence until
// the buzzing flag is raised, which is all Buzz() does. Keeping the stream
// open means starting the tone costs nothing.
type beeper struct {
	ctx    *oto.Context
	player *oto.Player

	buzzing atomic.Bool

	// position in the current wave period. only ever touched by Read()
	phase int
}

func newBeeper() (*beeper, error) {
	bzz := &beeper{}

	op := &oto.NewContextOptions{
		SampleRate:   beepSampleFreq,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,

		// a small buffer so that the tone stops promptly when the sound
		// timer expires
		BufferSize: 25 * time.Millisecond,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	bzz.ctx = ctx
	bzz.player = ctx.NewPlayer(bzz)
	bzz.player.Play()

	return bzz, nil
}

// Read implements the io.Reader interface. The oto player calls this
// whenever it wants more samples.
func (bzz *beeper) Read(p []byte) (int, error) {
	const bytesPerSample = 4
	const samplesPerPeriod = beepSampleFreq / beepToneFreq

	n := len(p) / bytesPerSample
	for i := 0; i < n; i++ {
		var v float32

		if bzz.buzzing.Load() {
			if bzz.phase < samplesPerPeriod/2 {
				v = beepAmplitude
			} else {
				v = -beepAmplitude
			}
			bzz.phase = (bzz.phase + 1) % samplesPerPeriod
		} else {
			// restart the wave at the beginning of the period so that
			// every buzz sounds the same
			bzz.phase = 0
		}

		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(v))
	}

	return n * bytesPerSample, nil
}

// Buzz implements the gui.Beeper interface.
func (bzz *beeper) Buzz(on bool) error {
	bzz.buzzing.Store(on)
	return nil
}

// EndBeeping implements the gui.Beeper interface.
func (bzz *beeper) EndBeeping() error {
	bzz.buzzing.Store(false)
	return bzz.player.Close()
}
