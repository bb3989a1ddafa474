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

// Package wavwriter implements the gui.Beeper interface and writes the sound
// of the emulated machine to disk as a WAV file. Note that audio data is
// buffered in memory in its entirety, and written to disk on program end. It
// is therefore probably only suitable for testing purposes.
package wavwriter

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gopher8/logger"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// the generated tone matches the one in the sdlaudio package. an 8 bit
// unsigned WAV file is centred on a sample value of 128.
const (
	sampleFreq = 22050
	toneFreq   = 440
	amplitude  = 24
	silence    = 128
)

// WavWriter implements the gui.Beeper interface.
type WavWriter struct {
	filename string

	// one entry per sample. built up as the sound timer switches the tone
	// on and off
	buffer []int

	// the number of calls to Buzz() is the only measure of time we have.
	// the tick rate of the machine converts it to a number of samples
	tickRate int

	// fractional sample count carried over to the next Buzz()
	remainder float64

	// position in the current wave period
	phase int
}

// New is the preferred method of initialisation for the WavWriter type.
//
// The tickRate argument must be the rate at which Buzz() will be called. For
// the playmode loop that is the emulated tick rate.
func New(filename string, tickRate int) (*WavWriter, error) {
	if tickRate <= 0 {
		return nil, fmt.Errorf("wavwriter: tick rate must be a positive number")
	}

	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
		tickRate: tickRate,
	}

	return aw, nil
}

// Buzz implements the gui.Beeper interface. Every call appends one tick's
// worth of samples to the buffer.
func (aw *WavWriter) Buzz(on bool) error {
	const samplesPerPeriod = sampleFreq / toneFreq

	n := float64(sampleFreq)/float64(aw.tickRate) + aw.remainder
	num := int(n)
	aw.remainder = n - float64(num)

	for i := 0; i < num; i++ {
		if on {
			if aw.phase < samplesPerPeriod/2 {
				aw.buffer = append(aw.buffer, silence+amplitude)
			} else {
				aw.buffer = append(aw.buffer, silence-amplitude)
			}
			aw.phase = (aw.phase + 1) % samplesPerPeriod
		} else {
			aw.buffer = append(aw.buffer, silence)

			// restart the wave at the beginning of the period so that
			// every buzz sounds the same
			aw.phase = 0
		}
	}

	return nil
}

// EndBeeping implements the gui.Beeper interface. The WAV file is written
// in full here.
func (aw *WavWriter) EndBeeping() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = fmt.Errorf("wavwriter: %w", err)
		}
	}()

	// audio format of 1 indicates PCM
	enc := wav.NewEncoder(f, sampleFreq, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.buffer,
		SourceBitDepth: 8,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("wavwriter: %w", err)
	}

	return nil
}
