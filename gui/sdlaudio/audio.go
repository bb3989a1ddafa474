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

package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"
)

// the machine produces a single fixed tone. no particular frequency is
// required, it just has to sound like a buzzer. 440Hz is close to what
// surviving footage of original hardware sounds like.
const (
	sampleFreq = 22050
	toneFreq   = 440
	amplitude  = 24
)

// the tone buffer does not need to be long because the queue is topped up on
// every call to Buzz(). what it must be is a whole number of wave periods or
// there will be an audible click as the queue wraps around.
const bufferLength = 512

// Audio sounds the machine's tone through SDL.
//
// The sound device is opened in the paused state and is started and stopped
// by the Buzz() function. The tone is queued in small amounts so that the
// sound stops promptly when the sound timer expires.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// pregenerated square wave, trimmed to a whole number of periods
	tone []uint8
}

// NewAudio is the preferred method of initialisation for the Audio type.
//
// Prerequisite: SDL_INIT_AUDIO must be included in the call to sdl.Init()
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	aud.spec = actualSpec

	// generate the square wave around the silence value reported by the
	// device
	samplesPerPeriod := int(aud.spec.Freq) / toneFreq
	numPeriods := bufferLength / samplesPerPeriod

	aud.tone = make([]uint8, numPeriods*samplesPerPeriod)
	for i := range aud.tone {
		if i%samplesPerPeriod < samplesPerPeriod/2 {
			aud.tone[i] = aud.spec.Silence + amplitude
		} else {
			aud.tone[i] = aud.spec.Silence - amplitude
		}
	}

	// the device stays paused until the tone is needed
	sdl.PauseAudioDevice(aud.id, true)

	return aud, nil
}

// Buzz implements the gui.Beeper interface.
func (aud *Audio) Buzz(on bool) error {
	if !on {
		sdl.PauseAudioDevice(aud.id, true)
		sdl.ClearQueuedAudio(aud.id)
		return nil
	}

	// top up the queue. two buffers of lead is enough to cover the gap
	// between calls to Buzz() without stretching the tone much past the
	// point the sound timer expires
	if sdl.GetQueuedAudioSize(aud.id) < uint32(2*len(aud.tone)) {
		err := sdl.QueueAudio(aud.id, aud.tone)
		if err != nil {
			return err
		}
	}
	sdl.PauseAudioDevice(aud.id, false)

	return nil
}

// EndBeeping implements the gui.Beeper interface.
func (aud *Audio) EndBeeping() error {
	aud.Buzz(false)
	sdl.CloseAudioDevice(aud.id)
	return nil
}
