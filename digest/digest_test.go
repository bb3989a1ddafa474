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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/test"
)

func TestVideoDigest(t *testing.T) {
	dsp := display.NewDisplay()
	dig := digest.NewVideo()

	zero := dig.Hash()
	dig.Capture(dsp)
	blank := dig.Hash()
	test.ExpectInequality(t, blank, zero)

	// the same capture sequence produces the same value
	dig2 := digest.NewVideo()
	dig2.Capture(display.NewDisplay())
	test.ExpectEquality(t, dig2.Hash(), blank)

	// a changed display produces a different value
	dsp.Draw(0, 0, 0x80)
	dig.ResetDigest()
	dig.Capture(dsp)
	test.ExpectInequality(t, dig.Hash(), blank)
}

func TestVideoChaining(t *testing.T) {
	dsp := display.NewDisplay()

	// two captures of the same screen give a different value than one
	// capture. the history is part of the fingerprint
	a := digest.NewVideo()
	a.Capture(dsp)
	one := a.Hash()
	a.Capture(dsp)
	two := a.Hash()
	test.ExpectInequality(t, two, one)

	b := digest.NewVideo()
	b.Capture(dsp)
	b.Capture(dsp)
	test.ExpectEquality(t, b.Hash(), two)
}

func TestAudioDigest(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()

	// more samples than the internal buffer holds, to cross the chaining
	// boundary
	for i := 0; i < 3000; i++ {
		a.SetAudio(uint8(i % 2))
		b.SetAudio(uint8(i % 2))
	}
	a.Flush()
	b.Flush()
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), digest.NewAudio().Hash())

	// a different sample stream gives a different value
	c := digest.NewAudio()
	for i := 0; i < 3000; i++ {
		c.SetAudio(1)
	}
	c.Flush()
	test.ExpectInequality(t, c.Hash(), a.Hash())
}
