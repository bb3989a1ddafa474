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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher8/hardware/display"
)

// Video produces a SHA-1 value from the contents of the display. The use of
// SHA-1 is fine for this application because this is not a cryptographic
// task.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	dig := &Video{}

	// the pixel array leaves room at the head for the previous capture's
	// digest value
	dig.pixels = make([]byte, sha1.Size+display.Width*display.Height)

	return dig
}

// Hash implements the digest.Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the digest.Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [sha1.Size]byte{}
}

// Capture folds the current contents of the display into the digest chain.
func (dig *Video) Capture(dsp *display.Display) {
	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the pixel data
	copy(dig.pixels, dig.digest[:])

	i := sha1.Size
	for pixel := range dsp.Grid() {
		if pixel {
			dig.pixels[i] = 1
		} else {
			dig.pixels[i] = 0
		}
		i++
	}

	dig.digest = sha1.Sum(dig.pixels)
}
