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

package display

import (
	"iter"
	"strings"
)

// Width and Height of the display in pixels.
const (
	Width  = 64
	Height = 32
)

// Display is the monochrome 64x32 pixel grid of the machine.
type Display struct {
	grid [Height][Width]bool

	// Updated indicates that the grid has changed since the flag was last
	// cleared. The consumer of the display clears it. It exists so that a
	// renderer need only redraw when something has happened.
	Updated bool
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// Snapshot creates a copy of the Display in its current state.
func (dsp *Display) Snapshot() *Display {
	n := *dsp
	return &n
}

// Clear unsets every pixel.
func (dsp *Display) Clear() {
	dsp.grid = [Height][Width]bool{}
	dsp.Updated = true
}

// Draw XORs one row of eight pixels onto the grid, most-significant bit of
// value leftmost. The x coordinate of each pixel wraps at the right edge of
// the display and the y coordinate wraps at the bottom.
//
// The return value is the collision flag: 1 if any lit pixel was erased by
// the XOR, 0 otherwise.
func (dsp *Display) Draw(x uint8, y uint8, value uint8) uint8 {
	dsp.Updated = true

	var collision uint8

	row := int(y) % Height
	for bit := 0; bit < 8; bit++ {
		col := (int(x) + bit) % Width
		pixel := value&(0x80>>bit) != 0
		if dsp.grid[row][col] && pixel {
			collision = 1
		}
		dsp.grid[row][col] = dsp.grid[row][col] != pixel
	}

	return collision
}

// Get reads a single pixel.
func (dsp *Display) Get(x int, y int) bool {
	return dsp.grid[y][x]
}

// Grid returns a sequence over every pixel of the display in raster order:
// left to right along each row, rows top to bottom. Renderers should rely on
// that order. The sequence can be ranged over any number of times.
func (dsp *Display) Grid() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				if !yield(dsp.grid[y][x]) {
					return
				}
			}
		}
	}
}

func (dsp *Display) String() string {
	s := strings.Builder{}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if dsp.grid[y][x] {
				s.WriteRune('#')
			} else {
				s.WriteRune('.')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}
