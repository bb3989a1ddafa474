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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandomWithSeed(100)
	b := random.NewRandomWithSeed(100)

	// the same seed produces the same sequence
	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, a.Next(), b.Next())
	}
}

func TestReseed(t *testing.T) {
	a := random.NewRandomWithSeed(100)
	b := random.NewRandom()

	// a reseeded generator forgets its history
	_ = b.Next()
	_ = b.Next()
	b.Reseed(100)

	for i := 0; i < 256; i++ {
		test.ExpectEquality(t, a.Next(), b.Next())
	}
}

func TestFullPeriodLowByte(t *testing.T) {
	// the low byte of the generator state has a full period of 256, meaning
	// that any run of 256 values is a permutation of 0 to 255. this holds
	// whatever the seed so the clock-seeded generator is fine here
	rnd := random.NewRandom()

	var seen [256]bool
	for i := 0; i < 256; i++ {
		seen[rnd.Next()] = true
	}

	for i := range seen {
		test.ExpectEquality(t, seen[i], true)
	}
}
