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

package random

import (
	"time"
)

// Knuth's MMIX constants. With these values the generator has a full period
// of 2^64 and, usefully for an 8-bit machine, the low byte of the state
// cycles through every value before repeating.
const (
	multiplier = 6364136223846793005
	increment  = 1442695040888963407
)

// seed used when the wall clock cannot provide one
const fallbackSeed = 5555

// Random is a linear congruential generator. The sequence from a given seed
// is deterministic but the seed normally varies from run to run.
type Random struct {
	state uint64
}

// NewRandom is the preferred method of initialisation for the Random type.
// The generator is seeded from the wall clock.
func NewRandom() *Random {
	seed := time.Now().UnixMicro()
	if seed < 0 {
		seed = fallbackSeed
	}
	return NewRandomWithSeed(uint64(seed))
}

// NewRandomWithSeed creates a Random with an explicit seed, for when the
// sequence must be predictable.
func NewRandomWithSeed(seed uint64) *Random {
	return &Random{
		state: seed,
	}
}

// Snapshot makes a copy of the generator in its current state.
func (rnd *Random) Snapshot() *Random {
	n := *rnd
	return &n
}

// Reseed restarts the generator at the sequence produced by the given seed.
// The regression runner uses this to see the same sequence on every run.
func (rnd *Random) Reseed(seed uint64) {
	rnd.state = seed
}

// Next advances the generator and returns the low 8 bits of the new state.
func (rnd *Random) Next() uint8 {
	rnd.state = rnd.state*multiplier + increment
	return uint8(rnd.state)
}
