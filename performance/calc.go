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
	"github.com/jetsetilly/gopher8/hardware/clocks"
)

// CalcTickRate takes a count of ticks and a duration (in seconds) and returns
// the ticks-per-second along with that value as a percentage of the nominal
// tick rate of the emulated machine.
func CalcTickRate(numTicks int, duration float64) (rate float64, accuracy float64) {
	rate = float64(numTicks) / duration
	accuracy = 100 * rate / float64(clocks.NominalTickRate)
	return rate, accuracy
}
