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

package hardware

// While the continueCheck() function passed to Run() only runs once per tick,
// it can still be expensive to do a full continue check every time. The
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	ct := 0
//	vm.Run(func() (bool, error) {
//		ct++
//		if ct%hardware.PerformanceBrake == 0 {
//			// check required conditions
//		}
//		return true, nil
//	})
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. continueCheck()
// should return false when an external event (eg. a GUI event) indicates that
// the emulation should stop.
func (vm *Chip8) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) {
			return true, nil
		}
	}

	var err error

	cont := true
	for cont {
		if err = vm.CPU.Tick(); err != nil {
			return err
		}
		cont, err = continueCheck()
	}

	return err
}

// RunForTickCount sets emulation running for the specified number of
// instructions.
//   - not used by the debugger because traps are more flexible
//   - useful for regression tests
func (vm *Chip8) RunForTickCount(numTicks int) error {
	for i := 0; i < numTicks; i++ {
		if err := vm.CPU.Tick(); err != nil {
			return err
		}
	}
	return nil
}
