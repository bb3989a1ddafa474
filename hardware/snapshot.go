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

import (
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/random"
)

// State stores a copy of the machine's sub-systems. It is produced by the
// Snapshot() function and can be restored with the Plumb() function.
//
// The random generator is part of the snapshot so that a restored machine
// replays the same number sequence. The keypad is not. Key state belongs to
// whoever is pressing the keys.
type State struct {
	CPU *cpu.CPU
	Mem *memory.Memory
	Dsp *display.Display
	Rnd *random.Random
}

// Snapshot creates a copy of a previously snapshotted machine State.
func (s *State) Snapshot() *State {
	return &State{
		CPU: s.CPU.Snapshot(),
		Mem: s.Mem.Snapshot(),
		Dsp: s.Dsp.Snapshot(),
		Rnd: s.Rnd.Snapshot(),
	}
}

// Snapshot the state of the machine's sub-systems.
func (vm *Chip8) Snapshot() *State {
	return &State{
		CPU: vm.CPU.Snapshot(),
		Mem: vm.Mem.Snapshot(),
		Dsp: vm.Dsp.Snapshot(),
		Rnd: vm.Rnd.Snapshot(),
	}
}

// Plumb a previously snapshotted state into the machine.
func (vm *Chip8) Plumb(state *State) {
	if state == nil {
		panic("chip8: cannot plumb in a nil state")
	}

	// take another snapshot of the state before plumbing. the running machine
	// must not change what the caller has stored
	vm.CPU = state.CPU.Snapshot()
	vm.Mem = state.Mem.Snapshot()
	vm.Dsp = state.Dsp.Snapshot()
	vm.Rnd = state.Rnd.Snapshot()

	vm.CPU.Plumb(vm.Mem, vm.Dsp, vm.Kpd, vm.Rnd)

	// the restored display contents need to reach the screen
	vm.Dsp.Updated = true
}
