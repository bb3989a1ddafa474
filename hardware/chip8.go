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
	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/random"
)

// Chip8 is the main container for the emulated components of the machine.
type Chip8 struct {
	CPU *cpu.CPU
	Mem *memory.Memory
	Dsp *display.Display
	Kpd *keypad.Keypad
	Rnd *random.Random
}

// NewChip8 creates a new machine and everything associated with the hardware.
// It is used for all aspects of emulation: debugging sessions and regular
// play.
func NewChip8() *Chip8 {
	vm := &Chip8{
		Mem: memory.NewMemory(),
		Dsp: display.NewDisplay(),
		Kpd: keypad.NewKeypad(),
		Rnd: random.NewRandom(),
	}
	vm.CPU = cpu.NewCPU(vm.Mem, vm.Dsp, vm.Kpd, vm.Rnd)
	return vm
}

// AttachCartridge loads a cartridge into the emulated machine's memory and
// sets the machine running. The machine is reset beforehand, whether or not
// the load succeeds. An empty loader ejects the current cartridge, leaving
// the machine dormant.
func (vm *Chip8) AttachCartridge(cartload cartridgeloader.Loader) error {
	vm.Reset()

	if cartload.Filename == "" && len(cartload.Data) == 0 {
		return nil
	}

	if err := cartload.Load(); err != nil {
		return err
	}
	if err := vm.Mem.LoadROM(cartload.Data); err != nil {
		return err
	}

	vm.CPU.State = cpu.Running

	return nil
}

// Reset the machine to its dormant state. The program counter returns to the
// entry point and the display clears. Memory is left alone so the loaded
// program survives, but a program that modifies itself needs a fresh
// AttachCartridge() rather than a Reset().
//
// The keypad is not part of the reset. Keys are held by the user, not the
// machine.
func (vm *Chip8) Reset() {
	vm.CPU.Reset()
	vm.Dsp.Clear()
}

// Step the emulated machine one instruction. Detail about the executed
// instruction is in CPU.LastResult.
func (vm *Chip8) Step() error {
	return vm.CPU.Tick()
}
