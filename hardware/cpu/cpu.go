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

package cpu

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/random"
)

// NumRegisters is the number of general purpose registers. The last of them,
// VF, doubles as the flags register but there is nothing stopping a program
// using it like any other.
const NumRegisters = 16

// State describes what the CPU will do on the next call to Tick().
type State int

// The CPU is in the New state from creation until the first program is
// attached. WaitingKey is entered by the instruction that blocks on keypad
// input and left as soon as a key is observed held.
const (
	New State = iota
	Running
	WaitingKey
)

func (s State) String() string {
	switch s {
	case New:
		return "new"
	case Running:
		return "running"
	case WaitingKey:
		return "waiting for key"
	}
	return "undefined"
}

// CPU implements the instruction core of the CHIP-8 machine. One call to
// Tick() is one instruction. Registers are exported so that the debugger can
// inspect and alter them freely.
type CPU struct {
	V  [NumRegisters]uint8
	I  memory.Address
	PC memory.Address

	Stack Stack

	// the timers count down to zero, one step per tick. pacing the countdown
	// against real time is the concern of whoever is calling Tick()
	DelayTimer uint8
	SoundTimer uint8

	State State

	// the register that will receive the key index when the WaitingKey state
	// ends. meaningless in any other state
	WaitKeyRegister uint8

	// last instruction fetched and executed by Tick(). the zero value means
	// the CPU has not executed anything since the last reset
	LastResult Result

	mem *memory.Memory
	dsp *display.Display
	kpd *keypad.Keypad
	rnd *random.Random
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem *memory.Memory, dsp *display.Display, kpd *keypad.Keypad, rnd *random.Random) *CPU {
	mc := &CPU{
		mem: mem,
		dsp: dsp,
		kpd: kpd,
		rnd: rnd,
	}
	mc.Reset()
	return mc
}

// Snapshot creates a copy of the CPU in its current state. The copy shares
// the collaborator components of the original.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new set of collaborators into the CPU. Useful after restoring a
// snapshotted CPU, which will still be pointing at the collaborators of the
// machine it was copied from.
func (mc *CPU) Plumb(mem *memory.Memory, dsp *display.Display, kpd *keypad.Keypad, rnd *random.Random) {
	mc.mem = mem
	mc.dsp = dsp
	mc.kpd = kpd
	mc.rnd = rnd
}

// Reset reinitialises all registers and empties the stack. The CPU is left
// in the New state, in which Tick() does nothing.
func (mc *CPU) Reset() {
	mc.V = [NumRegisters]uint8{}
	mc.I = memory.NewAddress(0)
	mc.PC = memory.EntryPoint
	mc.Stack.Clear()
	mc.DelayTimer = 0
	mc.SoundTimer = 0
	mc.State = New
	mc.WaitKeyRegister = 0
	mc.LastResult = Result{}
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%s I=%s DT=%02x ST=%02x (%s)\n",
		mc.PC, mc.I, mc.DelayTimer, mc.SoundTimer, mc.State))
	for i := 0; i < NumRegisters; i++ {
		if i == NumRegisters/2 {
			s.WriteRune('\n')
		} else if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("V%X=%02x", i, mc.V[i]))
	}
	return s.String()
}

// Tick runs the CPU for one instruction.
//
// In the New state nothing happens. In the WaitingKey state the keypad is
// scanned, lowest key index first; if nothing is held the tick ends
// immediately, before the timers, otherwise the key index is stored and the
// tick proceeds as normal.
//
// A normal tick decrements each nonzero timer, fetches the instruction at
// PC, advances PC past it and then executes it. Execution errors are
// returned to the caller undisturbed; the machine makes no attempt to
// recover on its own.
func (mc *CPU) Tick() error {
	switch mc.State {
	case New:
		return nil
	case WaitingKey:
		key, ok := mc.scanKeypad()
		if !ok {
			return nil
		}
		mc.V[mc.WaitKeyRegister] = key
		mc.State = Running
	}

	if mc.SoundTimer > 0 {
		mc.SoundTimer--
	}
	if mc.DelayTimer > 0 {
		mc.DelayTimer--
	}

	var fetch [2]uint8
	if err := mc.mem.ReadRange(mc.PC, fetch[:]); err != nil {
		return err
	}
	in := instructions.DecodeBytes(fetch[0], fetch[1])

	mc.LastResult = Result{
		Address:     mc.PC,
		Instruction: in,
	}

	if err := mc.PC.AddAssign(2); err != nil {
		return err
	}

	return mc.execute(in)
}

// scanKeypad looks for the first held key in ascending index order.
func (mc *CPU) scanKeypad() (uint8, bool) {
	for key := uint8(0); key < keypad.NumKeys; key++ {
		if mc.kpd.IsPressed(key) {
			return key, true
		}
	}
	return 0, false
}

// skip the next instruction. used by the conditional instruction group.
func (mc *CPU) skip() error {
	return mc.PC.AddAssign(2)
}

// execute is the single dispatch point for the instruction set. PC has
// already moved past the instruction; an instruction that changes the flow
// of the program does so on top of that.
//
// The ordering of register writes within each branch is deliberate and
// visible to programs that name VF as a target register. The flags register
// is not protected from any of this; a program that asks for "SUB VF, V1"
// gets the flag result and the subtraction applied to VF in that order.
func (mc *CPU) execute(in instructions.Instruction) error {
	switch in.Operation {
	case instructions.Cls:
		mc.dsp.Clear()

	case instructions.Ret:
		address, err := mc.Stack.Pop()
		if err != nil {
			return err
		}
		mc.PC = address

	case instructions.Sys, instructions.Call:
		if err := mc.Stack.Push(mc.PC); err != nil {
			return err
		}
		mc.PC = memory.NewAddress(in.NNN)

	case instructions.Jump:
		mc.PC = memory.NewAddress(in.NNN)

	case instructions.JumpV0:
		// the quirk in this instruction is retained: the offset is applied
		// to the already advanced PC rather than replacing it
		if err := mc.PC.AddAssign(in.NNN + uint16(mc.V[0x0])); err != nil {
			return err
		}

	case instructions.SkipEqualByte:
		if mc.V[in.X] == in.KK {
			return mc.skip()
		}

	case instructions.SkipNotEqualByte:
		if mc.V[in.X] != in.KK {
			return mc.skip()
		}

	case instructions.SkipEqualRegister:
		if mc.V[in.X] == mc.V[in.Y] {
			return mc.skip()
		}

	case instructions.SkipNotEqualRegister:
		if mc.V[in.X] != mc.V[in.Y] {
			return mc.skip()
		}

	case instructions.LoadByte:
		mc.V[in.X] = in.KK

	case instructions.AddByte:
		mc.V[in.X] += in.KK

	case instructions.LoadRegister:
		mc.V[in.X] = mc.V[in.Y]

	case instructions.Or:
		mc.V[in.X] |= mc.V[in.Y]

	case instructions.And:
		mc.V[in.X] &= mc.V[in.Y]

	case instructions.Xor:
		mc.V[in.X] ^= mc.V[in.Y]

	case instructions.AddRegister:
		result := uint16(mc.V[in.X]) + uint16(mc.V[in.Y])
		mc.V[in.X] = uint8(result)
		if result > 0xff {
			mc.V[0xf] = 1
		} else {
			mc.V[0xf] = 0
		}

	case instructions.Sub:
		var flag uint8
		if mc.V[in.X] > mc.V[in.Y] {
			flag = 1
		}
		mc.V[0xf] = flag
		mc.V[in.X] = mc.V[in.X] - mc.V[in.Y]

	case instructions.ShiftRight:
		mc.V[0xf] = mc.V[in.X] & 0x01
		mc.V[in.X] >>= 1

	case instructions.SubN:
		var flag uint8
		if mc.V[in.Y] > mc.V[in.X] {
			flag = 1
		}
		mc.V[0xf] = flag
		mc.V[in.X] = mc.V[in.Y] - mc.V[in.X]

	case instructions.ShiftLeft:
		mc.V[0xf] = (mc.V[in.X] >> 7) & 0x01
		mc.V[in.X] <<= 1

	case instructions.LoadI:
		mc.I = memory.NewAddress(in.NNN)

	case instructions.Random:
		mc.V[in.X] = mc.rnd.Next() & in.KK

	case instructions.Draw:
		mc.V[0xf] = 0
		x := mc.V[in.X]
		y := mc.V[in.Y] % display.Height
		for row := uint8(0); row < in.N; row++ {
			address := mc.I
			if err := address.AddAssign(uint16(row)); err != nil {
				return err
			}
			mc.V[0xf] |= mc.dsp.Draw(x, y+row, mc.mem.Read(address))
		}

	case instructions.SkipKeyPressed:
		if mc.kpd.IsPressed(mc.V[in.X]) {
			return mc.skip()
		}

	case instructions.SkipKeyNotPressed:
		if !mc.kpd.IsPressed(mc.V[in.X]) {
			return mc.skip()
		}

	case instructions.ReadDelay:
		mc.V[in.X] = mc.DelayTimer

	case instructions.WaitKey:
		mc.State = WaitingKey
		mc.WaitKeyRegister = in.X

	case instructions.SetDelay:
		mc.DelayTimer = mc.V[in.X]

	case instructions.SetSound:
		mc.SoundTimer = mc.V[in.X]

	case instructions.AddI:
		if err := mc.I.AddAssign(uint16(mc.V[in.X])); err != nil {
			return err
		}

	case instructions.LoadFont:
		mc.I = memory.NewAddress(uint16(mc.V[in.X]) * memory.FontHeight)

	case instructions.StoreBCD:
		digits := bcd(mc.V[in.X])
		if err := mc.mem.WriteRange(mc.I, digits[:]); err != nil {
			return err
		}

	case instructions.StoreRegisters:
		if err := mc.mem.WriteRange(mc.I, mc.V[:in.X+1]); err != nil {
			return err
		}

	case instructions.LoadRegisters:
		if err := mc.mem.ReadRange(mc.I, mc.V[:in.X+1]); err != nil {
			return err
		}

	case instructions.Unrecognized:
		logger.Logf(logger.Allow, "cpu", "unrecognized opcode %#04x at %s",
			in.Value, mc.LastResult.Address)
	}

	return nil
}

// bcd splits a value into its three decimal digits, most significant first.
func bcd(value uint8) [3]uint8 {
	return [3]uint8{
		value / 100,
		(value / 10) % 10,
		value % 10,
	}
}
