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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/keypad"
	"github.com/jetsetilly/gopher8/hardware/memory"
	"github.com/jetsetilly/gopher8/random"
	"github.com/jetsetilly/gopher8/test"
)

// bench assembles a CPU with real collaborator components and a program in
// memory, ready to tick
type bench struct {
	mc  *cpu.CPU
	mem *memory.Memory
	dsp *display.Display
	kpd *keypad.Keypad
}

func startBench(t *testing.T, program ...uint8) *bench {
	t.Helper()

	b := &bench{
		mem: memory.NewMemory(),
		dsp: display.NewDisplay(),
		kpd: keypad.NewKeypad(),
	}
	b.mc = cpu.NewCPU(b.mem, b.dsp, b.kpd, random.NewRandomWithSeed(1))

	if err := b.mem.LoadROM(program); err != nil {
		t.Fatal(err)
	}
	b.mc.State = cpu.Running

	return b
}

func (b *bench) step(t *testing.T) {
	t.Helper()
	if err := b.mc.Tick(); err != nil {
		t.Fatal(err)
	}
}

func (b *bench) litPixels() int {
	lit := 0
	for pixel := range b.dsp.Grid() {
		if pixel {
			lit++
		}
	}
	return lit
}

func TestNewState(t *testing.T) {
	mc := cpu.NewCPU(memory.NewMemory(), display.NewDisplay(), keypad.NewKeypad(),
		random.NewRandomWithSeed(1))

	// with no program attached ticks do nothing at all
	test.ExpectEquality(t, mc.State, cpu.New)
	for i := 0; i < 10; i++ {
		test.ExpectedSuccess(t, mc.Tick())
	}
	test.ExpectEquality(t, mc.PC, memory.EntryPoint)
	test.ExpectEquality(t, mc.LastResult, cpu.Result{})
}

func TestLoadByte(t *testing.T) {
	b := startBench(t,
		0x61, 0x2a, // LD V1, $2A
		0x6f, 0x99, // LD VF, $99
	)

	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x2a)

	// VF is a register like any other
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0xf], 0x99)
}

func TestAddByte(t *testing.T) {
	b := startBench(t,
		0x61, 0xfe, // LD V1, $FE
		0x71, 0x01, // ADD V1, $01
		0x71, 0x05, // ADD V1, $05
	)

	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0xff)

	// the immediate add wraps and does not touch the flags register
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x04)
	test.ExpectEquality(t, b.mc.V[0xf], 0x00)
}

func TestAddRegisterCarry(t *testing.T) {
	b := startBench(t,
		0x61, 0xff, // LD V1, $FF
		0x62, 0x01, // LD V2, $01
		0x81, 0x24, // ADD V1, V2
		0x61, 0x01, // LD V1, $01
		0x81, 0x24, // ADD V1, V2
	)

	b.step(t)
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x00)
	test.ExpectEquality(t, b.mc.V[0xf], 0x01)

	// no carry clears the flag again
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x02)
	test.ExpectEquality(t, b.mc.V[0xf], 0x00)
}

func TestSubBorrow(t *testing.T) {
	b := startBench(t,
		0x61, 0x05, // LD V1, $05
		0x62, 0x0a, // LD V2, $0A
		0x81, 0x25, // SUB V1, V2
		0x61, 0x0a, // LD V1, $0A
		0x62, 0x05, // LD V2, $05
		0x81, 0x25, // SUB V1, V2
		0x62, 0x05, // LD V2, $05
		0x81, 0x25, // SUB V1, V2
	)

	// subtrahend larger: result wraps and the flag is left unset
	b.step(t)
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0xfb)
	test.ExpectEquality(t, b.mc.V[0xf], 0x00)

	// minuend larger: flag set
	b.step(t)
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x05)
	test.ExpectEquality(t, b.mc.V[0xf], 0x01)

	// equal operands: the comparison is strict so the flag is unset
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x00)
	test.ExpectEquality(t, b.mc.V[0xf], 0x00)
}

func TestSubN(t *testing.T) {
	b := startBench(t,
		0x61, 0x05, // LD V1, $05
		0x62, 0x0a, // LD V2, $0A
		0x81, 0x27, // SUBN V1, V2
		0x61, 0x0a, // LD V1, $0A
		0x62, 0x05, // LD V2, $05
		0x81, 0x27, // SUBN V1, V2
	)

	b.step(t)
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x05)
	test.ExpectEquality(t, b.mc.V[0xf], 0x01)

	b.step(t)
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0xfb)
	test.ExpectEquality(t, b.mc.V[0xf], 0x00)
}

func TestShifts(t *testing.T) {
	b := startBench(t,
		0x61, 0x03, // LD V1, $03
		0x81, 0x06, // SHR V1
		0x61, 0x81, // LD V1, $81
		0x81, 0x0e, // SHL V1
		0x81, 0x0e, // SHL V1
	)

	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x01)
	test.ExpectEquality(t, b.mc.V[0xf], 0x01)

	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x02)
	test.ExpectEquality(t, b.mc.V[0xf], 0x01)

	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x04)
	test.ExpectEquality(t, b.mc.V[0xf], 0x00)
}

func TestLogicalGroup(t *testing.T) {
	b := startBench(t,
		0x61, 0x0f, // LD V1, $0F
		0x62, 0x35, // LD V2, $35
		0x83, 0x10, // LD V3, V1
		0x83, 0x21, // OR V3, V2
		0x84, 0x10, // LD V4, V1
		0x84, 0x22, // AND V4, V2
		0x85, 0x10, // LD V5, V1
		0x85, 0x23, // XOR V5, V2
	)

	for i := 0; i < 8; i++ {
		b.step(t)
	}
	test.ExpectEquality(t, b.mc.V[0x3], 0x3f)
	test.ExpectEquality(t, b.mc.V[0x4], 0x05)
	test.ExpectEquality(t, b.mc.V[0x5], 0x3a)
}

func TestSkips(t *testing.T) {
	b := startBench(t,
		0x61, 0x05, // 0x200  LD V1, $05
		0x31, 0x05, // 0x202  SE V1, $05    taken
		0x00, 0x00, // 0x204  (skipped)
		0x41, 0x05, // 0x206  SNE V1, $05   not taken
		0x31, 0x06, // 0x208  SE V1, $06    not taken
		0x62, 0x05, // 0x20a  LD V2, $05
		0x51, 0x20, // 0x20c  SE V1, V2     taken
		0x00, 0x00, // 0x20e  (skipped)
		0x91, 0x20, // 0x210  SNE V1, V2    not taken
	)

	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x206)
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x208)
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x20a)
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x210)
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x212)
}

func TestCallReturn(t *testing.T) {
	b := startBench(t,
		0x22, 0x08, // 0x200  CALL $208
		0x00, 0x00, // 0x202
		0x00, 0x00, // 0x204
		0x00, 0x00, // 0x206
		0x00, 0xee, // 0x208  RET
	)

	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x208)
	test.ExpectEquality(t, b.mc.Stack.Len(), 1)

	// RET resumes at the instruction after the CALL
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x202)
	test.ExpectEquality(t, b.mc.Stack.Len(), 0)
}

func TestJump(t *testing.T) {
	b := startBench(t,
		0x12, 0x08, // 0x200  JP $208
	)

	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x208)
	test.ExpectEquality(t, b.mc.Stack.Len(), 0)
}

// the offset jump applies its operand to the already advanced PC rather than
// replacing it. real programs rarely notice but the behaviour is kept
// because it is observable
func TestJumpV0Additive(t *testing.T) {
	b := startBench(t,
		0x60, 0x04, // 0x200  LD V0, $04
		0xb1, 0x00, // 0x202  JP V0, $100
	)

	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x204+0x100+0x04)
}

func TestDrawCollision(t *testing.T) {
	b := startBench(t,
		0xf0, 0x29, // LD F, V0
		0xd1, 0x25, // DRW V1, V2, $5
		0xd1, 0x25, // DRW V1, V2, $5
	)

	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0xf], 0x00)
	test.ExpectEquality(t, b.dsp.Get(0, 0), true)

	// the same sprite at the same place XORs everything away again and
	// reports the erasure
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0xf], 0x01)
	test.ExpectEquality(t, b.litPixels(), 0)
}

func TestDrawWrapsColumns(t *testing.T) {
	b := startBench(t,
		0x61, 0x3f, // LD V1, $3F
		0xf0, 0x29, // LD F, V0
		0xd1, 0x21, // DRW V1, V2, $1
	)

	b.step(t)
	b.step(t)
	b.step(t)

	// the top row of the 0 glyph is $F0: four lit pixels starting at x=63
	test.ExpectEquality(t, b.dsp.Get(63, 0), true)
	test.ExpectEquality(t, b.dsp.Get(0, 0), true)
	test.ExpectEquality(t, b.dsp.Get(1, 0), true)
	test.ExpectEquality(t, b.dsp.Get(2, 0), true)
	test.ExpectEquality(t, b.dsp.Get(3, 0), false)
}

func TestDrawWrapsRows(t *testing.T) {
	b := startBench(t,
		0x61, 0x00, // 0x200  LD V1, $00
		0x62, 0x1f, // 0x202  LD V2, $1F
		0xa2, 0x0a, // 0x204  LD I, $20A
		0xd1, 0x22, // 0x206  DRW V1, V2, $2
		0x00, 0x00, // 0x208
		0x80, 0x80, // 0x20a  sprite data
	)

	b.step(t)
	b.step(t)
	b.step(t)
	b.step(t)

	// the first sprite row lands on the bottom row of the display and the
	// second wraps back to the top
	test.ExpectEquality(t, b.dsp.Get(0, 31), true)
	test.ExpectEquality(t, b.dsp.Get(0, 0), true)
	test.ExpectEquality(t, b.litPixels(), 2)
}

func TestClearScreen(t *testing.T) {
	b := startBench(t,
		0xf0, 0x29, // LD F, V0
		0xd1, 0x25, // DRW V1, V2, $5
		0x00, 0xe0, // CLS
	)

	b.step(t)
	b.step(t)
	test.ExpectInequality(t, b.litPixels(), 0)
	b.dsp.Updated = false

	b.step(t)
	test.ExpectEquality(t, b.litPixels(), 0)
	test.ExpectEquality(t, b.dsp.Updated, true)
}

func TestTimers(t *testing.T) {
	b := startBench(t,
		0x61, 0x05, // LD V1, $05
		0xf1, 0x15, // LD DT, V1
		0xf1, 0x18, // LD ST, V1
		0xf2, 0x07, // LD V2, DT
	)

	// timers at zero stay at zero
	b.step(t)
	test.ExpectEquality(t, b.mc.DelayTimer, 0x00)

	b.step(t)
	test.ExpectEquality(t, b.mc.DelayTimer, 0x05)

	// each timer decrements at the top of the tick, before the instruction
	b.step(t)
	test.ExpectEquality(t, b.mc.DelayTimer, 0x04)
	test.ExpectEquality(t, b.mc.SoundTimer, 0x05)

	b.step(t)
	test.ExpectEquality(t, b.mc.DelayTimer, 0x03)
	test.ExpectEquality(t, b.mc.SoundTimer, 0x04)
	test.ExpectEquality(t, b.mc.V[0x2], 0x03)
}

func TestWaitKey(t *testing.T) {
	b := startBench(t,
		0xf1, 0x0a, // 0x200  LD V1, K
		0x62, 0x05, // 0x202  LD V2, $05
	)
	b.mc.DelayTimer = 10

	b.step(t)
	test.ExpectEquality(t, b.mc.State, cpu.WaitingKey)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x202)
	test.ExpectEquality(t, b.mc.DelayTimer, 0x09)

	// while nothing is held the machine is frozen. no PC movement and no
	// timer countdown
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.State, cpu.WaitingKey)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x202)
	test.ExpectEquality(t, b.mc.DelayTimer, 0x09)

	// the lowest held key index wins. the same tick carries on to run the
	// next instruction
	b.kpd.Press(0xa)
	b.kpd.Press(0x3)
	b.step(t)
	test.ExpectEquality(t, b.mc.State, cpu.Running)
	test.ExpectEquality(t, b.mc.V[0x1], 0x03)
	test.ExpectEquality(t, b.mc.V[0x2], 0x05)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x204)
	test.ExpectEquality(t, b.mc.DelayTimer, 0x08)
}

func TestSkipKeys(t *testing.T) {
	b := startBench(t,
		0x61, 0x05, // 0x200  LD V1, $05
		0xe1, 0x9e, // 0x202  SKP V1     taken
		0x00, 0x00, // 0x204  (skipped)
		0xe1, 0xa1, // 0x206  SKNP V1    not taken
		0xe1, 0xa1, // 0x208  SKNP V1    taken after release
	)

	b.kpd.Press(0x5)
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x206)
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x208)

	b.kpd.Release(0x5)
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x20c)
}

func TestReadDelay(t *testing.T) {
	b := startBench(t,
		0xf1, 0x07, // LD V1, DT
	)
	b.mc.DelayTimer = 0x20

	// the read sees the value after this tick's decrement
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x1f)
}

func TestFontAddress(t *testing.T) {
	b := startBench(t,
		0x61, 0x0a, // LD V1, $0A
		0xf1, 0x29, // LD F, V1
	)

	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.I.Inner(), 10*memory.FontHeight)
}

func TestBCD(t *testing.T) {
	b := startBench(t,
		0x61, 0x7b, // LD V1, $7B
		0xa2, 0x0a, // LD I, $20A
		0xf1, 0x33, // LD B, V1
	)

	b.step(t)
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mem.Read(memory.NewAddress(0x20a)), 1)
	test.ExpectEquality(t, b.mem.Read(memory.NewAddress(0x20b)), 2)
	test.ExpectEquality(t, b.mem.Read(memory.NewAddress(0x20c)), 3)
}

func TestStoreLoadRegisters(t *testing.T) {
	b := startBench(t,
		0x60, 0x0a, // LD V0, $0A
		0x61, 0x0b, // LD V1, $0B
		0x62, 0x0c, // LD V2, $0C
		0x63, 0x0d, // LD V3, $0D
		0xa2, 0x40, // LD I, $240
		0xf3, 0x55, // LD [I], V3
		0x60, 0x00, // LD V0, $00
		0x63, 0x00, // LD V3, $00
		0xf3, 0x65, // LD V3, [I]
	)

	for i := 0; i < 6; i++ {
		b.step(t)
	}

	// the store is inclusive of the named register and nothing beyond it
	test.ExpectEquality(t, b.mem.Read(memory.NewAddress(0x240)), 0x0a)
	test.ExpectEquality(t, b.mem.Read(memory.NewAddress(0x243)), 0x0d)
	test.ExpectEquality(t, b.mem.Read(memory.NewAddress(0x244)), 0x00)

	b.step(t)
	b.step(t)
	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x0], 0x0a)
	test.ExpectEquality(t, b.mc.V[0x3], 0x0d)
	test.ExpectEquality(t, b.mc.V[0x4], 0x00)
}

func TestRandomMask(t *testing.T) {
	b := startBench(t,
		0xc1, 0x0f, // RND V1, $0F
	)

	// the bench seeds its generator with 1 so the value is predictable
	rnd := random.NewRandomWithSeed(1)
	expected := rnd.Next() & 0x0f

	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], expected)
}

func TestUnrecognizedOpcode(t *testing.T) {
	b := startBench(t,
		0x51, 0x21, // no such instruction
		0x61, 0x0a, // LD V1, $0A
	)

	// execution carries on: PC advances and nothing else changes
	b.step(t)
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x202)
	test.ExpectEquality(t, b.mc.V, [16]uint8{})
	test.ExpectEquality(t, b.mc.I.Inner(), 0x000)
	test.ExpectEquality(t, b.mc.Stack.Len(), 0)
	test.ExpectEquality(t, b.litPixels(), 0)

	b.step(t)
	test.ExpectEquality(t, b.mc.V[0x1], 0x0a)
}

func TestAddIOutOfRange(t *testing.T) {
	b := startBench(t,
		0x61, 0xff, // LD V1, $FF
		0xaf, 0xff, // LD I, $FFF
		0xf1, 0x1e, // ADD I, V1
	)

	b.step(t)
	b.step(t)
	err := b.mc.Tick()
	test.ExpectedFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, memory.AddressOutOfRange), true)

	// the failed instruction has still been consumed
	test.ExpectEquality(t, b.mc.PC.Inner(), 0x206)
}

func TestStackOverflow(t *testing.T) {
	b := startBench(t,
		0x22, 0x00, // 0x200  CALL $200
	)

	for i := 0; i < cpu.StackDepth; i++ {
		b.step(t)
	}
	test.ExpectEquality(t, b.mc.Stack.Len(), cpu.StackDepth)

	err := b.mc.Tick()
	test.ExpectedFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, cpu.StackOverflow), true)
}

func TestStackUnderflow(t *testing.T) {
	b := startBench(t,
		0x00, 0xee, // RET
	)

	err := b.mc.Tick()
	test.ExpectedFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, cpu.StackUnderflow), true)
}

func TestFetchAtTopOfMemory(t *testing.T) {
	b := startBench(t)

	// a two byte fetch from the very last byte of memory must fail rather
	// than wrap
	b.mc.PC = memory.NewAddress(0xfff)
	err := b.mc.Tick()
	test.ExpectedFailure(t, err)
	test.ExpectEquality(t, errors.Is(err, memory.OutOfBounds), true)
}

func TestLastResult(t *testing.T) {
	b := startBench(t,
		0x61, 0x2a, // LD V1, $2A
	)

	b.step(t)
	test.ExpectEquality(t, b.mc.LastResult.Address.Inner(), 0x200)
	test.ExpectEquality(t, b.mc.LastResult.Instruction.String(), "LD V1, $2A")
	test.ExpectEquality(t, b.mc.LastResult.String(), "0x200  LD V1, $2A")
}

func TestReset(t *testing.T) {
	b := startBench(t,
		0x61, 0x2a, // LD V1, $2A
		0x22, 0x08, // CALL $208
	)

	b.step(t)
	b.step(t)
	test.ExpectInequality(t, b.mc.PC, memory.EntryPoint)

	b.mc.Reset()
	test.ExpectEquality(t, b.mc.PC, memory.EntryPoint)
	test.ExpectEquality(t, b.mc.V, [16]uint8{})
	test.ExpectEquality(t, b.mc.Stack.Len(), 0)
	test.ExpectEquality(t, b.mc.State, cpu.New)
}
