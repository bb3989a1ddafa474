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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/test"
)

func TestDecodeOperands(t *testing.T) {
	in := instructions.Decode(0xd125)
	test.ExpectEquality(t, in.Operation, instructions.Draw)
	test.ExpectEquality(t, in.X, 0x1)
	test.ExpectEquality(t, in.Y, 0x2)
	test.ExpectEquality(t, in.N, 0x5)
	test.ExpectEquality(t, in.NNN, 0x125)
	test.ExpectEquality(t, in.KK, 0x25)
	test.ExpectEquality(t, in.Value, 0xd125)

	// DecodeBytes assembles the word big-endian
	test.ExpectEquality(t, instructions.DecodeBytes(0xd1, 0x25), in)
}

func TestDecodeOperations(t *testing.T) {
	for _, c := range []struct {
		value     uint16
		operation instructions.Operation
	}{
		{0x00e0, instructions.Cls},
		{0x00ee, instructions.Ret},
		{0x0123, instructions.Sys},
		{0x1abc, instructions.Jump},
		{0x2abc, instructions.Call},
		{0x31ff, instructions.SkipEqualByte},
		{0x41ff, instructions.SkipNotEqualByte},
		{0x5120, instructions.SkipEqualRegister},
		{0x61ff, instructions.LoadByte},
		{0x71ff, instructions.AddByte},
		{0x8120, instructions.LoadRegister},
		{0x8121, instructions.Or},
		{0x8122, instructions.And},
		{0x8123, instructions.Xor},
		{0x8124, instructions.AddRegister},
		{0x8125, instructions.Sub},
		{0x8126, instructions.ShiftRight},
		{0x8127, instructions.SubN},
		{0x812e, instructions.ShiftLeft},
		{0x9120, instructions.SkipNotEqualRegister},
		{0xaabc, instructions.LoadI},
		{0xbabc, instructions.JumpV0},
		{0xc1ff, instructions.Random},
		{0xd125, instructions.Draw},
		{0xe19e, instructions.SkipKeyPressed},
		{0xe1a1, instructions.SkipKeyNotPressed},
		{0xf107, instructions.ReadDelay},
		{0xf10a, instructions.WaitKey},
		{0xf115, instructions.SetDelay},
		{0xf118, instructions.SetSound},
		{0xf11e, instructions.AddI},
		{0xf129, instructions.LoadFont},
		{0xf133, instructions.StoreBCD},
		{0xf155, instructions.StoreRegisters},
		{0xf165, instructions.LoadRegisters},
	} {
		test.ExpectEquality(t, instructions.Decode(c.value).Operation, c.operation)
	}
}

func TestDecodeStrictness(t *testing.T) {
	// instruction groups with unused nibbles only decode for the defined
	// values
	for _, v := range []uint16{0x5121, 0x8128, 0x812f, 0x9125, 0xe100, 0xe1a2, 0xf100, 0xf166, 0xffff} {
		test.ExpectEquality(t, instructions.Decode(v).Operation, instructions.Unrecognized)
	}
}

func TestRendering(t *testing.T) {
	for _, c := range []struct {
		value    uint16
		rendered string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x0456, "SYS $456"},
		{0x1abc, "JP $ABC"},
		{0x2abc, "CALL $ABC"},
		{0x310a, "SE V1, $0A"},
		{0x410a, "SNE V1, $0A"},
		{0x5120, "SE V1, V2"},
		{0x610a, "LD V1, $0A"},
		{0x710a, "ADD V1, $0A"},
		{0x8120, "LD V1, V2"},
		{0x8121, "OR V1, V2"},
		{0x8122, "AND V1, V2"},
		{0x8123, "XOR V1, V2"},
		{0x8124, "ADD V1, V2"},
		{0x8125, "SUB V1, V2"},
		{0x8126, "SHR V1"},
		{0x8127, "SUBN V1, V2"},
		{0x812e, "SHL V1"},
		{0x9120, "SNE V1, V2"},
		{0xaabc, "LD I, $ABC"},
		{0xbabc, "JP V0, $ABC"},
		{0xc10a, "RND V1, $0A"},
		{0xd12f, "DRW V1, V2, $F"},
		{0xe19e, "SKP V1"},
		{0xe1a1, "SKNP V1"},
		{0xf107, "LD V1, DT"},
		{0xf10a, "LD V1, K"},
		{0xf115, "LD DT, V1"},
		{0xf118, "LD ST, V1"},
		{0xf11e, "ADD I, V1"},
		{0xf129, "LD F, V1"},
		{0xf133, "LD B, V1"},
		{0xf155, "LD [I], V1"},
		{0xf165, "LD V1, [I]"},
		{0x5121, "??? $5121"},
	} {
		test.ExpectEquality(t, instructions.Decode(c.value).String(), c.rendered)
	}
}
