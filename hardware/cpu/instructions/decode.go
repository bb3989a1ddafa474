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

package instructions

// Decode turns a 16-bit instruction word into an Instruction. Decoding never
// fails. A word with no meaning in the instruction set produces an
// Instruction with the Unrecognized operation.
//
// Decoding is strict: the instruction groups that leave nibbles unused (the
// 5xy0 and 9xy0 skips, the 8xyn arithmetic group and the Exxx/Fxxx groups)
// only decode for the defined nibble values.
func Decode(value uint16) Instruction {
	in := Instruction{
		Value: value,
		X:     uint8((value & 0x0f00) >> 8),
		Y:     uint8((value & 0x00f0) >> 4),
		NNN:   value & 0x0fff,
		KK:    uint8(value & 0x00ff),
		N:     uint8(value & 0x000f),
	}

	switch value & 0xf000 {
	case 0x0000:
		switch value {
		case 0x00e0:
			in.Operation = Cls
		case 0x00ee:
			in.Operation = Ret
		default:
			in.Operation = Sys
		}
	case 0x1000:
		in.Operation = Jump
	case 0x2000:
		in.Operation = Call
	case 0x3000:
		in.Operation = SkipEqualByte
	case 0x4000:
		in.Operation = SkipNotEqualByte
	case 0x5000:
		if in.N == 0x0 {
			in.Operation = SkipEqualRegister
		}
	case 0x6000:
		in.Operation = LoadByte
	case 0x7000:
		in.Operation = AddByte
	case 0x8000:
		switch in.N {
		case 0x0:
			in.Operation = LoadRegister
		case 0x1:
			in.Operation = Or
		case 0x2:
			in.Operation = And
		case 0x3:
			in.Operation = Xor
		case 0x4:
			in.Operation = AddRegister
		case 0x5:
			in.Operation = Sub
		case 0x6:
			in.Operation = ShiftRight
		case 0x7:
			in.Operation = SubN
		case 0xe:
			in.Operation = ShiftLeft
		}
	case 0x9000:
		if in.N == 0x0 {
			in.Operation = SkipNotEqualRegister
		}
	case 0xa000:
		in.Operation = LoadI
	case 0xb000:
		in.Operation = JumpV0
	case 0xc000:
		in.Operation = Random
	case 0xd000:
		in.Operation = Draw
	case 0xe000:
		switch in.KK {
		case 0x9e:
			in.Operation = SkipKeyPressed
		case 0xa1:
			in.Operation = SkipKeyNotPressed
		}
	case 0xf000:
		switch in.KK {
		case 0x07:
			in.Operation = ReadDelay
		case 0x0a:
			in.Operation = WaitKey
		case 0x15:
			in.Operation = SetDelay
		case 0x18:
			in.Operation = SetSound
		case 0x1e:
			in.Operation = AddI
		case 0x29:
			in.Operation = LoadFont
		case 0x33:
			in.Operation = StoreBCD
		case 0x55:
			in.Operation = StoreRegisters
		case 0x65:
			in.Operation = LoadRegisters
		}
	}

	return in
}

// DecodeBytes decodes the big-endian instruction word formed from two
// adjacent bytes of memory.
func DecodeBytes(upper uint8, lower uint8) Instruction {
	return Decode(uint16(upper)<<8 | uint16(lower))
}
