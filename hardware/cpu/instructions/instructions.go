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

import (
	"fmt"
	"strings"
)

// Operation identifies the distinct forms in the CHIP-8 instruction set. One
// mnemonic can cover several operations. LD in particular covers many.
type Operation int

// List of operations. Unrecognized is deliberately the zero value so an
// Instruction that has somehow escaped the decoder identifies itself.
const (
	Unrecognized Operation = iota
	Sys
	Cls
	Ret
	Jump
	JumpV0
	Call
	SkipEqualByte
	SkipNotEqualByte
	SkipEqualRegister
	SkipNotEqualRegister
	LoadByte
	AddByte
	LoadRegister
	Or
	And
	Xor
	AddRegister
	Sub
	ShiftRight
	SubN
	ShiftLeft
	LoadI
	Random
	Draw
	SkipKeyPressed
	SkipKeyNotPressed
	ReadDelay
	WaitKey
	SetDelay
	SetSound
	AddI
	LoadFont
	StoreBCD
	StoreRegisters
	LoadRegisters
)

// Instruction is a fully decoded instruction. Every operand field is
// populated from the instruction word whether the operation uses it or not.
// Operand fields are cheap to extract and a full Instruction is easier to
// work with in the debugger.
type Instruction struct {
	Operation Operation

	// the undecoded instruction word
	Value uint16

	// register operands
	X uint8
	Y uint8

	// literal operands. NNN is an address, KK an 8-bit value and N the height
	// of a sprite
	NNN uint16
	KK  uint8
	N   uint8
}

// Mnemonic returns the instruction mnemonic in the style used by most CHIP-8
// references.
func (in Instruction) Mnemonic() string {
	switch in.Operation {
	case Sys:
		return "SYS"
	case Cls:
		return "CLS"
	case Ret:
		return "RET"
	case Jump, JumpV0:
		return "JP"
	case Call:
		return "CALL"
	case SkipEqualByte, SkipEqualRegister:
		return "SE"
	case SkipNotEqualByte, SkipNotEqualRegister:
		return "SNE"
	case LoadByte, LoadRegister, LoadI, ReadDelay, WaitKey, SetDelay,
		SetSound, LoadFont, StoreBCD, StoreRegisters, LoadRegisters:
		return "LD"
	case AddByte, AddRegister, AddI:
		return "ADD"
	case Or:
		return "OR"
	case And:
		return "AND"
	case Xor:
		return "XOR"
	case Sub:
		return "SUB"
	case ShiftRight:
		return "SHR"
	case SubN:
		return "SUBN"
	case ShiftLeft:
		return "SHL"
	case Random:
		return "RND"
	case Draw:
		return "DRW"
	case SkipKeyPressed:
		return "SKP"
	case SkipKeyNotPressed:
		return "SKNP"
	}

	return "???"
}

// Operand returns the operand field of the instruction, formatted in the
// style used by most CHIP-8 references. The empty string if the operation
// takes no operand.
func (in Instruction) Operand() string {
	switch in.Operation {
	case Cls, Ret:
		return ""
	case Sys, Jump, Call:
		return fmt.Sprintf("$%03X", in.NNN)
	case JumpV0:
		return fmt.Sprintf("V0, $%03X", in.NNN)
	case SkipEqualByte, SkipNotEqualByte, LoadByte, AddByte, Random:
		return fmt.Sprintf("V%X, $%02X", in.X, in.KK)
	case SkipEqualRegister, SkipNotEqualRegister, LoadRegister, Or, And,
		Xor, AddRegister, Sub, SubN:
		return fmt.Sprintf("V%X, V%X", in.X, in.Y)
	case ShiftRight, ShiftLeft, SkipKeyPressed, SkipKeyNotPressed:
		return fmt.Sprintf("V%X", in.X)
	case LoadI:
		return fmt.Sprintf("I, $%03X", in.NNN)
	case Draw:
		return fmt.Sprintf("V%X, V%X, $%X", in.X, in.Y, in.N)
	case ReadDelay:
		return fmt.Sprintf("V%X, DT", in.X)
	case WaitKey:
		return fmt.Sprintf("V%X, K", in.X)
	case SetDelay:
		return fmt.Sprintf("DT, V%X", in.X)
	case SetSound:
		return fmt.Sprintf("ST, V%X", in.X)
	case AddI:
		return fmt.Sprintf("I, V%X", in.X)
	case LoadFont:
		return fmt.Sprintf("F, V%X", in.X)
	case StoreBCD:
		return fmt.Sprintf("B, V%X", in.X)
	case StoreRegisters:
		return fmt.Sprintf("[I], V%X", in.X)
	case LoadRegisters:
		return fmt.Sprintf("V%X, [I]", in.X)
	}

	return fmt.Sprintf("$%04X", in.Value)
}

func (in Instruction) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", in.Mnemonic(), in.Operand()))
}
