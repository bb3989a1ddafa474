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

package disassembly

import (
	"github.com/jetsetilly/gopher8/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// lastEntryAddress returns the highest address an instruction could start at
// in a program of the given size. instructions are two bytes wide so the
// second byte must also be inside both the program and the address space.
func lastEntryAddress(size int) int {
	top := int(memory.EntryPoint.Inner()) + size - 2
	if top > int(memory.Memtop.Inner())-1 {
		top = int(memory.Memtop.Inner()) - 1
	}
	return top
}

// decode works through the program region as though every address holds an
// instruction. the machine does not enforce alignment so the pass cannot
// assume it, meaning that neighbouring entries overlap by one byte.
func (dsm *Disassembly) decode(mem *memory.Memory, size int) {
	origin := int(memory.EntryPoint.Inner())
	top := lastEntryAddress(size)

	for a := origin; a <= top; a++ {
		address := memory.NewAddress(uint16(a))
		next := memory.NewAddress(uint16(a + 1))
		dsm.reference[a] = &Entry{
			Level:       EntryLevelDecoded,
			Address:     address,
			Instruction: instructions.DecodeBytes(mem.Read(address), mem.Read(next)),
		}
	}
}

// bless upgrades the entries that can be reached from the entry point by
// following the static flow of the program. dynamic flow, the offset jump in
// particular, cannot be followed so the pass is conservative. an entry that
// stays at the decoded level may yet turn out to be a real instruction, which
// the ExecutedEntry() function deals with.
func (dsm *Disassembly) bless(size int) {
	origin := int(memory.EntryPoint.Inner())
	top := lastEntryAddress(size)

	inRegion := func(a int) bool {
		return a >= origin && a <= top
	}

	stack := []int{origin}
	var seen [memory.Size]bool

	for len(stack) > 0 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !inRegion(a) || seen[a] {
			continue
		}
		seen[a] = true

		e := dsm.reference[a]
		e.Level = EntryLevelBlessed

		in := e.Instruction
		switch in.Operation {
		case instructions.Jump:
			stack = append(stack, int(in.NNN))

		case instructions.JumpV0:
			// the target depends on the contents of V0 at run time

		case instructions.Ret:
			// the return address is on the caller's side

		case instructions.Unrecognized:
			// probably data. flow ends here

		case instructions.Sys, instructions.Call:
			// both are subroutine calls in this machine. follow the call and
			// assume the subroutine returns
			stack = append(stack, int(in.NNN), a+2)

		case instructions.SkipEqualByte, instructions.SkipNotEqualByte,
			instructions.SkipEqualRegister, instructions.SkipNotEqualRegister,
			instructions.SkipKeyPressed, instructions.SkipKeyNotPressed:
			stack = append(stack, a+2, a+4)

		default:
			stack = append(stack, a+2)
		}
	}
}
