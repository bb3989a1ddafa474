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

package memory

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Size of addressable memory in bytes.
const Size = 4096

// FontHeight is the number of bytes (and therefore drawn rows) in a single
// character of the font table.
const FontHeight = 5

// The font table. Sixteen characters, 0 to F, of FontHeight bytes each. Each
// byte is one row of the character, most-significant bit leftmost.
var fontTable = [...]uint8{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}

// OutOfBounds is returned when a range read or write would exceed the size of
// memory.
var OutOfBounds = errors.New("memory access out of bounds")

// RomTooLarge is returned when a ROM will not fit in the program space
// between EntryPoint and Memtop.
var RomTooLarge = errors.New("ROM too large")

// Memory is the full 4KB address space of the machine. The font table
// occupies the reserved area below EntryPoint.
type Memory struct {
	RAM []uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{
		RAM: make([]uint8, Size),
	}
	mem.Reset()
	return mem
}

// Snapshot creates a copy of Memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	n.RAM = make([]uint8, len(mem.RAM))
	copy(n.RAM, mem.RAM)
	return &n
}

// Reset zeroes all of memory and rewrites the font table.
func (mem *Memory) Reset() {
	for i := range mem.RAM {
		mem.RAM[i] = 0
	}
	copy(mem.RAM[FontOrigin.Inner():], fontTable[:])
}

// LoadROM resets memory and copies the program into place at EntryPoint.
// A program larger than the space between EntryPoint and Memtop fails with
// RomTooLarge. Memory has already been reset by that point so a failed load
// leaves only the font table in place.
func (mem *Memory) LoadROM(data []uint8) error {
	mem.Reset()

	if len(data) > Size-int(EntryPoint.Inner()) {
		return fmt.Errorf("memory: %w (%d bytes exceeds %d byte program space)",
			RomTooLarge, len(data), Size-int(EntryPoint.Inner()))
	}

	copy(mem.RAM[EntryPoint.Inner():], data)
	return nil
}

// Read returns the single byte at the given address. The Address type cannot
// point outside of memory so no error is possible.
func (mem *Memory) Read(address Address) uint8 {
	return mem.RAM[address.Inner()]
}

// Write replaces the single byte at the given address.
func (mem *Memory) Write(address Address, data uint8) {
	mem.RAM[address.Inner()] = data
}

// WriteRange copies data into memory starting at the given address. The copy
// fails with OutOfBounds, and memory is left untouched, if it would continue
// past the end of memory.
func (mem *Memory) WriteRange(address Address, data []uint8) error {
	if int(address.Inner())+len(data) > Size {
		return fmt.Errorf("memory: %w (%d bytes from %s)", OutOfBounds, len(data), address)
	}
	copy(mem.RAM[address.Inner():], data)
	return nil
}

// ReadRange copies memory starting at the given address into data, filling
// it. The copy fails with OutOfBounds if it would continue past the end of
// memory.
func (mem *Memory) ReadRange(address Address, data []uint8) error {
	if int(address.Inner())+len(data) > Size {
		return fmt.Errorf("memory: %w (%d bytes from %s)", OutOfBounds, len(data), address)
	}
	copy(data, mem.RAM[address.Inner():])
	return nil
}

func (mem *Memory) String() string {
	return hex.Dump(mem.RAM)
}
