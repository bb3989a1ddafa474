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
	"errors"
	"fmt"
)

// Address represents a location in the 12-bit CHIP-8 address space.
type Address uint16

// The boundaries of the address space. Memtop is the highest addressable
// location. EntryPoint is where program execution begins after a ROM has been
// loaded. Addresses below EntryPoint are reserved, most notably for the font
// table at FontOrigin.
const (
	Memtop     = Address(0x0fff)
	EntryPoint = Address(0x0200)
	FontOrigin = Address(0x0000)
)

// AddressOutOfRange is returned when address arithmetic would leave the
// addressable space. The address is left unchanged in that case.
var AddressOutOfRange = errors.New("address out of range")

// NewAddress creates an Address from a raw 16-bit value. Bits outside of the
// 12-bit address space are discarded.
func NewAddress(raw uint16) Address {
	return Address(raw) & Memtop
}

// AddAssign adds delta to the address in place. Arithmetic that would carry
// the address past Memtop fails with AddressOutOfRange rather than wrapping
// silently. A runaway program is easier to diagnose that way.
func (a *Address) AddAssign(delta uint16) error {
	v := uint32(*a) + uint32(delta)
	if v > uint32(Memtop) {
		return fmt.Errorf("memory: %w (%s + %d)", AddressOutOfRange, *a, delta)
	}
	*a = Address(v)
	return nil
}

// Inner returns the address as a plain integer for arithmetic that is
// embedded in other instructions.
func (a Address) Inner() uint16 {
	return uint16(a)
}

func (a Address) String() string {
	return fmt.Sprintf("%#04x", uint16(a))
}
