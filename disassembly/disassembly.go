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
	"fmt"
	"iter"
	"sync"

	"github.com/jetsetilly/gopher8/cartridgeloader"
	"github.com/jetsetilly/gopher8/hardware/cpu"
	"github.com/jetsetilly/gopher8/hardware/memory"
)

// Disassembly represents the annotated disassembly of a CHIP-8 ROM.
type Disassembly struct {
	// indexed by address. entries outside of the program region are nil.
	// because instructions are two bytes but alignment is not enforced,
	// neighbouring entries overlap
	reference [memory.Size]*Entry

	// the number of entries at each level. we use this to help prepare
	// disassembly iterations
	counts map[EntryLevel]int

	// critical sectioning
	crit sync.Mutex
}

// FromCartridge returns a disassembly of the ROM referenced by the supplied
// cartridge loader. Useful for one-shot disassemblies, like the "disasm"
// mode. Debuggers will probably find it more useful to disassemble from the
// memory of an already instantiated machine, with FromMemory().
func FromCartridge(cartload cartridgeloader.Loader) (*Disassembly, error) {
	if err := cartload.Load(); err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	mem := memory.NewMemory()
	if err := mem.LoadROM(cartload.Data); err != nil {
		return nil, fmt.Errorf("disassembly: %w", err)
	}

	dsm := &Disassembly{}
	dsm.FromMemory(mem, len(cartload.Data))

	return dsm, nil
}

// FromMemory disassembles the program region of an existing instance of
// memory. The size argument is the length in bytes of the loaded program,
// which the memory itself does not record.
func (dsm *Disassembly) FromMemory(mem *memory.Memory, size int) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	dsm.reference = [memory.Size]*Entry{}

	dsm.decode(mem, size)
	dsm.bless(size)

	// count entry levels
	dsm.counts = make(map[EntryLevel]int)
	for _, e := range dsm.reference {
		if e != nil {
			dsm.counts[e.Level]++
		}
	}
}

// GetEntryByAddress returns the disassembly entry at the specified address.
func (dsm *Disassembly) GetEntryByAddress(address memory.Address) (*Entry, bool) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	e := dsm.reference[address.Inner()]
	return e, e != nil
}

// ExecutedEntry updates the disassembly to reflect an instruction execution
// witnessed by the CPU. A program that has modified itself will disagree with
// the decoding made at load time. The witnessed instruction always wins.
func (dsm *Disassembly) ExecutedEntry(result cpu.Result) {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	idx := result.Address.Inner()
	e := dsm.reference[idx]

	if e == nil || e.Instruction.Value != result.Instruction.Value {
		if e != nil {
			dsm.counts[e.Level]--
		}
		dsm.reference[idx] = &Entry{
			Level:       EntryLevelExecuted,
			Address:     result.Address,
			Instruction: result.Instruction,
		}
		dsm.counts[EntryLevelExecuted]++
		return
	}

	if e.Level < EntryLevelExecuted {
		dsm.counts[e.Level]--
		e.Level = EntryLevelExecuted
		dsm.counts[EntryLevelExecuted]++
	}
}

// Count returns the number of entries at exactly the specified level.
func (dsm *Disassembly) Count(level EntryLevel) int {
	dsm.crit.Lock()
	defer dsm.crit.Unlock()

	return dsm.counts[level]
}

// Entries yields the disassembly entries in address order. Only entries at or
// above the specified level are yielded. The entries are gathered before the
// first yield so the disassembly is free to update during the iteration.
func (dsm *Disassembly) Entries(level EntryLevel) iter.Seq[*Entry] {
	dsm.crit.Lock()
	list := make([]*Entry, 0, len(dsm.reference))
	for _, e := range dsm.reference {
		if e != nil && e.Level >= level {
			list = append(list, e)
		}
	}
	dsm.crit.Unlock()

	return func(yield func(*Entry) bool) {
		for _, e := range list {
			if !yield(e) {
				return
			}
		}
	}
}
