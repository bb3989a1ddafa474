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

// Package disassembly is the static analysis of a loaded ROM.
//
// For quick disassemblies the FromCartridge() function can be used. Debuggers
// will probably find it more useful, however, to disassemble from the memory
// of an already instantiated machine with FromMemory().
//
// Two passes are made over the program. The first decodes an instruction at
// every address, odd addresses included, because nothing in the machine
// forces a program to keep its instructions aligned or even apart from its
// data. The second pass walks the static flow of the program from the entry
// point, blessing the entries it can reach. A listing of blessed entries is
// the best static guess at the real program text, while the full decoding is
// there for when the program counter lands somewhere unexpected.
//
// Static analysis is necessarily wrong about programs that modify themselves.
// Running emulations should notify the disassembly of every executed
// instruction through ExecutedEntry(), which corrects the record as the
// program runs.
package disassembly
