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

//go:build !windows
// +build !windows

package colorterm

import (
	"bufio"
	"io"
)

// runeRead is a single rune read from the input stream, along with any error
// that occurred during the read.
type runeRead struct {
	r   rune
	err error
}

// runeReader delivers runes from an input stream over a channel, allowing the
// receiver to select over rune input and other events at the same time.
type runeReader chan runeRead

// initRuneReader starts the goroutine that services the runeReader channel.
//
// The channel has a capacity of one so the goroutine will read ahead by no
// more than a single rune. The length of the channel therefore also says
// whether input is waiting to be read.
func initRuneReader(input io.Reader) runeReader {
	buffered := bufio.NewReader(input)
	reader := make(runeReader, 1)

	go func() {
		for {
			r, _, err := buffered.ReadRune()
			reader <- runeRead{r: r, err: err}
		}
	}()

	return reader
}
