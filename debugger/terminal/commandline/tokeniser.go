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

package commandline

import (
	"strings"
)

// tokeniseInput splits input over whitespace boundaries.
func tokeniseInput(input string) []string {
	return strings.Fields(input)
}

// Tokens represents tokenised input. This can be used to walk through the
// input string (using Get()) for eas(ier) parsing.
type Tokens struct {
	tokens []string
	curr   int
}

// TokeniseInput creates and returns a new Tokens instance from the input
// string.
func TokeniseInput(input string) *Tokens {
	tk := &Tokens{}
	tk.tokens = tokeniseInput(strings.TrimSpace(input))
	return tk
}

// String returns the tokens as a single string separated by a single space.
// Any normalisations made during validation are reflected in the result,
// making this a good method of recording input (in a script file for
// example).
func (tk Tokens) String() string {
	return strings.Join(tk.tokens, " ")
}

// Reset begins the token traversal from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// End the token traversal. Subsequent calls to Get() will fail until Reset()
// is called.
func (tk *Tokens) End() {
	tk.curr = len(tk.tokens)
}

// IsEnd returns true if the end of the token list has been reached.
func (tk Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remainder returns the tokens not yet handled by Get(), as a single string.
func (tk Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Remaining returns the count of tokens not yet handled by Get().
func (tk Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Len returns the number of tokens.
func (tk Tokens) Len() int {
	return len(tk.tokens)
}

// Get returns the next token in the list and a success flag. The flag is
// false if the end of the token list has been reached.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Unget pushes the token last handled by Get() back onto the token list. The
// next call to Get() will return the same token again.
func (tk *Tokens) Unget() {
	if tk.curr > 0 {
		tk.curr--
	}
}

// Peek returns the next token in the list without consuming it. The next call
// to Get() will return the same token.
func (tk *Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// Update replaces the token last handled by Get(). Useful for normalising
// tokens during validation.
func (tk *Tokens) Update(s string) {
	if tk.curr > 0 {
		tk.tokens[tk.curr-1] = s
	}
}
