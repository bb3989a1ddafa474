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
	"strconv"
	"strings"
)

// TabCompletion provides case insensitive completion of command input.
// successive calls to Complete() with an unchanged input cycle through the
// available options.
type TabCompletion struct {
	cmds *Commands

	// the candidate completions for the most recent guess
	options []string
	idx     int

	// the tokens preceding the completed word. preserved as typed
	prefix []string

	// the string last returned by Complete(). used to detect an unchanged
	// input on the next call
	last string
}

// NewTabCompletion is the preferred method of initialisation for TabCompletion.
func NewTabCompletion(cmds *Commands) *TabCompletion {
	tc := &TabCompletion{cmds: cmds}
	tc.Reset()
	return tc
}

// Complete transforms the input such that the last word in the input is
// expanded to meet the closest match in the list of allowed strings.
func (tc *TabCompletion) Complete(input string) string {
	// cycle through the options if input string is unchanged from the
	// previous completion
	if len(tc.options) > 1 && input == tc.last {
		tc.idx++
		if tc.idx >= len(tc.options) {
			tc.idx = 0
		}
		return tc.build()
	}

	tc.Reset()

	tokens := tokeniseInput(input)
	if len(tokens) == 0 {
		return input
	}

	// the word to complete is the last token, unless the input ends with
	// whitespace in which case a new word is being started
	var trigger string
	if strings.HasSuffix(input, " ") {
		tc.prefix = tokens
	} else {
		trigger = strings.ToUpper(tokens[len(tokens)-1])
		tc.prefix = tokens[:len(tokens)-1]
	}

	// gather candidates for the current position in the input
	var candidates []string

	if len(tc.prefix) == 0 {
		// completing the command itself
		for _, cmd := range tc.cmds.cmds {
			candidates = append(candidates, cmd.tag)
		}
	} else {
		cmd, ok := tc.cmds.Index[strings.ToUpper(tc.prefix[0])]
		if !ok {
			return input
		}
		matchSequence(cmd.next, tc.prefix[1:], 0, &candidates)
	}

	// filter candidates against the trigger word, discarding duplicates
	seen := make(map[string]bool)
	for _, c := range candidates {
		if strings.HasPrefix(c, trigger) && !seen[c] {
			tc.options = append(tc.options, c)
			seen[c] = true
		}
	}

	if len(tc.options) == 0 {
		return input
	}

	return tc.build()
}

// Reset is used to clear an outstanding completion session.
func (tc *TabCompletion) Reset() {
	tc.options = tc.options[:0]
	tc.idx = 0
	tc.prefix = nil
	tc.last = ""
}

// build the completed input from the prefix tokens and the current option.
// the result ends with a space, ready for the user to continue typing.
func (tc *TabCompletion) build() string {
	s := strings.Builder{}
	for _, p := range tc.prefix {
		s.WriteString(p)
		s.WriteString(" ")
	}
	s.WriteString(tc.options[tc.idx])
	s.WriteString(" ")

	tc.last = s.String()
	return tc.last
}

// matchSequence walks a sequence of nodes, matching tokens as it goes. when
// the tokens run out the remainder of the sequence donates the candidate
// completions.
//
// the returned values are the token index the walk reached, whether the
// sequence accepts the tokens, and whether candidates have been gathered. a
// gathered boundary ends the walk.
func matchSequence(seq []*node, tokens []string, idx int, options *[]string) (int, bool, bool) {
	for i, n := range seq {
		if idx >= len(tokens) {
			if collectSequence(seq[i:], options) {
				return idx, true, true
			}

			// the sequence ran out on optional nodes only. an enclosing
			// sequence may have more candidates to give
			return idx, true, false
		}

		v, m, e := matchNode(n, tokens, idx, options)
		if e {
			return v, true, true
		}
		if m {
			idx = v
			continue
		}

		// an optional node that doesn't match is skipped. anything else ends
		// the sequence
		if n.typ != nodeOptional {
			return idx, false, false
		}
	}

	return idx, true, false
}

// matchNode matches a single node (and its branches) against the tokens,
// continuing through the node's next array on a successful match. return
// values are as for matchSequence.
func matchNode(n *node, tokens []string, idx int, options *[]string) (int, bool, bool) {
	// nodes with an empty tag hold a sequence that begins with a nested group
	if n.tag == "" {
		v, m, e := matchSequence(n.next, tokens, idx, options)
		if e {
			return v, true, true
		}
		if m {
			return v, true, false
		}

		for _, b := range n.branch {
			if v, m, e := matchNode(b, tokens, idx, options); m || e {
				return v, true, e
			}
		}

		return idx, false, false
	}

	if !matchTag(n, tokens[idx]) {
		for _, b := range n.branch {
			if v, m, e := matchNode(b, tokens, idx, options); m || e {
				return v, true, e
			}
		}

		return idx, false, false
	}

	idx++

	v, m, e := matchSequence(n.next, tokens, idx, options)
	if e {
		return v, true, true
	}
	if !m {
		return idx, false, false
	}
	idx = v

	// tokens exhausted at the end of a repeat group. the start of the group
	// donates candidates in addition to whatever follows the group
	if n.repeat != nil && idx >= len(tokens) {
		collectNode(n.repeat, options)
	}

	return idx, true, false
}

// collectSequence gathers candidate completions from a sequence of nodes,
// stopping after the first node that must be matched. returns true if such a
// node was reached and false if every node in the sequence was optional.
func collectSequence(seq []*node, options *[]string) bool {
	for _, n := range seq {
		collectNode(n, options)
		if n.typ != nodeOptional {
			return true
		}
	}
	return false
}

// collectNode gathers candidate completions from a single node and its
// branches. placeholders cannot be completed and so contribute nothing.
func collectNode(n *node, options *[]string) {
	if n.tag == "" {
		collectSequence(n.next, options)
	} else if !n.isPlaceholder() {
		*options = append(*options, n.tag)
	}

	for _, b := range n.branch {
		collectNode(b, options)
	}
}

// matchTag checks a single token against a node's tag. placeholder tags match
// according to the placeholder type.
func matchTag(n *node, tok string) bool {
	switch n.tag {
	case "%N":
		_, err := strconv.ParseInt(tok, 0, 32)
		return err == nil
	case "%P":
		_, err := strconv.ParseFloat(tok, 32)
		return err == nil
	case "%S", "%F":
		return true
	}

	return strings.ToUpper(tok) == n.tag
}
