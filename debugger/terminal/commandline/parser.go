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
	"fmt"
	"strings"
)

// ParseCommandTemplate turns a string representation of a command template
// into a machine friendly representation.
//
// Syntax
//
//	[ a ]	required element
//	( a )	optional element
//	{ a }	optional element that can appear any number of times
//	[ a|b ]	distinct choices, one of which is required
//	( a|b )	distinct choices, one of which can be chosen
//	%N		numeric argument
//	%P		floating-point argument
//	%S		string argument
//	%F		filename argument
//
// The first word of each definition is the command keyword. Groups can be
// nested and sequences of elements can appear inside a group:
//
//	SYMBOL [%S (ALL|MIRRORS)|LIST]
//
// Placeholder directives can be labelled for the benefit of help text. The
// label appears between angle brackets, before the placeholder letter:
//
//	LOAD %<rom file>F
func ParseCommandTemplate(template []string) (*Commands, error) {
	cmds := &Commands{
		Index: make(map[string]*node),
	}

	for t := range template {
		defn := strings.TrimSpace(template[t])
		if defn == "" {
			return nil, fmt.Errorf("parser: empty definition in template")
		}

		p, d, err := parseDefinition(defn)
		if err != nil {
			return nil, fmt.Errorf("parser: %s: %s (char %d)", defn, err, d)
		}

		if _, ok := cmds.Index[p.tag]; ok {
			return nil, fmt.Errorf("parser: duplicate definition (%s)", p.tag)
		}

		cmds.cmds = append(cmds.cmds, p)
		cmds.Index[p.tag] = p
	}

	return cmds, nil
}

// groupDelimiters are significant wherever they appear. words in the
// definition break on these characters as well as on whitespace.
const groupDelimiters = "[](){}|"

func isGroupDelimiter(c byte) bool {
	return strings.IndexByte(groupDelimiters, c) != -1
}

// definitionParser walks over a single definition from a command template.
// the definition is split into words and single character group delimiters.
type definitionParser struct {
	defn string
	pos  int

	// character position of the most recent error
	errPos int
}

// peek returns the next word in the definition, and the character position at
// which it starts, without consuming it.
func (p *definitionParser) peek() (string, int, bool) {
	pos := p.pos
	for pos < len(p.defn) && p.defn[pos] == ' ' {
		pos++
	}
	if pos >= len(p.defn) {
		return "", pos, false
	}
	if isGroupDelimiter(p.defn[pos]) {
		return string(p.defn[pos]), pos, true
	}
	end := pos
	for end < len(p.defn) && p.defn[end] != ' ' && !isGroupDelimiter(p.defn[end]) {
		end++
	}
	return p.defn[pos:end], pos, true
}

// next is the same as peek but the word is consumed.
func (p *definitionParser) next() (string, int, bool) {
	s, pos, ok := p.peek()
	if ok {
		p.pos = pos + len(s)
	}
	return s, pos, ok
}

// parseDefinition transforms a single definition from a command template into
// a tree of nodes, returning the root of the tree. the returned int is the
// character position of any error.
func parseDefinition(defn string) (*node, int, error) {
	p := &definitionParser{defn: defn}

	// the definition must begin with the command keyword
	w, pos, ok := p.next()
	if !ok {
		return nil, pos, fmt.Errorf("empty definition")
	}
	if len(w) == 1 && isGroupDelimiter(w[0]) {
		return nil, pos, fmt.Errorf("definition must begin with a command keyword")
	}

	cmd, err := newWordNode(w, nodeRoot)
	if err != nil {
		return nil, pos, err
	}

	if err := p.parseSequence(cmd, nodeRoot); err != nil {
		return nil, p.errPos, err
	}

	// a sequence ends at a group delimiter. at the root of the definition
	// there is no group to close so any remaining input is an error
	if w, pos, ok := p.peek(); ok {
		return nil, pos, fmt.Errorf("unexpected %s", w)
	}

	return cmd, 0, nil
}

// parseSequence appends nodes to the owner's next array until the end of the
// definition or until a delimiter that belongs to an enclosing group is
// found. the delimiter is not consumed.
func (p *definitionParser) parseSequence(owner *node, typ nodeType) error {
	for {
		w, pos, ok := p.peek()
		if !ok {
			return nil
		}

		switch w {
		case "]", ")", "}", "|":
			return nil

		case "[", "(", "{":
			p.next()
			g, err := p.parseGroup(w[0], pos)
			if err != nil {
				return err
			}
			owner.next = append(owner.next, g)

		default:
			p.next()
			n, err := newWordNode(w, typ)
			if err != nil {
				p.errPos = pos
				return err
			}
			owner.next = append(owner.next, n)
		}
	}
}

// parseGroup parses the alternatives of a group, up to and including the
// closing delimiter. the first alternative becomes the group node; subsequent
// alternatives are attached to its branch array.
func (p *definitionParser) parseGroup(open byte, openPos int) (*node, error) {
	var typ nodeType
	var closing string

	switch open {
	case '[':
		typ = nodeRequired
		closing = "]"
	case '(':
		typ = nodeOptional
		closing = ")"
	case '{':
		// repeat groups are optional by definition
		typ = nodeOptional
		closing = "}"
	}

	group, err := p.parseAlternative(typ)
	if err != nil {
		return nil, err
	}

	for {
		w, pos, ok := p.next()
		if !ok {
			p.errPos = openPos
			return nil, fmt.Errorf("unclosed group (%c)", open)
		}

		if w == closing {
			break
		}

		if w != "|" {
			p.errPos = pos
			return nil, fmt.Errorf("expected %s (found %s)", closing, w)
		}

		b, err := p.parseAlternative(typ)
		if err != nil {
			return nil, err
		}
		group.branch = append(group.branch, b)
	}

	if open == '{' {
		group.repeatStart = true
		setRepeat(group, group)
	}

	return group, nil
}

// parseAlternative parses a single alternative of a group. an alternative is
// a sequence of elements; the first element becomes the head of the
// alternative and the remaining elements accumulate in the head's next array.
//
// if the alternative begins with a nested group then a node with an empty tag
// is created to hold the whole alternative.
func (p *definitionParser) parseAlternative(typ nodeType) (*node, error) {
	w, pos, ok := p.peek()
	if !ok {
		p.errPos = p.pos
		return nil, fmt.Errorf("unexpected end of definition")
	}

	var head *node

	switch w {
	case "]", ")", "}", "|":
		p.errPos = pos
		return nil, fmt.Errorf("empty group")

	case "[", "(", "{":
		head = &node{typ: typ}

	default:
		p.next()
		var err error
		head, err = newWordNode(w, typ)
		if err != nil {
			p.errPos = pos
			return nil, err
		}
	}

	if err := p.parseSequence(head, typ); err != nil {
		return nil, err
	}

	return head, nil
}

// newWordNode creates a node for a single word in the definition, handling
// placeholder directives as necessary.
func newWordNode(w string, typ nodeType) (*node, error) {
	n := &node{typ: typ}

	if w[0] != '%' {
		if strings.ContainsRune(w, '%') {
			return nil, fmt.Errorf("placeholder directives must be separated from other characters (%s)", w)
		}
		n.tag = strings.ToUpper(w)
		return n, nil
	}

	// the %% directive matches a literal percent sign
	if w == "%%" {
		n.tag = w
		return n, nil
	}

	// a label for the placeholder can appear between angle brackets, before
	// the placeholder letter
	arg := w[1:]
	if strings.HasPrefix(arg, "<") {
		end := strings.IndexRune(arg, '>')
		if end == -1 {
			return nil, fmt.Errorf("unclosed placeholder label (%s)", w)
		}
		n.placeholderLabel = arg[1:end]
		arg = arg[end+1:]
	}

	if len(arg) != 1 {
		return nil, fmt.Errorf("incomplete placeholder directive (%s)", w)
	}

	switch strings.ToUpper(arg) {
	case "N", "P", "S", "F":
		n.tag = fmt.Sprintf("%%%s", strings.ToUpper(arg))
	default:
		return nil, fmt.Errorf("unrecognised placeholder directive (%s)", w)
	}

	return n, nil
}

// setRepeat marks every alternative in a repeat group with a pointer back to
// the start of the group. validation checks the pointer once the rest of the
// alternative has been dealt with, allowing the group content to appear again.
func setRepeat(n *node, group *node) {
	// nodes with an empty tag never reach the repeat check during validation
	// so the last node in the sequence is marked instead
	if n.tag == "" {
		if len(n.next) > 0 {
			setRepeat(n.next[len(n.next)-1], group)
		}
		return
	}

	n.repeat = group
	for _, b := range n.branch {
		setRepeat(b, group)
	}
}
