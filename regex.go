// Copyright 2013 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package automaton

import "fmt"

// CompileRegex compiles a restricted regular expression into a fresh ε-NFA
// via Thompson construction: literal symbols, "*" (Kleene star), "|"
// (alternation), implicit concatenation, and grouping by parenthesization.
// Concatenation binds tighter than "|"; "*" binds tighter than
// concatenation. The metacharacters "*|()" and the escape character "\"
// itself are matched literally when preceded by "\"; any other use of "\"
// is a syntax error. The empty pattern matches the empty string. Returns
// ErrRegexSyntax (with the rune index of the offending rune) on malformed
// input.
func CompileRegex(pattern string) (*Automaton, error) {
	p := &regexParser{src: []rune(pattern), automaton: newBareAutomaton(fmt.Sprintf("regex(%s)", pattern))}
	frag, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.src) {
		return nil, newRegexSyntax(pattern, fmt.Sprintf("unexpected %q", p.src[p.pos]), p.pos)
	}

	p.automaton.initial = frag.in
	p.automaton.finals[frag.out] = struct{}{}
	return p.automaton, nil
}

// newBareAutomaton builds an Automaton with no states at all, for the regex
// compiler, which constructs its own state set from scratch rather than
// through NewAutomaton's single-initial contract.
func newBareAutomaton(name string) *Automaton {
	return &Automaton{
		name:          name,
		present:       make(map[StateID]struct{}),
		finals:        make(map[StateID]struct{}),
		edges:         make(map[StateID][]Edge),
		alphabet:      make(map[Symbol]int),
		deterministic: true,
		deadStateName: "_error",
		nextSuffix:    make(map[StateID]int),
	}
}

const regexMetachars = "*|()\\"

// fragment is a Thompson-construction NFA fragment: a single entry state and
// a single exit state, internally wired by whatever the sub-expression
// needs.
type fragment struct {
	in, out StateID
}

type regexParser struct {
	src       []rune
	pos       int
	automaton *Automaton
	counter   int
}

func (p *regexParser) newState() StateID {
	id := StateID(fmt.Sprintf("s%d", p.counter))
	p.counter++
	p.automaton.addStateUnchecked(id)
	return id
}

func (p *regexParser) addEdge(src StateID, sym Symbol, dst StateID) {
	_ = p.automaton.AddEdge(src, sym, dst)
}

func (p *regexParser) emptyFragment() fragment {
	in, out := p.newState(), p.newState()
	p.addEdge(in, Epsilon, out)
	return fragment{in, out}
}

func (p *regexParser) peek() (rune, bool) {
	if p.pos >= len(p.src) {
		return 0, false
	}
	return p.src[p.pos], true
}

func (p *regexParser) isMetaOrEnd() bool {
	r, ok := p.peek()
	if !ok {
		return true
	}
	return r == '|' || r == ')'
}

// parseAlt = parseConcat ("|" parseConcat)*
func (p *regexParser) parseAlt() (fragment, error) {
	frag, err := p.parseConcat()
	if err != nil {
		return fragment{}, err
	}
	for {
		r, ok := p.peek()
		if !ok || r != '|' {
			return frag, nil
		}
		p.pos++
		next, err := p.parseConcat()
		if err != nil {
			return fragment{}, err
		}
		in, out := p.newState(), p.newState()
		p.addEdge(in, Epsilon, frag.in)
		p.addEdge(in, Epsilon, next.in)
		p.addEdge(frag.out, Epsilon, out)
		p.addEdge(next.out, Epsilon, out)
		frag = fragment{in, out}
	}
}

// parseConcat = parseStar*  (empty sequence matches the empty string)
func (p *regexParser) parseConcat() (fragment, error) {
	if p.isMetaOrEnd() {
		return p.emptyFragment(), nil
	}
	frag, err := p.parseStar()
	if err != nil {
		return fragment{}, err
	}
	for !p.isMetaOrEnd() {
		next, err := p.parseStar()
		if err != nil {
			return fragment{}, err
		}
		p.addEdge(frag.out, Epsilon, next.in)
		frag.out = next.out
	}
	return frag, nil
}

// parseStar = parseAtom ("*")*
func (p *regexParser) parseStar() (fragment, error) {
	frag, err := p.parseAtom()
	if err != nil {
		return fragment{}, err
	}
	for {
		r, ok := p.peek()
		if !ok || r != '*' {
			return frag, nil
		}
		p.pos++
		in, out := p.newState(), p.newState()
		p.addEdge(in, Epsilon, frag.in)
		p.addEdge(in, Epsilon, out)
		p.addEdge(frag.out, Epsilon, frag.in)
		p.addEdge(frag.out, Epsilon, out)
		frag = fragment{in, out}
	}
}

// parseAtom = "(" parseAlt ")" | literal
func (p *regexParser) parseAtom() (fragment, error) {
	r, ok := p.peek()
	if !ok {
		return p.emptyFragment(), nil
	}

	if r == '(' {
		p.pos++
		frag, err := p.parseAlt()
		if err != nil {
			return fragment{}, err
		}
		r, ok = p.peek()
		if !ok || r != ')' {
			return fragment{}, newRegexSyntax(string(p.src), "unterminated group, expected ')'", p.pos)
		}
		p.pos++
		return frag, nil
	}

	if r == ')' || r == '|' || r == '*' {
		return fragment{}, newRegexSyntax(string(p.src), fmt.Sprintf("unexpected metacharacter %q", r), p.pos)
	}

	sym, err := p.literal()
	if err != nil {
		return fragment{}, err
	}
	in, out := p.newState(), p.newState()
	p.addEdge(in, sym, out)
	return fragment{in, out}, nil
}

// literal consumes one input symbol: an ordinary rune, or a backslash
// followed by one of the metacharacters or another backslash.
func (p *regexParser) literal() (Symbol, error) {
	r := p.src[p.pos]
	if r != '\\' {
		p.pos++
		return Symbol(r), nil
	}

	escOffset := p.pos
	p.pos++
	esc, ok := p.peek()
	if !ok {
		return 0, newRegexSyntax(string(p.src), "dangling escape at end of pattern", escOffset)
	}
	if !isRegexMeta(esc) {
		return 0, newRegexSyntax(string(p.src), fmt.Sprintf("invalid escape %q", esc), escOffset)
	}
	p.pos++
	return Symbol(esc), nil
}

func isRegexMeta(r rune) bool {
	for _, m := range regexMetachars {
		if r == m {
			return true
		}
	}
	return false
}
