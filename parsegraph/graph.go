/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package parsegraph implements the structure-graph parser: a catalogue of
labelled finite-state machines, each recognising and decomposing the
token list of exactly one syntactic form (spec.md §4.2). A single
generic matcher runs every graph; graphs themselves are static data, not
generated code (spec.md §9 "Structure graphs as data").
*/
package parsegraph

import (
	"devt.de/krotik/bp/token"
)

/*
CaptureMode controls what a graph edge does with the token it consumes.
*/
type CaptureMode int

/*
Capture modes (spec.md §4.2 "Capture protocol").
*/
const (
	NoCapture CaptureMode = iota
	CaptureAlone
	CaptureTogether
)

/*
Matcher decides whether an edge accepts the current token's tag.
*/
type Matcher struct {
	any  bool
	tags map[token.Tag]bool
}

/*
MatchAny is the sentinel matcher that accepts every token (spec.md's ANY).
*/
func MatchAny() Matcher {
	return Matcher{any: true}
}

/*
MatchTag matches exactly one token tag.
*/
func MatchTag(t token.Tag) Matcher {
	return Matcher{tags: map[token.Tag]bool{t: true}}
}

/*
MatchSet matches any token tag in a named set (spec.md's "declarative-
keywords-with-value", "binary-boolean-operators", "all-comparators", etc).
*/
func MatchSet(tags ...token.Tag) Matcher {
	m := make(map[token.Tag]bool, len(tags))
	for _, t := range tags {
		m[t] = true
	}
	return Matcher{tags: m}
}

/*
Accepts reports whether the matcher accepts a given token tag.
*/
func (m Matcher) Accepts(t token.Tag) bool {
	if m.any {
		return true
	}
	return m.tags[t]
}

/*
Edge is one outgoing transition of a structure-graph state.
*/
type Edge struct {
	Next int
	M    Matcher
	Mode CaptureMode
}

/*
Graph is a labelled finite-state machine recognising one operator-node
kind. States are plain ints; state 0 is always the start state.
*/
type Graph struct {
	OpTag       token.Tag
	Name        string
	End         int
	Transitions map[int][]Edge
}

// Bracket families tracked by the balance gate (spec.md §4.2 "Bracket
// balance"). Keyed by the opening bracket's tag.
var bracketFamilies = []token.Tag{token.LPAREN, token.LBRACK, token.LBRACE, token.LANGLE}

func bracketFamilyOf(t token.Tag) (open token.Tag, delta int, isBracket bool) {
	switch t {
	case token.LPAREN:
		return token.LPAREN, 1, true
	case token.RPAREN:
		return token.LPAREN, -1, true
	case token.LBRACK:
		return token.LBRACK, 1, true
	case token.RBRACK:
		return token.LBRACK, -1, true
	case token.LBRACE:
		return token.LBRACE, 1, true
	case token.RBRACE:
		return token.LBRACE, -1, true
	case token.LANGLE:
		return token.LANGLE, 1, true
	case token.RANGLE:
		return token.LANGLE, -1, true
	}
	return 0, 0, false
}

/*
run attempts to match tokens against a graph starting at state 0. On
success it returns the ordered list of child token lists (each already
terminated with token.End) produced by the capture protocol. On failure
it returns ok=false; the caller tries the next graph in the catalogue.
*/
func (g *Graph) run(tokens []token.Token) (captures [][]token.Token, ok bool) {
	state := 0
	var buffer []token.Token
	counters := map[token.Tag]int{}

	bracketOpen := func() bool {
		for _, f := range bracketFamilies {
			if counters[f] != 0 {
				return true
			}
		}
		return false
	}

	flush := func() {
		if len(buffer) > 0 {
			chunk := append(append([]token.Token{}, buffer...), token.End)
			captures = append(captures, chunk)
			buffer = nil
		}
	}

	for _, t := range tokens {
		edges := g.Transitions[state]

		var chosen *Edge
		open := bracketOpen()
		for i := range edges {
			e := &edges[i]
			if open && e.Mode != CaptureTogether {
				continue
			}
			if e.M.Accepts(t.Tag) {
				chosen = e
				break
			}
		}

		if chosen == nil {
			return nil, false
		}

		switch chosen.Mode {
		case CaptureTogether:
			buffer = append(buffer, t)
			if fam, delta, isBracket := bracketFamilyOf(t.Tag); isBracket {
				counters[fam] += delta
			}
		case CaptureAlone:
			flush()
			captures = append(captures, []token.Token{t, token.End})
		case NoCapture:
			flush()
		}

		state = chosen.Next
	}

	flush()

	if state != g.End {
		return nil, false
	}
	return captures, true
}
