/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parsegraph

import "devt.de/krotik/bp/token"

/*
rawEdge is one entry of a named-state edge list, written the way the
catalogue below is authored: (next state name, matcher, capture mode).
*/
type rawEdge struct {
	next string
	m    Matcher
	mode CaptureMode
}

/*
rawGraph is a structure graph written with named states instead of
interned integers, for readability of the static catalogue. compile
turns it into the Graph the generic matcher runs.
*/
type rawGraph struct {
	opTag token.Tag
	name  string
	start string
	end   string
	edges map[string][]rawEdge
}

/*
compile interns the named states of a rawGraph into small integers and
produces the Graph the generic matcher consumes. The start state is
always interned to 0.
*/
func compile(g rawGraph) *Graph {
	ids := map[string]int{}
	intern := func(s string) int {
		if id, ok := ids[s]; ok {
			return id
		}
		id := len(ids)
		ids[s] = id
		return id
	}

	intern(g.start)

	transitions := map[int][]Edge{}
	for name, edges := range g.edges {
		from := intern(name)
		for _, e := range edges {
			to := intern(e.next)
			transitions[from] = append(transitions[from], Edge{Next: to, M: e.m, Mode: e.mode})
		}
	}

	return &Graph{
		OpTag:       g.opTag,
		Name:        g.name,
		End:         intern(g.end),
		Transitions: transitions,
	}
}
