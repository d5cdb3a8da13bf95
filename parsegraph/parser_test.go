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

import (
	"testing"

	"devt.de/krotik/bp/ast"
	"devt.de/krotik/bp/lexer"
	"devt.de/krotik/bp/token"
)

func mustParse(t *testing.T, line string) *ast.Node {
	t.Helper()
	toks, err := lexer.Lex("test", line)
	if err != nil {
		t.Fatalf("Lex(%q): %v", line, err)
	}
	n, err := Parse(toks)
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	return n
}

func TestEmptyLineParsesToLeaf(t *testing.T) {
	n := mustParse(t, "")
	if !n.IsLeaf || n.Tag != token.EMPTYLINE {
		t.Errorf("expected an EMPTYLINE leaf, got %v", n)
	}
}

func TestOperatorTags(t *testing.T) {
	tests := []struct {
		line string
		tag  token.Tag
	}{
		{"a = 3", token.NodeASSIGNMENT},
		{"INTEGER a = 3", token.NodeDECLWITHVALUE},
		{"STACK s", token.NodeDECLWITHOUTVALUE},
		{"IF a ISLESSTHAN b DO", token.NodeIFSTMT},
		{"WHILE a ISLESSTHAN b DO", token.NodeWHILESTMT},
		{"FOR x IN xs DO", token.NodeFORSTMT},
		{"OUTPUT(a, b)", token.NodeOUTPUTCALL},
		{"LENGTH(a)", token.NodeLENGTHCHECK},
		{"a.READBYINDEX(i)", token.NodeREADBYINDEX},
		{"a.APPEND(x)", token.NodeARRAYAPPEND},
		{"q.ADDITEM(v, 1)", token.NodePQADDITEM},
		{"q.READITEM", token.NodeSQREAD},
		{"q.POPITEM", token.NodeSQPOP},
		{"d.INSERTPAIR(p)", token.NodeDICTINSERT},
		{"d.LOOKUPVALUE(k)", token.NodeDICTLOOKUP},
		{"d.REMOVEPAIR(k)", token.NodeDICTREMOVE},
		{"d.LISTKEYS", token.NodeDICTKEYLIST},
		{"a AND b", token.NodeBINBOOL},
		{"NOT a", token.NodeUNARYBOOL},
		{"a ISEQUALTO b", token.NodeBOOLCOMPARISON},
		{"a - b", token.NodeSUB},
		{"a + b", token.NodeADD},
		{"a * b", token.NodeMUL},
		{"a / b", token.NodeDIV},
		{"a // b", token.NodeINTDIV},
		{"a % b", token.NodeMOD},
		{"(a + b)", token.NodeBRACKETS},
		{"[1, 2, 3]", token.NodeARRAYLIT},
		{"<1, 2, 3>", token.NodeTUPLELIT},
		{`{"a":1}`, token.NodeDICTLIT},
	}

	for _, tc := range tests {
		n := mustParse(t, tc.line)
		if n.IsLeaf || n.Tag != tc.tag {
			t.Errorf("Parse(%q) tag = %v, want %v", tc.line, n.Tag, tc.tag)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	lines := []string{
		"a = 3",
		"INTEGER a = 3",
		"IF a ISLESSTHAN b DO",
		"FOR x IN xs DO",
		"OUTPUT(a, b)",
		"a.READBYINDEX(i)",
		"q.ADDITEM(v, 1)",
		"q.READITEM",
		"d.INSERTPAIR(p)",
		"a AND b",
		"NOT a",
		"a ISEQUALTO b",
		"a + b",
		"a - b * c",
	}

	for _, line := range lines {
		n1 := mustParse(t, line)
		printed, err := PrettyPrint(n1)
		if err != nil {
			t.Errorf("PrettyPrint(%q): %v", line, err)
			continue
		}

		n2 := mustParse(t, printed)
		if n1.String() != n2.String() {
			t.Errorf("round-trip mismatch for %q: printed %q reparsed to %v, want %v",
				line, printed, n2, n1)
		}
	}
}
