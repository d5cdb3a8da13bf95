/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package runner

import (
	"bytes"
	"strings"
	"testing"

	"devt.de/krotik/bp/ast"
	"devt.de/krotik/bp/bplog"
	"devt.de/krotik/bp/lexer"
	"devt.de/krotik/bp/parsegraph"
)

func mustParseProgram(t *testing.T, src string) []*ast.Node {
	t.Helper()
	var lines []*ast.Node
	for _, raw := range strings.Split(strings.TrimLeft(src, "\n"), "\n") {
		toks, err := lexer.Lex("test", raw)
		if err != nil {
			t.Fatalf("Lex(%q): %v", raw, err)
		}
		n, err := parsegraph.Parse(toks)
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		lines = append(lines, n)
	}
	return lines
}

func runProgram(t *testing.T, src string) string {
	t.Helper()
	lines := mustParseProgram(t, src)
	var out bytes.Buffer
	r := New(lines, &out, bplog.NewNullLogger())
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	return out.String()
}

func TestArithmeticAndPromotion(t *testing.T) {
	got := runProgram(t, `
INTEGER a = 3
FLOAT b = 2
OUTPUT(a + b)
`)
	if got != "> 5.0\n" {
		t.Errorf("got %q, want \"> 5.0\\n\"", got)
	}
}

func TestControlFlowAndScopePreservation(t *testing.T) {
	got := runProgram(t, `
INTEGER n = 0
WHILE n ISLESSTHAN 3 DO
INTEGER n = n + 1
ENDWHILE
OUTPUT(n)
`)
	if got != "> 3\n" {
		t.Errorf("got %q, want \"> 3\\n\"", got)
	}
}

func TestForOverArrayWithBodyLocalVariable(t *testing.T) {
	lines := mustParseProgram(t, `
ARRAY xs = [10, 20, 30]
INTEGER total = 0
FOR x IN xs DO
total = total + x
ENDFOR
OUTPUT(total)
`)
	var out bytes.Buffer
	r := New(lines, &out, bplog.NewNullLogger())
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if out.String() != "> 60\n" {
		t.Errorf("got %q, want \"> 60\\n\"", out.String())
	}
	if _, err := r.env.Lookup("x"); err == nil {
		t.Error("expected the FOR loop variable x to be undefined after the loop ends")
	}
}

func TestDictionaryRoundTrip(t *testing.T) {
	got := runProgram(t, `
DICTIONARY d = {"a":1, "b":2}
d.INSERTPAIR("c":3)
OUTPUT(d.LOOKUPVALUE("b"))
d.REMOVEPAIR("a")
OUTPUT(LENGTH(d))
`)
	if got != "> 2\n> 2\n" {
		t.Errorf("got %q, want \"> 2\\n> 2\\n\"", got)
	}
}

func TestPriorityQueueOrdering(t *testing.T) {
	got := runProgram(t, `
PRIORITYQUEUE q
q.ADDITEM("low", 1)
q.ADDITEM("hi", 5)
q.ADDITEM("mid", 3)
OUTPUT(q.READITEM)
q.POPITEM
OUTPUT(q.READITEM)
`)
	if got != "> hi\n> mid\n" {
		t.Errorf("got %q, want \"> hi\\n> mid\\n\"", got)
	}
}

func TestStringVsArraySlicingAsymmetry(t *testing.T) {
	got := runProgram(t, `
STRING s = "abcdef"
ARRAY a = [10, 20, 30, 40, 50]
OUTPUT(s.READBYINDEX([1,4]))
OUTPUT(a.READBYINDEX([1,4]))
`)
	if got != "> bcd\n> [20, 30, 40, 50]\n" {
		t.Errorf("got %q, want \"> bcd\\n> [20, 30, 40, 50]\\n\"", got)
	}
}

func TestEmptyLineHasNoRuntimeEffect(t *testing.T) {
	got := runProgram(t, `
INTEGER a = 1

OUTPUT(a)
`)
	if got != "> 1\n" {
		t.Errorf("got %q, want \"> 1\\n\"", got)
	}
}

func TestForOverEmptyArraySkipsBody(t *testing.T) {
	got := runProgram(t, `
ARRAY xs = []
INTEGER hits = 0
FOR x IN xs DO
hits = hits + 1
ENDFOR
OUTPUT(hits)
`)
	if got != "> 0\n" {
		t.Errorf("got %q, want \"> 0\\n\"", got)
	}
}

func TestIntegerDivisionByZeroIsFatal(t *testing.T) {
	lines := mustParseProgram(t, `
INTEGER a = 1
INTEGER b = 0
OUTPUT(a // b)
`)
	var out bytes.Buffer
	r := New(lines, &out, bplog.NewNullLogger())
	if err := r.Run(); err == nil {
		t.Error("expected integer division by zero to abort with an error")
	}
}

func TestIfElseBranching(t *testing.T) {
	got := runProgram(t, `
INTEGER a = 5
IF a ISGREATERTHAN 10 DO
OUTPUT(1)
ELSE
OUTPUT(2)
ENDIF
`)
	if got != "> 2\n" {
		t.Errorf("got %q, want \"> 2\\n\"", got)
	}
}

func TestStackDepthRestoredAtTermination(t *testing.T) {
	lines := mustParseProgram(t, `
INTEGER a = 1
IF a ISEQUALTO 1 DO
OUTPUT(a)
ENDIF
`)
	var out bytes.Buffer
	r := New(lines, &out, bplog.NewNullLogger())
	if err := r.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if r.env.Depth() != 1 {
		t.Errorf("stack depth at termination = %d, want 1", r.env.Depth())
	}
}
