/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package lexer

import (
	"testing"

	"devt.de/krotik/bp/token"
)

func TestEmptyLine(t *testing.T) {
	toks, err := Lex("test", "   ")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 1 || toks[0].Tag != token.END {
		t.Errorf("unexpected tokens for an empty line: %v", toks)
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		line string
		want []token.Tag
	}{
		{"42", []token.Tag{token.NUMBERINT, token.END}},
		{"-3.5", []token.Tag{token.NUMBERFLOAT, token.END}},
		{"'a'", []token.Tag{token.CHARLIT, token.END}},
		{`"hi there"`, []token.Tag{token.STRINGLIT, token.END}},
		{"TRUE", []token.Tag{token.BOOLLIT, token.END}},
		{"FALSE", []token.Tag{token.BOOLLIT, token.END}},
		{"myVar", []token.Tag{token.IDENTIFIER, token.END}},
	}

	for _, tc := range tests {
		toks, err := Lex("test", tc.line)
		if err != nil {
			t.Errorf("Lex(%q) returned error: %v", tc.line, err)
			continue
		}
		if !sameTags(toks, tc.want) {
			t.Errorf("Lex(%q) = %v, want tags %v", tc.line, toks, tc.want)
		}
	}
}

func TestDecimalBeatsInteger(t *testing.T) {
	toks, err := Lex("test", "3.14")
	if err != nil {
		t.Fatal(err)
	}
	if toks[0].Tag != token.NUMBERFLOAT || toks[0].Payload != "3.14" {
		t.Errorf("expected a single float literal, got %v", toks)
	}
}

func TestDeclaratorAndAssignment(t *testing.T) {
	toks, err := Lex("test", "INTEGER a = 3")
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Tag{token.DECLINTEGER, token.IDENTIFIER, token.OPASSIGN, token.NUMBERINT, token.END}
	if !sameTags(toks, want) {
		t.Errorf("Lex(INTEGER a = 3) = %v, want tags %v", toks, want)
	}
}

func TestComparatorLongestMatchWins(t *testing.T) {
	toks, err := Lex("test", "a ISGREATERTHANOREQUALTO b")
	if err != nil {
		t.Fatal(err)
	}
	if toks[1].Tag != token.KWISGREATERTHANOREQUALTO {
		t.Errorf("expected ISGREATERTHANOREQUALTO to win over the ISGREATERTHAN prefix, got %v", toks[1].Tag)
	}
}

func TestWordBoundary(t *testing.T) {
	// "IFoo" must lex as one identifier, not the keyword IF followed by "oo".
	toks, err := Lex("test", "IFoo")
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 2 || toks[0].Tag != token.IDENTIFIER || toks[0].Payload != "IFoo" {
		t.Errorf("expected a single identifier IFoo, got %v", toks)
	}
}

func TestCollectionOperationDot(t *testing.T) {
	toks, err := Lex("test", "q.READITEM")
	if err != nil {
		t.Fatal(err)
	}
	want := []token.Tag{token.IDENTIFIER, token.DOT, token.KWREADITEM, token.END}
	if !sameTags(toks, want) {
		t.Errorf("Lex(q.READITEM) = %v, want tags %v", toks, want)
	}
}

func TestKeywordMatchingIsCaseSensitive(t *testing.T) {
	tests := []struct {
		line string
		want []token.Tag
	}{
		{"if", []token.Tag{token.IDENTIFIER, token.END}},
		{"output", []token.Tag{token.IDENTIFIER, token.END}},
		{"true", []token.Tag{token.IDENTIFIER, token.END}},
		{"While", []token.Tag{token.IDENTIFIER, token.END}},
	}

	for _, tc := range tests {
		toks, err := Lex("test", tc.line)
		if err != nil {
			t.Errorf("Lex(%q) returned error: %v", tc.line, err)
			continue
		}
		if !sameTags(toks, tc.want) || toks[0].Payload != tc.line {
			t.Errorf("Lex(%q) = %v, want a single IDENTIFIER with payload %q", tc.line, toks, tc.line)
		}
	}
}

func TestLexicalError(t *testing.T) {
	if _, err := Lex("test", "a $ b"); err == nil {
		t.Error("expected a lexical error for an unrecognised character")
	}
}

func sameTags(toks []token.Token, want []token.Tag) bool {
	if len(toks) != len(want) {
		return false
	}
	for i, tg := range want {
		if toks[i].Tag != tg {
			return false
		}
	}
	return true
}
