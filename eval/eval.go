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
Package eval implements the recursive evaluator (spec.md §4.4): it
walks one AST, post-order, threading an explicit environment stack and
producing a summary token per node. Operator dispatch is a static
table, mirroring the provider-map idiom used elsewhere in this
ecosystem's interpreters rather than a type switch.
*/
package eval

import (
	"devt.de/krotik/bp/ast"
	"devt.de/krotik/bp/bperr"
	"devt.de/krotik/bp/frame"
	"devt.de/krotik/bp/token"
	"devt.de/krotik/bp/value"
)

/*
handler evaluates one operator node given its already-evaluated
children's summary tokens.
*/
type handler func(args []token.Token, env *frame.Stack) (token.Token, error)

var dispatch map[token.Tag]handler

/*
Eval evaluates one AST node, returning its summary token (spec.md
§4.4). Leaves are converted per evalLeaf; operator nodes evaluate their
children left-to-right before dispatching on the operator tag.
*/
func Eval(n *ast.Node, env *frame.Stack) (token.Token, error) {
	if n.IsLeaf {
		return evalLeaf(n)
	}

	args := make([]token.Token, len(n.Children))
	for i, c := range n.Children {
		t, err := Eval(c, env)
		if err != nil {
			return token.Token{}, err
		}
		args[i] = t
	}

	h, ok := dispatch[n.Tag]
	if !ok {
		return token.Token{}, bperr.New("", bperr.Structural, bperr.ErrInvalidState,
			"no evaluator registered for "+n.Tag.String(), 0)
	}
	return h(args, env)
}

/*
evalLeaf converts a Leaf's token into a summary token. Literal tokens
become value carriers; the block-closing keywords ENDIF, ELSE, ENDWHILE
and ENDFOR become their control signals; identifiers, the empty-line
sentinel and any other leaf tag pass through unchanged so mutating
operators can read the raw identifier name (spec.md §4.4 "Leaf").
*/
func evalLeaf(n *ast.Node) (token.Token, error) {
	t := n.Token

	switch t.Tag {
	case token.NUMBERINT, token.NUMBERFLOAT, token.CHARLIT, token.STRINGLIT, token.BOOLLIT:
		v, err := literalValue(t)
		if err != nil {
			return token.Token{}, err
		}
		return token.WithCarrier(tagForKind(v.Kind()), v), nil

	// A bare block-closing keyword is a complete statement on its own
	// line; it carries no value, only the matching control signal the
	// runner acts on (spec.md §4.6).
	case token.KWENDIF:
		return token.Token{Tag: token.ENDIF}, nil
	case token.KWELSE:
		return token.Token{Tag: token.ELSESIGNAL}, nil
	case token.KWENDWHILE:
		return token.Token{Tag: token.ENDWHILE}, nil
	case token.KWENDFOR:
		return token.Token{Tag: token.ENDFOR}, nil
	}

	return t, nil
}

func literalValue(t token.Token) (value.Value, error) {
	switch t.Tag {
	case token.NUMBERINT:
		return value.NewIntegerFromLiteral(t.Payload)
	case token.NUMBERFLOAT:
		return value.NewFloatFromLiteral(t.Payload)
	case token.CHARLIT:
		return value.NewCharacterFromLiteral(t.Payload)
	case token.STRINGLIT:
		return value.NewString(t.Payload), nil
	case token.BOOLLIT:
		return value.NewBooleanFromLiteral(t.Payload)
	}
	return nil, bperr.New("", bperr.Structural, bperr.ErrInvalidState, "not a literal token", 0)
}

func tagForKind(k value.Kind) token.Tag {
	switch k {
	case value.KindInteger:
		return token.VALINTEGER
	case value.KindFloat:
		return token.VALFLOAT
	case value.KindCharacter:
		return token.VALCHARACTER
	case value.KindString:
		return token.VALSTRING
	case value.KindBoolean:
		return token.VALBOOLEAN
	case value.KindTuple:
		return token.VALTUPLE
	case value.KindArray:
		return token.VALARRAY
	case value.KindStack:
		return token.VALSTACK
	case value.KindQueue:
		return token.VALQUEUE
	case value.KindPriorityQueue:
		return token.VALPRIORITYQUEUE
	case value.KindDictionaryPair:
		return token.VALDICTIONARYPAIR
	case value.KindDictionary:
		return token.VALDICTIONARY
	}
	return token.ERROR
}

/*
deref resolves one evaluated argument token to a virtual value. An
identifier token is looked up in the environment and deep-copied so
in-place mutation of the result can never alias frame state (spec.md
§4.4); any other token is expected to already carry a value.
*/
func deref(t token.Token, env *frame.Stack) (value.Value, error) {
	if t.Tag == token.IDENTIFIER {
		v, err := env.Lookup(t.Payload)
		if err != nil {
			return nil, err
		}
		return value.DeepCopy(v), nil
	}

	v, ok := t.Carrier.(value.Value)
	if !ok {
		return nil, bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
			"expected a value-bearing token", 0)
	}
	return v, nil
}

func carrier(v value.Value) token.Token {
	return token.WithCarrier(tagForKind(v.Kind()), v)
}

/*
nonActionable is the summary token emitted by operators that produce no
directly-usable value (spec.md §4.4).
*/
var nonActionable = token.Token{Tag: token.NONACTIONABLE}
