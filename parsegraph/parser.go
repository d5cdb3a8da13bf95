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
	"fmt"

	"devt.de/krotik/bp/ast"
	"devt.de/krotik/bp/token"
)

/*
Error is returned when no catalogue graph accepts a token list.
*/
type Error struct {
	Tokens []token.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("no structure graph matches token list starting %v", e.Tokens)
}

/*
Parse turns one line's token list into an AST node by trying the Leaf
rules first, then every catalogue graph in order, recursing into each
accepted capture (spec.md §4.2 "Transition selection").
*/
func Parse(tokens []token.Token) (*ast.Node, error) {
	if len(tokens) == 1 && tokens[0].Tag == token.END {
		return ast.EmptyLine(), nil
	}

	if len(tokens) == 2 && tokens[1].Tag == token.END {
		return ast.NewLeaf(tokens[0]), nil
	}

	for _, g := range Catalogue {
		captures, ok := g.run(tokens)
		if !ok {
			continue
		}

		children := make([]*ast.Node, len(captures))
		for i, c := range captures {
			child, err := Parse(c)
			if err != nil {
				return nil, err
			}
			children[i] = child
		}

		return ast.NewOperator(g.OpTag, children), nil
	}

	return nil, &Error{Tokens: tokens}
}
