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
Package ast defines the abstract syntax tree produced by the
structure-graph parser: a sum of Leaf and Operator nodes (spec.md §3).
Nodes have no parent links; each source line produces a disjoint tree.
*/
package ast

import (
	"fmt"
	"strings"

	"devt.de/krotik/bp/token"
)

/*
Node is either a Leaf wrapping a single token or an Operator wrapping an
ordered list of child nodes under an operator tag.
*/
type Node struct {
	Tag      token.Tag // Operator tag; for a Leaf this is the wrapped token's tag
	Token    token.Token
	Children []*Node
	IsLeaf   bool
}

/*
NewLeaf creates a Leaf node wrapping a single token.
*/
func NewLeaf(t token.Token) *Node {
	return &Node{Tag: t.Tag, Token: t, IsLeaf: true}
}

/*
NewOperator creates an Operator node.
*/
func NewOperator(tag token.Tag, children []*Node) *Node {
	return &Node{Tag: tag, Children: children}
}

/*
EmptyLine returns the Leaf representing a blank source line (spec.md
§4.2 "Leaf rules").
*/
func EmptyLine() *Node {
	return NewLeaf(token.New(token.EMPTYLINE, ""))
}

/*
String renders a node and its children as an s-expression. Used for
debugging and by the pretty-printer's round-trip tests.
*/
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.IsLeaf {
		return n.Token.String()
	}

	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("(%v %v)", n.Tag, strings.Join(parts, " "))
}
