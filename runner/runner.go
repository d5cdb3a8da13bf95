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
Package runner drives one parsed program to completion: a line cursor,
one environment stack, and the control-flow signal interpreter that
turns the evaluator's OPEN_, SKIP_ and END_ summary tokens into frame
pushes, pops, and cursor jumps (spec.md §4.6).
*/
package runner

import (
	"io"

	"devt.de/krotik/bp/ast"
	"devt.de/krotik/bp/bperr"
	"devt.de/krotik/bp/bplog"
	"devt.de/krotik/bp/eval"
	"devt.de/krotik/bp/frame"
	"devt.de/krotik/bp/token"
	"devt.de/krotik/bp/value"
)

/*
forCondition is a FOR frame's condition payload: the loop variable's
name, the values still to be delivered, and the line index of the FOR
statement that opened it (spec.md §4.6 "OPEN_FOR").
*/
type forCondition struct {
	name   string
	values []value.Value
	pcBack int
}

/*
Runner executes one already-parsed program: a fixed sequence of AST
lines, a cursor starting at -1, and the single environment stack
threaded through every line's evaluation.
*/
type Runner struct {
	lines []*ast.Node
	pc    int
	env   *frame.Stack
	out   io.Writer
	log   bplog.Logger
}

/*
New builds a Runner over an already-parsed program. out receives every
OUTPUT line; log receives debug/error diagnostics.
*/
func New(lines []*ast.Node, out io.Writer, log bplog.Logger) *Runner {
	if log == nil {
		log = &bplog.NullLogger{}
	}
	return &Runner{lines: lines, pc: -1, env: frame.NewStack(), out: out, log: log}
}

/*
Run drives the program to completion, returning the first fatal error
encountered (spec.md §7 "errors are fatal and abort execution"). At
normal termination the environment stack must hold exactly the base
frame; a program that ends with any frame still open is a structural
error (spec.md §4.6, §8).
*/
func (r *Runner) Run() error {
	for {
		needMore, err := r.Step()
		if err != nil {
			return err
		}
		if needMore {
			break
		}
	}

	if r.env.Depth() != 1 {
		return bperr.New("", bperr.Structural, bperr.ErrInvalidState,
			"program ended with an open block", 0)
	}
	return nil
}

/*
AppendLine adds one more parsed line to the program, for the console
front-end's line-at-a-time input (spec.md §6 supplement, console mode).
*/
func (r *Runner) AppendLine(n *ast.Node) {
	r.lines = append(r.lines, n)
}

/*
Step evaluates and acts on the next line, if one is available. needMore
is true when the cursor has caught up with the last line appended so
far, which the console front-end uses to know it must read another
line before the program can continue. Each call evaluates exactly one
line; a WHILE loop jumping back to an earlier line keeps stepping
without needMore, and it is only the very next never-yet-entered line
that yields needMore.
*/
func (r *Runner) Step() (needMore bool, err error) {
	if r.pc+1 >= len(r.lines) {
		return true, nil
	}
	r.pc++

	tok, err := eval.Eval(r.lines[r.pc], r.env)
	if err != nil {
		return false, err
	}

	r.log.LogDebug("line ", r.pc, ": ", tok.String())

	if token.ActionableRootNodes[tok.Tag] {
		if err := r.act(tok); err != nil {
			return false, err
		}
	}

	return false, nil
}

func (r *Runner) act(tok token.Token) error {
	switch tok.Tag {

	case token.OUTPUTREQUEST:
		return r.printOutput(tok.Carrier.([]value.Value))

	case token.OPENIF:
		r.env.Push(frame.If, false)

	case token.SKIPIF:
		r.env.Push(frame.If, true)
		return r.skipUntil(token.ENDIF, token.ELSESIGNAL)

	case token.ELSESIGNAL:
		kind, cond, err := r.env.ConstructivePop()
		if err != nil {
			return err
		}
		if kind != frame.If {
			return bperr.New("", bperr.Structural, bperr.ErrInvalidState, "ELSE without a matching IF", 0)
		}
		if ranElse, _ := cond.(bool); ranElse {
			r.env.Push(frame.If, false)
			return nil
		}
		r.env.Push(frame.If, false)
		return r.skipUntil(token.ENDIF)

	case token.ENDIF:
		kind, _, err := r.env.ConstructivePop()
		if err != nil {
			return err
		}
		if kind != frame.If {
			return bperr.New("", bperr.Structural, bperr.ErrInvalidState, "END_IF without a matching IF", 0)
		}

	case token.OPENWHILE:
		r.env.Push(frame.While, r.pc)

	case token.SKIPWHILE:
		r.env.Push(frame.While, nil)
		return r.skipUntil(token.ENDWHILE)

	case token.ENDWHILE:
		kind, cond, err := r.env.ConstructivePop()
		if err != nil {
			return err
		}
		if kind != frame.While {
			return bperr.New("", bperr.Structural, bperr.ErrInvalidState, "END_WHILE without a matching WHILE", 0)
		}
		if idx, ok := cond.(int); ok {
			r.pc = idx - 1
		}

	case token.OPENFOR:
		p := tok.Carrier.(eval.ForPayload)
		r.env.Push(frame.For, forCondition{name: p.Name, values: p.Values[1:], pcBack: r.pc})
		if err := r.env.Make(p.Name, p.Values[0]); err != nil {
			return err
		}

	case token.SKIPFOR:
		r.env.Push(frame.For, nil)
		return r.skipUntil(token.ENDFOR)

	case token.ENDFOR:
		return r.endFor()
	}

	return nil
}

func (r *Runner) endFor() error {
	top := r.env.Top()
	if top.Kind == frame.For && top.Condition == nil {
		// SKIP_FOR pushed this frame for an empty iterable: there is no
		// loop variable to delete and nothing left to iterate.
		_, _, err := r.env.ConstructivePop()
		return err
	}
	fc, ok := top.Condition.(forCondition)
	if !ok {
		return bperr.New("", bperr.Structural, bperr.ErrInvalidState, "END_FOR without a matching FOR", 0)
	}
	if err := r.env.Delete(fc.name); err != nil {
		return err
	}

	kind, cond, err := r.env.ConstructivePop()
	if err != nil {
		return err
	}
	if kind != frame.For {
		return bperr.New("", bperr.Structural, bperr.ErrInvalidState, "END_FOR without a matching FOR", 0)
	}
	next := cond.(forCondition)

	if len(next.values) == 0 {
		return nil
	}

	r.env.Push(frame.For, forCondition{name: next.name, values: next.values[1:], pcBack: next.pcBack})
	if err := r.env.Make(next.name, next.values[0]); err != nil {
		return err
	}
	r.pc = next.pcBack
	return nil
}

/*
skipUntil advances pc past a fully-nested block without evaluating it,
tracking IF/WHILE/FOR nesting by AST shape alone so that expressions in
the untaken branch are never evaluated (spec.md §4.6). It rewinds pc by
one once a target is found so the caller's main loop re-reads that
line.
*/
func (r *Runner) skipUntil(targets ...token.Tag) error {
	want := make(map[token.Tag]bool, len(targets))
	for _, t := range targets {
		want[t] = true
	}

	ifDepth, whileDepth, forDepth := 0, 0, 0

	for {
		r.pc++
		if r.pc >= len(r.lines) {
			return bperr.New("", bperr.Structural, bperr.ErrInvalidState,
				"unexpected end of program inside a block", 0)
		}

		n := r.lines[r.pc]
		switch n.Tag {
		case token.NodeIFSTMT:
			ifDepth++
			continue
		case token.NodeWHILESTMT:
			whileDepth++
			continue
		case token.NodeFORSTMT:
			forDepth++
			continue
		}

		if !n.IsLeaf {
			continue
		}

		switch n.Token.Tag {
		case token.KWENDIF:
			if ifDepth > 0 {
				ifDepth--
				continue
			}
			if whileDepth == 0 && forDepth == 0 && want[token.ENDIF] {
				r.pc--
				return nil
			}
		case token.KWELSE:
			if ifDepth == 0 && whileDepth == 0 && forDepth == 0 && want[token.ELSESIGNAL] {
				r.pc--
				return nil
			}
		case token.KWENDWHILE:
			if whileDepth > 0 {
				whileDepth--
				continue
			}
			if ifDepth == 0 && forDepth == 0 && want[token.ENDWHILE] {
				r.pc--
				return nil
			}
		case token.KWENDFOR:
			if forDepth > 0 {
				forDepth--
				continue
			}
			if ifDepth == 0 && whileDepth == 0 && want[token.ENDFOR] {
				r.pc--
				return nil
			}
		}
	}
}

/*
printOutput implements spec.md §6: one line per OUTPUT, prefixed with
"> ", each argument rendered via its own representation and
concatenated with no separator.
*/
func (r *Runner) printOutput(items []value.Value) error {
	line := "> "
	for _, v := range items {
		s, err := value.Output(v)
		if err != nil {
			return err
		}
		line += s
	}
	_, err := io.WriteString(r.out, line+"\n")
	return err
}
