/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package eval

import (
	"devt.de/krotik/bp/bperr"
	"devt.de/krotik/bp/frame"
	"devt.de/krotik/bp/token"
	"devt.de/krotik/bp/value"
)

/*
ForPayload is the OPEN_FOR signal payload: the loop variable's name and
every value of the iterable, in order (spec.md §4.6). An empty iterable
emits SKIP_FOR instead, which carries no payload.
*/
type ForPayload struct {
	Name   string
	Values []value.Value
}

func init() {
	dispatch = map[token.Tag]handler{
		token.NodeBRACKETS:         evalBrackets,
		token.NodeARRAYLIT:         evalArrayLit,
		token.NodeTUPLELIT:         evalTupleLit,
		token.NodeDICTLIT:          evalDictLit,
		token.NodeASSIGNMENT:       evalAssignment,
		token.NodeDECLWITHVALUE:    evalDeclWithValue,
		token.NodeDECLWITHOUTVALUE: evalDeclWithoutValue,
		token.NodeIFSTMT:           evalIf,
		token.NodeWHILESTMT:        evalWhile,
		token.NodeFORSTMT:          evalFor,
		token.NodeOUTPUTCALL:       evalOutput,
		token.NodeLENGTHCHECK:      evalLength,
		token.NodeREADBYINDEX:      evalReadByIndex,
		token.NodeARRAYAPPEND:      evalArrayAppend,
		token.NodePQADDITEM:        evalPQAddItem,
		token.NodeSQADDITEM:        evalSQAddItem,
		token.NodeSQREAD:           evalSQRead,
		token.NodeSQPOP:            evalSQPop,
		token.NodeDICTINSERT:       evalDictInsert,
		token.NodeDICTLOOKUP:       evalDictLookup,
		token.NodeDICTREMOVE:       evalDictRemove,
		token.NodeDICTKEYLIST:      evalDictKeyList,
		token.NodeDICTPAIR:         evalDictPair,
		token.NodeBINBOOL:          evalBinBool,
		token.NodeUNARYBOOL:        evalUnaryBool,
		token.NodeBOOLCOMPARISON:   evalBoolComparison,
		token.NodeSUB:              arithHandler(value.Sub),
		token.NodeADD:              arithHandler(value.Add),
		token.NodeMUL:              arithHandler(value.Mul),
		token.NodeDIV:              arithHandler(value.Div),
		token.NodeINTDIV:           arithHandler(value.IntDiv),
		token.NodeMOD:              arithHandler(value.Mod),
	}
}

func evalBrackets(args []token.Token, env *frame.Stack) (token.Token, error) {
	return args[0], nil
}

func evalArrayLit(args []token.Token, env *frame.Stack) (token.Token, error) {
	items, err := derefAll(args, env)
	if err != nil {
		return token.Token{}, err
	}
	return carrier(value.NewArray(items)), nil
}

func evalTupleLit(args []token.Token, env *frame.Stack) (token.Token, error) {
	items, err := derefAll(args, env)
	if err != nil {
		return token.Token{}, err
	}
	return carrier(value.NewTuple(items)), nil
}

func evalDictLit(args []token.Token, env *frame.Stack) (token.Token, error) {
	pairs := make([]*value.DictionaryPair, len(args))
	for i, a := range args {
		v, err := deref(a, env)
		if err != nil {
			return token.Token{}, err
		}
		p, ok := v.(*value.DictionaryPair)
		if !ok {
			return token.Token{}, bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
				"dictionary literal entries must be key:value pairs", 0)
		}
		pairs[i] = p
	}
	d, err := value.NewDictionary(pairs)
	if err != nil {
		return token.Token{}, err
	}
	return carrier(d), nil
}

func evalDictPair(args []token.Token, env *frame.Stack) (token.Token, error) {
	k, err := deref(args[0], env)
	if err != nil {
		return token.Token{}, err
	}
	v, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}
	return carrier(&value.DictionaryPair{Key: k, Val: v}), nil
}

func derefAll(args []token.Token, env *frame.Stack) ([]value.Value, error) {
	out := make([]value.Value, len(args))
	for i, a := range args {
		v, err := deref(a, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func evalAssignment(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	v, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}
	if err := env.Set(name, v); err != nil {
		return token.Token{}, err
	}
	return nonActionable, nil
}

/*
declaredZeroValue returns the empty value for a STACK, QUEUE or
PRIORITYQUEUE declarator, the only declarators the
declaration-without-value graph accepts. Any other declarator is an
error.
*/
func declaredZeroValue(declTag token.Tag) (value.Value, error) {
	switch declTag {
	case token.DECLSTACK:
		return value.NewStack(), nil
	case token.DECLQUEUE:
		return value.NewQueue(), nil
	case token.DECLPRIORITYQUEUE:
		return value.NewPriorityQueue(), nil
	}
	return nil, bperr.New("", bperr.Structural, bperr.ErrInvalidState,
		"declarator takes no initial value", 0)
}

/*
checkDeclaredValue enforces the declared type against a supplied value,
allowing integer->float promotion (spec.md §4.4 "declaration-with-value").
*/
func checkDeclaredValue(declTag token.Tag, v value.Value) (value.Value, error) {
	switch declTag {
	case token.DECLINTEGER:
		if _, ok := v.(value.Integer); ok {
			return v, nil
		}
	case token.DECLFLOAT:
		if f, ok := v.(value.Float); ok {
			return f, nil
		}
		if i, ok := v.(value.Integer); ok {
			return value.Float(i), nil
		}
	case token.DECLCHARACTER:
		if _, ok := v.(value.Character); ok {
			return v, nil
		}
	case token.DECLSTRING:
		if _, ok := v.(value.String); ok {
			return v, nil
		}
	case token.DECLBOOLEAN:
		if _, ok := v.(value.Boolean); ok {
			return v, nil
		}
	case token.DECLARRAY:
		if _, ok := v.(*value.Array); ok {
			return v, nil
		}
	case token.DECLTUPLE:
		if _, ok := v.(*value.Tuple); ok {
			return v, nil
		}
	case token.DECLDICTIONARY:
		if _, ok := v.(*value.Dictionary); ok {
			return v, nil
		}
	}
	return nil, bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
		"initial value does not match declared type", 0)
}

func evalDeclWithValue(args []token.Token, env *frame.Stack) (token.Token, error) {
	declTag := args[0].Tag
	name := args[1].Payload
	v, err := deref(args[2], env)
	if err != nil {
		return token.Token{}, err
	}
	v, err = checkDeclaredValue(declTag, v)
	if err != nil {
		return token.Token{}, err
	}
	if err := declareOrReassign(env, name, v); err != nil {
		return token.Token{}, err
	}
	return nonActionable, nil
}

func evalDeclWithoutValue(args []token.Token, env *frame.Stack) (token.Token, error) {
	declTag := args[0].Tag
	name := args[1].Payload
	v, err := declaredZeroValue(declTag)
	if err != nil {
		return token.Token{}, err
	}
	if err := declareOrReassign(env, name, v); err != nil {
		return token.Token{}, err
	}
	return nonActionable, nil
}

/*
declareOrReassign implements spec.md §9(e) as assignment-if-type-matches:
when Make reports the name as already declared in the top frame, the
value is Set instead of raising a redeclaration error. A loop body's
declaration on later iterations does not reach this fallback, because
each iteration runs in a freshly pushed frame; the value carried into
the surrounding frame is reconciled by frame.ConstructivePop.
*/
func declareOrReassign(env *frame.Stack, name string, v value.Value) error {
	err := env.Make(name, v)
	if err == nil {
		return nil
	}
	if re, ok := err.(*bperr.RuntimeError); ok && re.Type == bperr.ErrRedeclaration {
		return env.Set(name, v)
	}
	return err
}

func evalIf(args []token.Token, env *frame.Stack) (token.Token, error) {
	cond, err := deref(args[0], env)
	if err != nil {
		return token.Token{}, err
	}
	b, ok := cond.(value.Boolean)
	if !ok {
		return token.Token{}, bperr.New("", bperr.Type, bperr.ErrNotABoolean, "IF condition must be boolean", 0)
	}
	if bool(b) {
		return token.Token{Tag: token.OPENIF}, nil
	}
	return token.Token{Tag: token.SKIPIF}, nil
}

func evalWhile(args []token.Token, env *frame.Stack) (token.Token, error) {
	cond, err := deref(args[0], env)
	if err != nil {
		return token.Token{}, err
	}
	b, ok := cond.(value.Boolean)
	if !ok {
		return token.Token{}, bperr.New("", bperr.Type, bperr.ErrNotABoolean, "WHILE condition must be boolean", 0)
	}
	if bool(b) {
		return token.Token{Tag: token.OPENWHILE}, nil
	}
	return token.Token{Tag: token.SKIPWHILE}, nil
}

func evalFor(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	iterable, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}

	var items []value.Value
	switch t := iterable.(type) {
	case *value.Array:
		items = t.Items
	case *value.Tuple:
		items = t.Items
	default:
		return token.Token{}, bperr.New("", bperr.Type, bperr.ErrNotIterable, "FOR requires an array or tuple", 0)
	}

	if len(items) == 0 {
		return token.Token{Tag: token.SKIPFOR}, nil
	}
	return token.WithCarrier(token.OPENFOR, ForPayload{Name: name, Values: items}), nil
}

func evalOutput(args []token.Token, env *frame.Stack) (token.Token, error) {
	items, err := derefAll(args, env)
	if err != nil {
		return token.Token{}, err
	}
	return token.WithCarrier(token.OUTPUTREQUEST, items), nil
}

func evalLength(args []token.Token, env *frame.Stack) (token.Token, error) {
	v, err := deref(args[0], env)
	if err != nil {
		return token.Token{}, err
	}
	n, err := value.Length(v)
	if err != nil {
		return token.Token{}, err
	}
	return carrier(value.Integer(n)), nil
}

func evalReadByIndex(args []token.Token, env *frame.Stack) (token.Token, error) {
	target, err := deref(args[0], env)
	if err != nil {
		return token.Token{}, err
	}
	idx, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}

	switch t := target.(type) {
	case value.String:
		v, err := value.StringReadByIndex(t, idx)
		if err != nil {
			return token.Token{}, err
		}
		return carrier(v), nil
	case *value.Array:
		v, err := value.ArrayReadByIndex(t, idx)
		if err != nil {
			return token.Token{}, err
		}
		return carrier(v), nil
	}
	return token.Token{}, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, "READBYINDEX requires a string or array", 0)
}

func evalArrayAppend(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	v, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}

	arr, err := lookupAs[*value.Array](env, name, "ARRAY")
	if err != nil {
		return token.Token{}, err
	}
	arr.Append(v)
	if err := env.Set(name, arr); err != nil {
		return token.Token{}, err
	}
	return nonActionable, nil
}

func evalPQAddItem(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	v, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}
	pv, err := deref(args[2], env)
	if err != nil {
		return token.Token{}, err
	}
	prio, ok := pv.(value.Integer)
	if !ok {
		return token.Token{}, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, "priority must be an integer", 0)
	}

	pq, err := lookupAs[*value.PriorityQueue](env, name, "PRIORITYQUEUE")
	if err != nil {
		return token.Token{}, err
	}
	pq.AddItem(v, int(prio))
	if err := env.Set(name, pq); err != nil {
		return token.Token{}, err
	}
	return nonActionable, nil
}

func evalSQAddItem(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	v, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}

	cur, err := env.Lookup(name)
	if err != nil {
		return token.Token{}, err
	}
	switch t := value.DeepCopy(cur).(type) {
	case *value.Stack:
		t.AddItem(v)
		err = env.Set(name, t)
	case *value.Queue:
		t.AddItem(v)
		err = env.Set(name, t)
	default:
		return token.Token{}, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, name+" is not a stack or queue", 0)
	}
	if err != nil {
		return token.Token{}, err
	}
	return nonActionable, nil
}

func evalSQRead(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	cur, err := env.Lookup(name)
	if err != nil {
		return token.Token{}, err
	}
	switch t := cur.(type) {
	case *value.Stack:
		v, err := t.ReadItem()
		if err != nil {
			return token.Token{}, err
		}
		return carrier(value.DeepCopy(v)), nil
	case *value.Queue:
		v, err := t.ReadItem()
		if err != nil {
			return token.Token{}, err
		}
		return carrier(value.DeepCopy(v)), nil
	}
	return token.Token{}, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, name+" is not a stack or queue", 0)
}

func evalSQPop(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	cur, err := env.Lookup(name)
	if err != nil {
		return token.Token{}, err
	}

	var popped value.Value
	switch value.DeepCopy(cur).(type) {
	case *value.Stack:
		t := value.DeepCopy(cur).(*value.Stack)
		popped, err = t.PopItem()
		if err == nil {
			err = env.Set(name, t)
		}
	case *value.Queue:
		t := value.DeepCopy(cur).(*value.Queue)
		popped, err = t.PopItem()
		if err == nil {
			err = env.Set(name, t)
		}
	default:
		err = bperr.New("", bperr.Type, bperr.ErrTypeMismatch, name+" is not a stack or queue", 0)
	}
	if err != nil {
		return token.Token{}, err
	}
	return carrier(popped), nil
}

func evalDictInsert(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	v, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}
	pair, ok := v.(*value.DictionaryPair)
	if !ok {
		return token.Token{}, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, "INSERTPAIR requires a key:value pair", 0)
	}

	d, err := lookupAs[*value.Dictionary](env, name, "DICTIONARY")
	if err != nil {
		return token.Token{}, err
	}
	if err := d.Insert(pair.Key, pair.Val); err != nil {
		return token.Token{}, err
	}
	if err := env.Set(name, d); err != nil {
		return token.Token{}, err
	}
	return nonActionable, nil
}

func evalDictLookup(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	key, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}
	d, ok := mustDict(env, name)
	if !ok {
		return token.Token{}, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, name+" is not a dictionary", 0)
	}
	v, err := d.Lookup(key)
	if err != nil {
		return token.Token{}, err
	}
	return carrier(value.DeepCopy(v)), nil
}

func evalDictRemove(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	key, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}
	d, err := lookupAs[*value.Dictionary](env, name, "DICTIONARY")
	if err != nil {
		return token.Token{}, err
	}
	if err := d.Remove(key); err != nil {
		return token.Token{}, err
	}
	if err := env.Set(name, d); err != nil {
		return token.Token{}, err
	}
	return nonActionable, nil
}

func evalDictKeyList(args []token.Token, env *frame.Stack) (token.Token, error) {
	name := args[0].Payload
	d, ok := mustDict(env, name)
	if !ok {
		return token.Token{}, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, name+" is not a dictionary", 0)
	}
	return carrier(d.ListKeys()), nil
}

func mustDict(env *frame.Stack, name string) (*value.Dictionary, bool) {
	cur, err := env.Lookup(name)
	if err != nil {
		return nil, false
	}
	d, ok := cur.(*value.Dictionary)
	return d, ok
}

/*
lookupAs fetches name's current value, deep-copies it into a working
copy and type-asserts it to T, implementing the edit-then-reassign
pattern's "edit" half (spec.md §4.5).
*/
func lookupAs[T value.Value](env *frame.Stack, name, wantKind string) (T, error) {
	var zero T
	cur, err := env.Lookup(name)
	if err != nil {
		return zero, err
	}
	cp := value.DeepCopy(cur)
	t, ok := cp.(T)
	if !ok {
		return zero, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, name+" is not a "+wantKind, 0)
	}
	return t, nil
}

func evalBinBool(args []token.Token, env *frame.Stack) (token.Token, error) {
	l, err := deref(args[0], env)
	if err != nil {
		return token.Token{}, err
	}
	r, err := deref(args[2], env)
	if err != nil {
		return token.Token{}, err
	}

	var b value.Boolean
	switch args[1].Tag {
	case token.KWAND:
		b, err = value.And(l, r)
	case token.KWOR:
		b, err = value.Or(l, r)
	default:
		return token.Token{}, bperr.New("", bperr.Structural, bperr.ErrInvalidState, "unknown binary boolean operator", 0)
	}
	if err != nil {
		return token.Token{}, err
	}
	return carrier(b), nil
}

func evalUnaryBool(args []token.Token, env *frame.Stack) (token.Token, error) {
	v, err := deref(args[1], env)
	if err != nil {
		return token.Token{}, err
	}
	b, err := value.Not(v)
	if err != nil {
		return token.Token{}, err
	}
	return carrier(b), nil
}

var comparatorByTag = map[token.Tag]value.Comparator{
	token.KWISEQUALTO:              value.CmpEqual,
	token.KWISNOTEQUALTO:           value.CmpNotEqual,
	token.KWISGREATERTHAN:          value.CmpGreater,
	token.KWISLESSTHAN:             value.CmpLess,
	token.KWISGREATERTHANOREQUALTO: value.CmpGreaterOrEqual,
	token.KWISLESSTHANOREQUALTO:    value.CmpLessOrEqual,
}

func evalBoolComparison(args []token.Token, env *frame.Stack) (token.Token, error) {
	l, err := deref(args[0], env)
	if err != nil {
		return token.Token{}, err
	}
	r, err := deref(args[2], env)
	if err != nil {
		return token.Token{}, err
	}
	op, ok := comparatorByTag[args[1].Tag]
	if !ok {
		return token.Token{}, bperr.New("", bperr.Structural, bperr.ErrInvalidState, "unknown comparator", 0)
	}
	b, err := value.Compare(op, l, r)
	if err != nil {
		return token.Token{}, err
	}
	return carrier(b), nil
}

func arithHandler(op func(a, b value.Value) (value.Value, error)) handler {
	return func(args []token.Token, env *frame.Stack) (token.Token, error) {
		l, err := deref(args[0], env)
		if err != nil {
			return token.Token{}, err
		}
		r, err := deref(args[1], env)
		if err != nil {
			return token.Token{}, err
		}
		v, err := op(l, r)
		if err != nil {
			return token.Token{}, err
		}
		return carrier(v), nil
	}
}
