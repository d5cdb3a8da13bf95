/*
 * BP
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package value

import "devt.de/krotik/bp/bperr"

func asFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Integer:
		return float64(t), true
	case Float:
		return float64(t), true
	}
	return 0, false
}

func bothInteger(a, b Value) (Integer, Integer, bool) {
	x, ok1 := a.(Integer)
	y, ok2 := b.(Integer)
	return x, y, ok1 && ok2
}

/*
Add implements `+` (spec.md §4.3): numeric addition with integer->float
promotion, string concatenation, or array join. Mixed types are an
error.
*/
func Add(a, b Value) (Value, error) {
	if x, y, ok := bothInteger(a, b); ok {
		return x + y, nil
	}
	if fa, ok1 := asFloat(a); ok1 {
		if fb, ok2 := asFloat(b); ok2 {
			return Float(fa + fb), nil
		}
	}
	if sa, ok1 := a.(String); ok1 {
		if sb, ok2 := b.(String); ok2 {
			return String{Runes: append(append([]rune{}, sa.Runes...), sb.Runes...)}, nil
		}
	}
	if aa, ok1 := a.(*Array); ok1 {
		if ab, ok2 := b.(*Array); ok2 {
			return JoinArrays(aa, ab), nil
		}
	}
	return nil, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, "incompatible operands for +", 0)
}

/*
Sub implements `-`: numeric subtraction only.
*/
func Sub(a, b Value) (Value, error) {
	if x, y, ok := bothInteger(a, b); ok {
		return x - y, nil
	}
	if fa, ok1 := asFloat(a); ok1 {
		if fb, ok2 := asFloat(b); ok2 {
			return Float(fa - fb), nil
		}
	}
	return nil, bperr.New("", bperr.Type, bperr.ErrNotANumber, "- requires numeric operands", 0)
}

/*
Mul implements `*`: numeric multiplication only.
*/
func Mul(a, b Value) (Value, error) {
	if x, y, ok := bothInteger(a, b); ok {
		return x * y, nil
	}
	if fa, ok1 := asFloat(a); ok1 {
		if fb, ok2 := asFloat(b); ok2 {
			return Float(fa * fb), nil
		}
	}
	return nil, bperr.New("", bperr.Type, bperr.ErrNotANumber, "* requires numeric operands", 0)
}

/*
Div implements `/`: plain division of two integers produces a float
(spec.md §4.3).
*/
func Div(a, b Value) (Value, error) {
	fa, ok1 := asFloat(a)
	fb, ok2 := asFloat(b)
	if !ok1 || !ok2 {
		return nil, bperr.New("", bperr.Type, bperr.ErrNotANumber, "/ requires numeric operands", 0)
	}
	if fb == 0 {
		return nil, bperr.New("", bperr.Runtime, bperr.ErrDivideByZero, "division by zero", 0)
	}
	return Float(fa / fb), nil
}

/*
IntDiv implements `//`: integer-only division, truncated toward zero
(spec.md §4.3 rejects float operands).
*/
func IntDiv(a, b Value) (Value, error) {
	x, y, ok := bothInteger(a, b)
	if !ok {
		return nil, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, "// requires integer operands", 0)
	}
	if y == 0 {
		return nil, bperr.New("", bperr.Runtime, bperr.ErrDivideByZero, "integer division by zero", 0)
	}
	return Integer(int64(x) / int64(y)), nil
}

/*
Mod implements `%`: integer-only modulo (spec.md §4.3 rejects float
operands).
*/
func Mod(a, b Value) (Value, error) {
	x, y, ok := bothInteger(a, b)
	if !ok {
		return nil, bperr.New("", bperr.Type, bperr.ErrTypeMismatch, "% requires integer operands", 0)
	}
	if y == 0 {
		return nil, bperr.New("", bperr.Runtime, bperr.ErrDivideByZero, "modulo by zero", 0)
	}
	return Integer(int64(x) % int64(y)), nil
}

/*
Comparator identifies one of the six boolean comparators.
*/
type Comparator int

const (
	CmpEqual Comparator = iota
	CmpNotEqual
	CmpGreater
	CmpLess
	CmpGreaterOrEqual
	CmpLessOrEqual
)

/*
Compare implements boolean comparison (spec.md §4.4): ISEQUALTO and
ISNOTEQUALTO work on any pair; the ordering comparators demand numeric
operands.
*/
func Compare(op Comparator, a, b Value) (Boolean, error) {
	if op == CmpEqual || op == CmpNotEqual {
		eq := scalarEqual(a, b)
		if op == CmpNotEqual {
			eq = !eq
		}
		return Boolean(eq), nil
	}

	fa, ok1 := asFloat(a)
	fb, ok2 := asFloat(b)
	if !ok1 || !ok2 {
		return false, bperr.New("", bperr.Type, bperr.ErrNotANumber,
			"this comparator requires numeric operands", 0)
	}

	switch op {
	case CmpGreater:
		return Boolean(fa > fb), nil
	case CmpLess:
		return Boolean(fa < fb), nil
	case CmpGreaterOrEqual:
		return Boolean(fa >= fb), nil
	case CmpLessOrEqual:
		return Boolean(fa <= fb), nil
	}
	return false, bperr.New("", bperr.Runtime, bperr.ErrInvalidState, "unknown comparator", 0)
}

func scalarEqual(a, b Value) bool {
	if fa, ok1 := asFloat(a); ok1 {
		if fb, ok2 := asFloat(b); ok2 {
			return fa == fb
		}
	}
	return keysEqual(a, b)
}

/*
And implements binary boolean AND; Or implements binary boolean OR; Not
implements unary boolean NOT. All three require boolean operands
(spec.md §4.4).
*/
func And(a, b Value) (Boolean, error) {
	x, y, ok := bothBoolean(a, b)
	if !ok {
		return false, bperr.New("", bperr.Type, bperr.ErrNotABoolean, "AND requires boolean operands", 0)
	}
	return x && y, nil
}

func Or(a, b Value) (Boolean, error) {
	x, y, ok := bothBoolean(a, b)
	if !ok {
		return false, bperr.New("", bperr.Type, bperr.ErrNotABoolean, "OR requires boolean operands", 0)
	}
	return x || y, nil
}

func Not(a Value) (Boolean, error) {
	x, ok := a.(Boolean)
	if !ok {
		return false, bperr.New("", bperr.Type, bperr.ErrNotABoolean, "NOT requires a boolean operand", 0)
	}
	return !x, nil
}

func bothBoolean(a, b Value) (Boolean, Boolean, bool) {
	x, ok1 := a.(Boolean)
	y, ok2 := b.(Boolean)
	return x, y, ok1 && ok2
}
