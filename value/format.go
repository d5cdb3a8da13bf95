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

import (
	"strconv"
	"strings"

	"devt.de/krotik/bp/bperr"
)

/*
Output renders v as its OUTPUT representation (spec.md §6). Stack,
queue, priority queue, dictionary and dictionary-pair values cannot be
printed.
*/
func Output(v Value) (string, error) {
	switch t := v.(type) {
	case Integer:
		return strconv.FormatInt(int64(t), 10), nil
	case Float:
		return canonicalFloat(float64(t)), nil
	case Character:
		return string(rune(t)), nil
	case String:
		return string(t.Runes), nil
	case Boolean:
		if t {
			return "TRUE", nil
		}
		return "FALSE", nil
	case *Tuple:
		return joinRepresentations(t.Items)
	case *Array:
		return joinRepresentations(t.Items)
	}
	return "", bperr.New("", bperr.Type, bperr.ErrTypeMismatch,
		"this value kind cannot be printed", 0)
}

/*
canonicalFloat renders a float with at least one decimal digit, so 5.0
prints as "5.0" rather than strconv's bare "5" (spec.md §8 scenario 1).
*/
func canonicalFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func joinRepresentations(items []Value) (string, error) {
	parts := make([]string, len(items))
	for i, it := range items {
		s, err := Output(it)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}
