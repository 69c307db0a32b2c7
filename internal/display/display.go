// Package display renders primitive values the way the lessons print them.
// Plain values use their shortest human form ("3.14", "R"); Debug variants add
// the punctuation that shows a value's type ("1.0", "'R'", "[1, 2]").
package display

import (
	"math"
	"strconv"
	"strings"
)

// Float returns the shortest decimal that round-trips f. Whole numbers carry
// no fractional part; infinities print as "inf" and "-inf".
func Float(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DebugFloat is Float, except whole numbers keep a trailing ".0".
func DebugFloat(f float64) string {
	s := Float(f)
	if !strings.ContainsAny(s, ".nN") {
		s += ".0"
	}
	return s
}

// Char returns r as a one-character string.
func Char(r rune) string { return string(r) }

// DebugChar returns r in single quotes.
func DebugChar(r rune) string { return "'" + string(r) + "'" }

// Bool returns "true" or "false".
func Bool(b bool) string { return strconv.FormatBool(b) }

// Ints renders a slice as "[1, 2, 3]".
func Ints(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Tuple joins already-rendered fields as "(a, b, c)".
func Tuple(fields ...string) string {
	return "(" + strings.Join(fields, ", ") + ")"
}
