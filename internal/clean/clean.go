// Package clean holds the value-repair rules applied to raw order cells.
// These are deliberately narrow heuristics for known-bad source data, not
// general parsers.
package clean

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var nonPriceRegex = regexp.MustCompile(`[^\d.]`)

// euroMultiplier is a fixed approximate EUR→USD conversion applied when the
// raw value carries a Euro sign.
const euroMultiplier = 1.2

// Price turns a raw price cell into an amount. Missing values and values with
// no digits yield 0. Thousands and locale separators are not handled: after
// stripping everything but digits and dots, a remainder that does not parse
// as a decimal number also yields 0.
func Price(v any) float64 {
	if v == nil {
		return 0
	}
	s := strings.TrimSpace(Stringify(v))
	multiplier := 1.0
	if strings.Contains(s, "€") {
		multiplier = euroMultiplier
	}
	s = nonPriceRegex.ReplaceAllString(s, "")
	if s == "" {
		return 0
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return amount * multiplier
}

// DateString repairs the handful of malformed meridiem markers seen in source
// timestamps ("1 P.M." → "1 PM"). It is idempotent and leaves anything else
// untouched for the downstream parser to judge.
func DateString(v any) string {
	s := Stringify(v)
	s = strings.ReplaceAll(s, "A.M.", "AM")
	s = strings.ReplaceAll(s, "P.M.", "PM")
	s = strings.ReplaceAll(s, ".M.", "M")
	return strings.TrimSpace(s)
}

// Stringify renders a cell the way the rest of the pipeline expects: floats
// without a spurious exponent, nil as the empty string.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// Number coerces a numeric cell to float64. Missing or non-numeric cells
// yield 0, matching the quantity fill rule.
func Number(v any) float64 {
	switch t := v.(type) {
	case nil:
		return 0
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int32:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
