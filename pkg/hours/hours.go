// Package hours parses, validates and formats hour quantities typed as
// free-form text. Three syntaxes are accepted, checked in order:
//
//	8.5   decimal hours
//	8:30  clock form, H:MM with minutes 00-59
//	8     whole hours
//
// Whole hours are already covered by the decimal syntax; the explicit
// branch is kept so Classify can report it.
package hours

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnparseable is returned by ParseStrict when the input matches none of
// the accepted syntaxes.
var ErrUnparseable = errors.New("unparseable hours")

// Syntax identifies which surface form an hour string used.
type Syntax int

const (
	SyntaxNone    Syntax = iota // Matches no accepted form
	SyntaxDecimal               // 8 or 8.5
	SyntaxClock                 // 8:30
	SyntaxInteger               // 8 (never reached, decimal matches first)
)

func (s Syntax) String() string {
	switch s {
	case SyntaxDecimal:
		return "decimal"
	case SyntaxClock:
		return "clock"
	case SyntaxInteger:
		return "integer"
	default:
		return "none"
	}
}

var (
	decimalPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)
	clockPattern   = regexp.MustCompile(`^\d+:[0-5]\d$`)
	integerPattern = regexp.MustCompile(`^\d+$`)
)

// Classify reports the syntax text matches, in precedence order.
func Classify(text string) Syntax {
	switch {
	case text == "":
		return SyntaxNone
	case decimalPattern.MatchString(text):
		return SyntaxDecimal
	case clockPattern.MatchString(text):
		return SyntaxClock
	case integerPattern.MatchString(text):
		return SyntaxInteger
	default:
		return SyntaxNone
	}
}

// ParseStrict converts text to decimal hours. Clock values are
// hours + minutes/60. Input matching no syntax, or too long to represent,
// yields ErrUnparseable.
func ParseStrict(text string) (float64, error) {
	var v float64
	var err error
	switch Classify(text) {
	case SyntaxDecimal, SyntaxInteger:
		v, err = parseDigits(text)
	case SyntaxClock:
		h, m, _ := strings.Cut(text, ":")
		v, err = parseDigits(h)
		if err == nil {
			mins, _ := parseDigits(m)
			v += mins / 60
		}
	default:
		err = strconv.ErrSyntax
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnparseable, text)
	}
	return v, nil
}

// Parse is ParseStrict with a zero fallback for unparseable input.
func Parse(text string) float64 {
	v, err := ParseStrict(text)
	if err != nil {
		return 0
	}
	return v
}

// Validate reports whether text is a well-formed hour string. Decimal and
// whole-hour entries must be strictly greater than zero; any clock entry
// with minutes 00-59 is accepted, including 0:00.
func Validate(text string) bool {
	v, err := ParseStrict(text)
	if err != nil {
		return false
	}
	return Classify(text) == SyntaxClock || v > 0
}

// FormatClock renders decimal hours as H:MM, rounding to the nearest whole
// minute (half up). Zero and non-finite values render as "0:00".
func FormatClock(value float64) string {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return "0:00"
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	minutes := math.Floor(value*60 + 0.5)
	if minutes >= maxMinutes {
		return sign + strconv.FormatFloat(math.Floor(value), 'f', 0, 64) + ":00"
	}

	total := int64(minutes)
	return fmt.Sprintf("%s%d:%02d", sign, total/60, total%60)
}

// maxMinutes bounds the minute counts FormatClock handles as integers.
// Beyond it a float64 no longer resolves single minutes.
const maxMinutes = float64(math.MaxInt64)

// parseDigits parses a string already matched by one of the patterns.
// Digit runs too long for a float64 fail with strconv.ErrRange.
func parseDigits(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
