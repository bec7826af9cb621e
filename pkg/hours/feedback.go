package hours

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxPerDay is the most hours a single tracked day may hold.
const DefaultMaxPerDay = 24.0

// InvalidMessage is shown for input that matches no accepted syntax.
const InvalidMessage = "Please enter valid hours (e.g., 8, 8:30, or 8.5)"

// Status is the outcome of checking a partially or fully typed entry.
type Status string

const (
	StatusEmpty     Status = "empty"
	StatusValid     Status = "valid"
	StatusInvalid   Status = "invalid"
	StatusOverLimit Status = "over_limit"
)

// Feedback describes what an input field should display for its content.
type Feedback struct {
	Status  Status  `json:"status"`
	Value   float64 `json:"value"`
	Message string  `json:"message,omitempty"`
}

// OK reports whether the entry may be submitted.
func (f Feedback) OK() bool { return f.Status == StatusValid }

// Check evaluates text the way a field does on every keystroke. The
// maxPerDay limit is a per-day policy applied on top of Validate.
func Check(text string, maxPerDay float64) Feedback {
	text = strings.TrimSpace(text)
	if text == "" {
		return Feedback{Status: StatusEmpty}
	}
	if !Validate(text) {
		return Feedback{Status: StatusInvalid, Message: InvalidMessage}
	}

	v := Parse(text)
	if maxPerDay > 0 && v > maxPerDay {
		return Feedback{
			Status:  StatusOverLimit,
			Value:   v,
			Message: fmt.Sprintf("Hours cannot exceed %s per day", strconv.FormatFloat(maxPerDay, 'f', -1, 64)),
		}
	}
	return Feedback{Status: StatusValid, Value: v}
}

// Normalize rewrites text the way a field does when it loses focus: valid
// decimal or whole-hour entries become H:MM, clock entries are kept as
// typed, and anything else is returned trimmed but otherwise untouched.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	if !Validate(text) {
		return text
	}
	if Classify(text) == SyntaxClock {
		return text
	}
	return FormatClock(Parse(text))
}
