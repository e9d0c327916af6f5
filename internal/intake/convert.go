// ABOUTME: Two-stage conversion of raw text tokens into optional typed values.
// ABOUTME: Empty input and the "skip" sentinel mean absent; parse failures mean absent too.
package intake

import (
	"math"
	"strconv"
	"strings"
)

// SkipToken is the reserved input meaning "value intentionally omitted".
const SkipToken = "skip"

// Outcome reports what happened when a token was converted.
type Outcome int

const (
	// Present means the token converted to a value.
	Present Outcome = iota
	// Skipped means the token was empty or the skip sentinel.
	Skipped
	// Invalid means the token did not parse as the target type.
	Invalid
)

func (o Outcome) String() string {
	switch o {
	case Present:
		return "present"
	case Skipped:
		return "skipped"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Normalize trims raw and reports whether anything usable remains.
// It returns false for empty input and for the skip sentinel in any letter case.
func Normalize(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, SkipToken) {
		return "", false
	}
	return s, true
}

// ParseInt converts raw to an optional int.
func ParseInt(raw string) (*int, Outcome) {
	s, ok := Normalize(raw)
	if !ok {
		return nil, Skipped
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, Invalid
	}
	return &v, Present
}

// ParseFloat converts raw to an optional float64. Only decimal notation is accepted:
// NaN, infinities, hex floats and digit separators are rejected.
func ParseFloat(raw string) (*float64, Outcome) {
	s, ok := Normalize(raw)
	if !ok {
		return nil, Skipped
	}
	if !isDecimal(s) {
		return nil, Invalid
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, Invalid
	}
	return &v, Present
}

func isDecimal(s string) bool {
	digits := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return false
	}
	return !strings.Contains(s, "_")
}

// ParseString converts raw to an optional trimmed string.
func ParseString(raw string) (*string, Outcome) {
	s, ok := Normalize(raw)
	if !ok {
		return nil, Skipped
	}
	return &s, Present
}

// ParseList splits raw on commas and trims each token. Empty tokens are dropped.
// It returns nil for empty input or the skip sentinel.
func ParseList(raw string) []string {
	s, ok := Normalize(raw)
	if !ok {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
