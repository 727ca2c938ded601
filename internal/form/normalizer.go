package form

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/muurk/deckcalc/internal/estimate"
)

// Normalizer sanitizes numeric input fields.
type Normalizer struct {
	Min  float64
	Max  float64
	Step float64
}

// NewNormalizer creates a normalizer for the given limits
func NewNormalizer(limits estimate.Limits) *Normalizer {
	return &Normalizer{Min: limits.Min, Max: limits.Max, Step: limits.Step}
}

// Sanitize filters a value as typed: only digits and '.', everything from
// a second '.' onward is dropped, and the fraction is rounded to one digit.
func (n *Normalizer) Sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	seenPoint := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			if seenPoint {
				return limitFraction(b.String())
			}
			seenPoint = true
			b.WriteRune(r)
		}
	}

	return limitFraction(b.String())
}

// limitFraction rounds the fraction to one digit on the decimal string
// itself, so long integer parts keep every digit.
func limitFraction(s string) string {
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 <= 1 {
		return s
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		// unreachable for digit/point strings; keep the first digit
		return s[:dot+2]
	}
	return d.Round(1).StringFixed(1)
}

// OnInput applies Sanitize to the field's current value.
func (n *Normalizer) OnInput(in Input) {
	v := in.Value()
	if clean := n.Sanitize(v); clean != v {
		in.SetValue(clean)
	}
}

// Snap rounds v to the nearest step and clamps it into [Min, Max].
func (n *Normalizer) Snap(v float64) float64 {
	if n.Step > 0 {
		v = math.Round(v/n.Step) * n.Step
	}
	if v < n.Min {
		v = n.Min
	}
	if v > n.Max {
		v = n.Max
	}
	return v
}

// Commit normalizes a field when it loses focus or changes. Unparseable
// values are cleared; parseable values are snapped and written back only
// if they changed. Any inline error on the field is removed.
func (n *Normalizer) Commit(in Input) {
	defer in.ClearInvalid()

	v, ok := parseNumber(in.Value())
	if !ok {
		in.SetValue("")
		return
	}

	if snapped := n.Snap(v); snapped != v {
		in.SetValue(n.Format(snapped))
	}
}

// Normalize runs a raw value through the same steps a field goes through
// when typed and committed. ok is false when nothing numeric remains.
func (n *Normalizer) Normalize(raw string) (float64, bool) {
	v, ok := parseNumber(n.Sanitize(raw))
	if !ok {
		return 0, false
	}
	return n.Snap(v), true
}

// Format renders a committed value with enough precision for the step.
func (n *Normalizer) Format(v float64) string {
	return strconv.FormatFloat(v, 'f', n.precision(), 64)
}

func (n *Normalizer) precision() int {
	if n.Step <= 0 {
		return 1
	}
	s := strconv.FormatFloat(n.Step, 'f', -1, 64)
	dot := strings.IndexByte(s, '.')
	if dot < 0 || len(s)-dot-1 < 1 {
		return 1
	}
	return len(s) - dot - 1
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
