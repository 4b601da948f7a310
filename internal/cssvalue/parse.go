// Package cssvalue parses the small CSS value vocabulary used by theme
// configuration: durations, timing functions, iteration counts, fill
// modes, and the animation shorthand combining them.
package cssvalue

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/motioncss/motioncss/internal/animation"
)

var (
	durationPattern = regexp.MustCompile(`^([0-9]*\.?[0-9]+)(ms|s)$`)
	namePattern     = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
)

// ParseDuration parses a CSS time value such as "3s" or "250ms".
func ParseDuration(s string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	unit := time.Second
	if m[2] == "ms" {
		unit = time.Millisecond
	}
	return time.Duration(v * float64(unit)), nil
}

// ParseTiming parses an easing keyword or an explicit cubic-bezier()
// expression.
func ParseTiming(s string) (animation.TimingFunction, error) {
	if tf, ok := animation.KeywordTiming(s); ok {
		return tf, nil
	}

	inner, ok := strings.CutPrefix(s, "cubic-bezier(")
	if !ok || !strings.HasSuffix(inner, ")") {
		return animation.TimingFunction{}, fmt.Errorf("unknown timing function %q", s)
	}
	inner = strings.TrimSuffix(inner, ")")

	parts := strings.Split(inner, ",")
	if len(parts) != 4 {
		return animation.TimingFunction{}, fmt.Errorf("cubic-bezier expects 4 arguments, got %d", len(parts))
	}

	var pts [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return animation.TimingFunction{}, fmt.Errorf("cubic-bezier argument %d: %w", i+1, err)
		}
		pts[i] = v
	}
	if pts[0] < 0 || pts[0] > 1 || pts[2] < 0 || pts[2] > 1 {
		return animation.TimingFunction{}, fmt.Errorf("cubic-bezier x coordinates must lie in [0,1]")
	}
	return animation.CubicBezier(pts[0], pts[1], pts[2], pts[3]), nil
}

// ParseIterations parses an iteration count: a positive integer or the
// keyword "infinite".
func ParseIterations(s string) (animation.Iterations, error) {
	if s == "infinite" {
		return animation.Infinite, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return animation.Iterations{}, fmt.Errorf("invalid iteration count %q", s)
	}
	if n < 1 {
		return animation.Iterations{}, fmt.Errorf("iteration count must be at least 1, got %d", n)
	}
	return animation.Finite(n), nil
}

// ParseFill parses an animation-fill-mode keyword.
func ParseFill(s string) (animation.FillMode, error) {
	f := animation.FillMode(s)
	if f == animation.FillUnset || !animation.ValidFill(f) {
		return animation.FillUnset, fmt.Errorf("unknown fill mode %q", s)
	}
	return f, nil
}

// Shorthand is the decoded form of a CSS animation shorthand value.
type Shorthand struct {
	KeyframesName string
	Duration      time.Duration
	Timing        animation.TimingFunction
	Iterations    animation.Iterations
	Fill          animation.FillMode
}

// ParseShorthand decodes an animation shorthand such as
// "fadeIn 3s ease-in-out 1 forwards". The keyframes name comes first;
// the remaining tokens may appear in any order. A duration is required.
// Omitted timing defaults to ease and omitted iterations to 1, matching
// the CSS initial values.
func ParseShorthand(s string) (Shorthand, error) {
	tokens := splitTokens(s)
	if len(tokens) == 0 {
		return Shorthand{}, fmt.Errorf("empty animation shorthand")
	}

	name := tokens[0]
	if !namePattern.MatchString(name) {
		return Shorthand{}, fmt.Errorf("invalid keyframes name %q", name)
	}

	out := Shorthand{KeyframesName: name}
	var haveDuration, haveTiming, haveIterations, haveFill bool

	for _, tok := range tokens[1:] {
		if d, err := ParseDuration(tok); err == nil {
			if haveDuration {
				return Shorthand{}, fmt.Errorf("second time value %q: animation-delay is not supported", tok)
			}
			out.Duration = d
			haveDuration = true
			continue
		}
		if tf, err := ParseTiming(tok); err == nil {
			if haveTiming {
				return Shorthand{}, fmt.Errorf("duplicate timing function %q", tok)
			}
			out.Timing = tf
			haveTiming = true
			continue
		}
		if it, err := ParseIterations(tok); err == nil {
			if haveIterations {
				return Shorthand{}, fmt.Errorf("duplicate iteration count %q", tok)
			}
			out.Iterations = it
			haveIterations = true
			continue
		}
		if f, err := ParseFill(tok); err == nil {
			if haveFill {
				return Shorthand{}, fmt.Errorf("duplicate fill mode %q", tok)
			}
			out.Fill = f
			haveFill = true
			continue
		}
		return Shorthand{}, fmt.Errorf("unrecognized token %q in animation shorthand", tok)
	}

	if !haveDuration {
		return Shorthand{}, fmt.Errorf("animation shorthand is missing a duration")
	}
	if !haveTiming {
		out.Timing = animation.Ease
	}
	if !haveIterations {
		out.Iterations = animation.Finite(1)
	}
	return out, nil
}

// splitTokens splits on whitespace outside parentheses so that
// cubic-bezier arguments written with spaces stay in one token.
func splitTokens(s string) []string {
	var tokens []string
	var current strings.Builder
	depth := 0

	for _, r := range s {
		switch {
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			current.WriteRune(r)
		case (r == ' ' || r == '\t') && depth == 0:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			if (r == ' ' || r == '\t') && depth > 0 {
				// Normalize spaces inside cubic-bezier arguments.
				continue
			}
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens
}
