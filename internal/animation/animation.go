// Package animation defines the animation theme table: named keyframe
// animations paired with playback parameters. The table is built once
// from the built-in entries plus any theme extensions and is read-only
// afterwards.
package animation

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	motionerrors "github.com/motioncss/motioncss/pkg/errors"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// Keyframe pairs a timeline offset (percent, 0-100) with the style
// properties active at that point.
type Keyframe struct {
	Offset float64
	Props  map[string]string
}

// FillMode controls whether an animation's end state persists after the
// final iteration. The zero value means the property is omitted from the
// generated shorthand.
type FillMode string

const (
	FillUnset     FillMode = ""
	FillNone      FillMode = "none"
	FillForwards  FillMode = "forwards"
	FillBackwards FillMode = "backwards"
	FillBoth      FillMode = "both"
)

// ValidFill reports whether the given fill mode is one of the accepted
// CSS values (or unset).
func ValidFill(f FillMode) bool {
	switch f {
	case FillUnset, FillNone, FillForwards, FillBackwards, FillBoth:
		return true
	}
	return false
}

// Iterations is the repetition policy: a finite count or infinite.
type Iterations struct {
	Infinite bool
	Count    int
}

// Finite returns an iteration policy repeating exactly n times.
func Finite(n int) Iterations {
	return Iterations{Count: n}
}

// Infinite is the unbounded repetition policy.
var Infinite = Iterations{Infinite: true}

func (i Iterations) String() string {
	if i.Infinite {
		return "infinite"
	}
	return strconv.Itoa(i.Count)
}

// Definition is one named animation: ordered keyframes plus the playback
// parameters used in the generated animation shorthand.
type Definition struct {
	Name       string
	Keyframes  []Keyframe
	Duration   time.Duration
	Timing     TimingFunction
	Iterations Iterations
	Fill       FillMode
}

// Shorthand renders the CSS animation shorthand for this definition,
// e.g. "fadeIn 3s ease-in-out 1 forwards".
func (d Definition) Shorthand() string {
	out := d.Name + " " + FormatDuration(d.Duration) + " " + d.Timing.String() + " " + d.Iterations.String()
	if d.Fill != FillUnset {
		out += " " + string(d.Fill)
	}
	return out
}

// Validate enforces the table invariants on a single definition: a legal
// name, at least one keyframe, offsets within [0,100], a positive
// duration, and a finite iteration count of at least one.
func (d Definition) Validate() error {
	if !namePattern.MatchString(d.Name) {
		return motionerrors.NewValidationError("name", fmt.Sprintf("invalid animation name %q", d.Name), nil)
	}
	if len(d.Keyframes) == 0 {
		return motionerrors.NewValidationError(d.Name, "animation has no keyframes", nil)
	}
	for _, kf := range d.Keyframes {
		if kf.Offset < 0 || kf.Offset > 100 {
			return motionerrors.NewValidationError(d.Name, fmt.Sprintf("keyframe offset %v%% outside [0,100]", kf.Offset), nil)
		}
	}
	if d.Duration <= 0 {
		return motionerrors.NewValidationError(d.Name, "duration must be positive", nil)
	}
	if !d.Timing.valid() {
		return motionerrors.NewValidationError(d.Name, "missing or invalid timing function", nil)
	}
	if !d.Iterations.Infinite && d.Iterations.Count < 1 {
		return motionerrors.NewValidationError(d.Name, "finite iteration count must be at least 1", nil)
	}
	if !ValidFill(d.Fill) {
		return motionerrors.NewValidationError(d.Name, fmt.Sprintf("unknown fill mode %q", d.Fill), nil)
	}
	return nil
}

// FormatDuration renders a duration the way CSS expects it: whole or
// fractional seconds, or milliseconds for sub-second values.
func FormatDuration(d time.Duration) string {
	if d < time.Second && d%time.Millisecond == 0 {
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	}
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
