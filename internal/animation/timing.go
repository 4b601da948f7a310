package animation

import (
	"math"
	"strconv"
)

// TimingFunction is the interpolation curve applied across an animation's
// timeline: either a CSS easing keyword or an explicit cubic-bezier tuple.
// The zero value is invalid; use one of the keyword values or CubicBezier.
type TimingFunction struct {
	keyword string
	pts     [4]float64
	set     bool
}

// Keyword easing curves with their canonical bezier control points.
var (
	Linear    = TimingFunction{keyword: "linear", pts: [4]float64{0, 0, 1, 1}, set: true}
	Ease      = TimingFunction{keyword: "ease", pts: [4]float64{0.25, 0.1, 0.25, 1}, set: true}
	EaseIn    = TimingFunction{keyword: "ease-in", pts: [4]float64{0.42, 0, 1, 1}, set: true}
	EaseOut   = TimingFunction{keyword: "ease-out", pts: [4]float64{0, 0, 0.58, 1}, set: true}
	EaseInOut = TimingFunction{keyword: "ease-in-out", pts: [4]float64{0.42, 0, 0.58, 1}, set: true}
)

// CubicBezier builds an explicit easing curve from its two control points.
func CubicBezier(x1, y1, x2, y2 float64) TimingFunction {
	return TimingFunction{pts: [4]float64{x1, y1, x2, y2}, set: true}
}

// KeywordTiming resolves a CSS easing keyword, reporting whether it is known.
func KeywordTiming(name string) (TimingFunction, bool) {
	switch name {
	case "linear":
		return Linear, true
	case "ease":
		return Ease, true
	case "ease-in":
		return EaseIn, true
	case "ease-out":
		return EaseOut, true
	case "ease-in-out":
		return EaseInOut, true
	}
	return TimingFunction{}, false
}

// Bezier returns the curve's control points and whether it was declared
// as an explicit cubic-bezier rather than a keyword.
func (tf TimingFunction) Bezier() ([4]float64, bool) {
	return tf.pts, tf.set && tf.keyword == ""
}

func (tf TimingFunction) valid() bool {
	if !tf.set {
		return false
	}
	// Control point x coordinates must stay within [0,1] for the curve to
	// be a function of time.
	return tf.pts[0] >= 0 && tf.pts[0] <= 1 && tf.pts[2] >= 0 && tf.pts[2] <= 1
}

func (tf TimingFunction) String() string {
	if tf.keyword != "" {
		return tf.keyword
	}
	if !tf.set {
		return ""
	}
	out := "cubic-bezier("
	for i, p := range tf.pts {
		if i > 0 {
			out += ","
		}
		out += strconv.FormatFloat(p, 'f', -1, 64)
	}
	return out + ")"
}

// Progress maps a linear time fraction in [0,1] to the eased progress
// fraction for this curve. Input outside the unit interval is clamped.
func (tf TimingFunction) Progress(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if tf.keyword == "linear" || !tf.set {
		return t
	}
	return bezierY(tf.pts, solveBezierX(tf.pts, t))
}

func bezierComponent(p1, p2, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*p1 + 3*inv*t*t*p2 + t*t*t
}

func bezierX(pts [4]float64, t float64) float64 { return bezierComponent(pts[0], pts[2], t) }
func bezierY(pts [4]float64, t float64) float64 { return bezierComponent(pts[1], pts[3], t) }

func bezierXDerivative(pts [4]float64, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*pts[0] + 6*inv*t*(pts[2]-pts[0]) + 3*t*t*(1-pts[2])
}

// solveBezierX finds the curve parameter whose x coordinate equals the
// given time fraction. Newton iteration with a bisection fallback, the
// standard approach for CSS easing.
func solveBezierX(pts [4]float64, x float64) float64 {
	t := x
	for i := 0; i < 8; i++ {
		diff := bezierX(pts, t) - x
		if math.Abs(diff) < 1e-7 {
			return t
		}
		d := bezierXDerivative(pts, t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= diff / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for hi-lo > 1e-7 {
		if bezierX(pts, t) < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}
