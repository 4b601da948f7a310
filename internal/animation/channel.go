package animation

import (
	"regexp"
	"sort"
	"strconv"
)

// Channel is a single numeric property track extracted from an
// animation's keyframes, used by the terminal preview to sample values
// over time.
type Channel struct {
	Property string
	Unit     string
	points   []channelPoint
}

type channelPoint struct {
	offset float64
	value  float64
}

var (
	scalePattern  = regexp.MustCompile(`scale\((-?[0-9]*\.?[0-9]+)\)`)
	rotatePattern = regexp.MustCompile(`rotate\((-?[0-9]*\.?[0-9]+)deg\)`)
)

// NumericChannel extracts the first numeric track present in at least
// two keyframes, trying opacity, then transform scale, then transform
// rotation. It reports false when no such track exists.
func (d Definition) NumericChannel() (Channel, bool) {
	extractors := []struct {
		property string
		unit     string
		extract  func(props map[string]string) (float64, bool)
	}{
		{"opacity", "", extractOpacity},
		{"scale", "", extractTransform(scalePattern)},
		{"rotate", "deg", extractTransform(rotatePattern)},
	}

	for _, ex := range extractors {
		var points []channelPoint
		for _, kf := range d.Keyframes {
			if v, ok := ex.extract(kf.Props); ok {
				points = append(points, channelPoint{offset: kf.Offset, value: v})
			}
		}
		if len(points) < 2 {
			continue
		}
		sort.Slice(points, func(i, j int) bool { return points[i].offset < points[j].offset })
		return Channel{Property: ex.property, Unit: ex.unit, points: points}, true
	}
	return Channel{}, false
}

func extractOpacity(props map[string]string) (float64, bool) {
	raw, ok := props["opacity"]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func extractTransform(pattern *regexp.Regexp) func(map[string]string) (float64, bool) {
	return func(props map[string]string) (float64, bool) {
		raw, ok := props["transform"]
		if !ok {
			return 0, false
		}
		m := pattern.FindStringSubmatch(raw)
		if m == nil {
			return 0, false
		}
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
}

// At samples the channel at an eased progress fraction in [0,1],
// interpolating linearly between the bracketing keyframes and clamping
// beyond the first and last.
func (c Channel) At(progress float64) float64 {
	offset := progress * 100
	if offset <= c.points[0].offset {
		return c.points[0].value
	}
	last := c.points[len(c.points)-1]
	if offset >= last.offset {
		return last.value
	}
	for i := 1; i < len(c.points); i++ {
		lo, hi := c.points[i-1], c.points[i]
		if offset > hi.offset {
			continue
		}
		if hi.offset == lo.offset {
			return hi.value
		}
		frac := (offset - lo.offset) / (hi.offset - lo.offset)
		return lo.value + frac*(hi.value-lo.value)
	}
	return last.value
}

// Bounds returns the channel's minimum and maximum keyframe values.
func (c Channel) Bounds() (min, max float64) {
	min, max = c.points[0].value, c.points[0].value
	for _, p := range c.points[1:] {
		if p.value < min {
			min = p.value
		}
		if p.value > max {
			max = p.value
		}
	}
	return min, max
}
