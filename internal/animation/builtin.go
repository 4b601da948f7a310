package animation

import "time"

// Builtin returns the animation table that ships with the tool. Theme
// extensions are merged over these entries; an extension reusing one of
// these names replaces it.
func Builtin() *Table {
	table, err := New(
		Definition{
			Name: "fadeIn",
			Keyframes: []Keyframe{
				{Offset: 0, Props: map[string]string{"opacity": "0"}},
				{Offset: 100, Props: map[string]string{"opacity": "1"}},
			},
			Duration:   3 * time.Second,
			Timing:     EaseInOut,
			Iterations: Finite(1),
			Fill:       FillForwards,
		},
		Definition{
			Name: "zoomPulse",
			Keyframes: []Keyframe{
				{Offset: 0, Props: map[string]string{"transform": "scale(1)"}},
				{Offset: 50, Props: map[string]string{"transform": "scale(0.75)"}},
				{Offset: 100, Props: map[string]string{"transform": "scale(1)"}},
			},
			Duration:   2 * time.Second,
			Timing:     EaseInOut,
			Iterations: Infinite,
		},
		Definition{
			Name: "swingRotate",
			Keyframes: []Keyframe{
				{Offset: 0, Props: map[string]string{"transform": "rotate(0deg)"}},
				{Offset: 15, Props: map[string]string{"transform": "rotate(-20deg)"}},
				{Offset: 30, Props: map[string]string{"transform": "rotate(15deg)"}},
				{Offset: 45, Props: map[string]string{"transform": "rotate(-10deg)"}},
				{Offset: 60, Props: map[string]string{"transform": "rotate(6deg)"}},
				{Offset: 75, Props: map[string]string{"transform": "rotate(-3deg)"}},
				{Offset: 100, Props: map[string]string{"transform": "rotate(0deg)"}},
			},
			Duration:   2 * time.Second,
			Timing:     CubicBezier(0.4, 0, 0.2, 1),
			Iterations: Infinite,
		},
	)
	if err != nil {
		panic(err)
	}
	return table
}
