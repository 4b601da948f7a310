package config

// Config represents the full theme-extension document.
type Config struct {
	Content []string `yaml:"content,omitempty" validate:"omitempty,dive,min=1,glob"`
	Theme   Theme    `yaml:"theme,omitempty"`
	Output  string   `yaml:"output,omitempty"`
}

// Theme wraps the extension block, mirroring the nested schema the
// utility engine expects (theme.extend.keyframes, theme.extend.animation).
type Theme struct {
	Extend Extend `yaml:"extend,omitempty"`
}

// Extend declares custom keyframe sets and the animation shorthands
// binding them to utility names.
type Extend struct {
	Keyframes map[string]KeyframeSet `yaml:"keyframes,omitempty"`
	Animation map[string]string      `yaml:"animation,omitempty" validate:"omitempty,dive,min=1"`
}

// KeyframeSet maps a keyframe selector ("0%", "50%", "0%, 100%", "from",
// "to") to the style properties active at that point.
type KeyframeSet map[string]Properties

// Properties is a CSS property to value mapping.
type Properties map[string]string
