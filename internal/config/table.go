package config

import (
	"fmt"
	"sort"

	"github.com/motioncss/motioncss/internal/animation"
	"github.com/motioncss/motioncss/internal/cssvalue"
	motionerrors "github.com/motioncss/motioncss/pkg/errors"
)

// BuildTable merges the document's theme extensions over the built-in
// animation table. Each animation shorthand is parsed and bound to the
// keyframe rows it references, which may come from the document itself
// or from a built-in entry. An extension reusing a built-in name
// replaces that entry.
func BuildTable(cfg *Config) (*animation.Table, error) {
	base := animation.Builtin()
	if cfg == nil {
		return base, nil
	}

	extended := make(map[string][]animation.Keyframe, len(cfg.Theme.Extend.Keyframes))
	for name, set := range cfg.Theme.Extend.Keyframes {
		rows, err := ExpandKeyframes(set)
		if err != nil {
			field := fmt.Sprintf("theme.extend.keyframes[%s]", name)
			return nil, motionerrors.NewValidationError(field, err.Error(), err)
		}
		extended[name] = rows
	}

	names := make([]string, 0, len(cfg.Theme.Extend.Animation))
	for name := range cfg.Theme.Extend.Animation {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]animation.Definition, 0, len(names))
	for _, name := range names {
		field := fmt.Sprintf("theme.extend.animation[%s]", name)

		sh, err := cssvalue.ParseShorthand(cfg.Theme.Extend.Animation[name])
		if err != nil {
			return nil, motionerrors.NewValidationError(field, err.Error(), err)
		}

		rows, ok := extended[sh.KeyframesName]
		if !ok {
			builtin, found := base.Resolve(sh.KeyframesName)
			if !found {
				return nil, motionerrors.NewValidationError(field, fmt.Sprintf("references unknown keyframes %q", sh.KeyframesName), nil)
			}
			rows = builtin.Keyframes
		}

		defs = append(defs, animation.Definition{
			Name:       name,
			Keyframes:  rows,
			Duration:   sh.Duration,
			Timing:     sh.Timing,
			Iterations: sh.Iterations,
			Fill:       sh.Fill,
		})
	}

	return base.Merge(defs...)
}

// ExpandKeyframes converts a selector-keyed keyframe set into ordered
// keyframe rows. Comma-list selectors expand into one row per offset,
// all sharing the same property block. Rows are sorted by offset.
func ExpandKeyframes(set KeyframeSet) ([]animation.Keyframe, error) {
	var rows []animation.Keyframe
	for selector, props := range set {
		offsets, err := ParseSelector(selector)
		if err != nil {
			return nil, err
		}
		for _, offset := range offsets {
			rows = append(rows, animation.Keyframe{Offset: offset, Props: clone(props)})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Offset < rows[j].Offset })
	return rows, nil
}

// UnboundKeyframes lists keyframe sets declared in the document that no
// animation shorthand references. They generate no CSS and usually
// indicate a typo in the animation block.
func UnboundKeyframes(cfg *Config) []string {
	if cfg == nil {
		return nil
	}

	referenced := make(map[string]bool, len(cfg.Theme.Extend.Animation))
	for _, shorthand := range cfg.Theme.Extend.Animation {
		if sh, err := cssvalue.ParseShorthand(shorthand); err == nil {
			referenced[sh.KeyframesName] = true
		}
	}

	var unbound []string
	for name := range cfg.Theme.Extend.Keyframes {
		if !referenced[name] {
			unbound = append(unbound, name)
		}
	}
	sort.Strings(unbound)
	return unbound
}

func clone(props Properties) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		out[k] = v
	}
	return out
}
