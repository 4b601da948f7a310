package config

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	motionerrors "github.com/motioncss/motioncss/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	animNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)
	propertyPattern = regexp.MustCompile(`^-?[a-zA-Z][a-zA-Z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("glob", func(fl validator.FieldLevel) bool {
			return doublestar.ValidatePattern(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on the theme
// document: legal content globs, legal animation and keyframe names,
// parseable keyframe selectors, and well-formed property names.
func Validate(cfg *Config) error {
	if cfg == nil {
		return motionerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	for name, set := range cfg.Theme.Extend.Keyframes {
		field := fmt.Sprintf("theme.extend.keyframes[%s]", name)
		if !animNamePattern.MatchString(name) {
			return motionerrors.NewValidationError(field, fmt.Sprintf("invalid keyframes name %q", name), nil)
		}
		if len(set) == 0 {
			return motionerrors.NewValidationError(field, "keyframes block is empty", nil)
		}
		for selector, props := range set {
			if _, err := ParseSelector(selector); err != nil {
				return motionerrors.NewValidationError(field, err.Error(), err)
			}
			for property := range props {
				if !propertyPattern.MatchString(property) {
					return motionerrors.NewValidationError(field, fmt.Sprintf("invalid property name %q", property), nil)
				}
			}
		}
	}

	for name := range cfg.Theme.Extend.Animation {
		if !animNamePattern.MatchString(name) {
			field := fmt.Sprintf("theme.extend.animation[%s]", name)
			return motionerrors.NewValidationError(field, fmt.Sprintf("invalid animation name %q", name), nil)
		}
	}

	return nil
}

// ParseSelector parses a keyframe selector into one or more percentage
// offsets. Comma lists share one property block; "from" and "to" are the
// usual aliases for 0% and 100%.
func ParseSelector(selector string) ([]float64, error) {
	parts := strings.Split(selector, ",")
	offsets := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch part {
		case "from":
			offsets = append(offsets, 0)
			continue
		case "to":
			offsets = append(offsets, 100)
			continue
		}
		raw, ok := strings.CutSuffix(part, "%")
		if !ok {
			return nil, fmt.Errorf("invalid keyframe selector %q", part)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid keyframe selector %q", part)
		}
		offsets = append(offsets, v)
	}
	return offsets, nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return motionerrors.NewValidationError(field, msg, err)
	}

	return motionerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "Config" {
			continue
		}
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
