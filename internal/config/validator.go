package config

import (
	"fmt"
	"strings"

	"github.com/opmodel/newcomp/internal/component"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks enumerated and free-form values of cfg.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	if _, err := component.ParseLanguage(cfg.Defaults.Language); err != nil {
		errs = append(errs, ValidationError{
			Field:   KeyLanguage,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(component.LanguageNames(), ", ")),
		})
	}

	if _, err := component.ParseKind(cfg.Defaults.Kind); err != nil {
		errs = append(errs, ValidationError{
			Field:   KeyKind,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(component.KindNames(), ", ")),
		})
	}

	if err := ValidateStyle(cfg.Defaults.Style); err != nil {
		errs = append(errs, *err)
	}

	for _, p := range []struct{ key, path string }{
		{KeyTemplatesFile, cfg.Templates.File},
		{KeyTemplatesDir, cfg.Templates.Dir},
	} {
		if p.path != "" && strings.TrimSpace(p.path) == "" {
			errs = append(errs, ValidationError{
				Field:   p.key,
				Message: "must not be whitespace only",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateOptions checks resolved options the same way Validate checks a file.
func ValidateOptions(opts *Options) error {
	cfg := &Config{
		Defaults: DefaultsConfig{
			Language:    opts.Language,
			Kind:        opts.Kind,
			Style:       opts.Style,
			Props:       opts.Props,
			ImportReact: opts.ImportReact,
		},
		Templates: TemplatesConfig{File: opts.TemplatesFile, Dir: opts.TemplatesDir},
		Log:       LogConfig{Timestamps: opts.Timestamps},
	}
	return Validate(cfg)
}

// ValidateStyle checks a stylesheet suffix. Empty is valid and disables the stylesheet.
func ValidateStyle(style string) *ValidationError {
	if component.ValidateStyle(style) != nil {
		return &ValidationError{
			Field:   KeyStyle,
			Message: "must be a file extension such as css or scss",
		}
	}
	return nil
}
