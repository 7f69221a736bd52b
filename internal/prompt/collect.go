package prompt

import (
	"context"
	"errors"
	"strings"

	"github.com/opmodel/newcomp/internal/component"
	oerrors "github.com/opmodel/newcomp/internal/errors"
)

// BuiltinChoice is the template option that selects the built-in variant.
const BuiltinChoice = "(built-in)"

// Answers is the result of an interactive session.
type Answers struct {
	// Spec holds the collected component options.
	Spec component.Spec

	// Template is the chosen custom template name, or empty for built-in.
	Template string
}

// Collect asks for every component option, pre-selecting the values in
// defaults. The name question is skipped when defaults.Name is set.
// templateNames adds a template question when non-empty.
func Collect(ctx context.Context, d Driver, defaults component.Spec, templateNames []string) (Answers, error) {
	spec := defaults

	if spec.Name == "" {
		name, err := d.Input(ctx, InputConfig{
			Message:   "Component name:",
			Help:      "PascalCase, e.g. UserCard",
			Validator: nameValidator,
		})
		if err != nil {
			return Answers{}, err
		}
		spec.Name = strings.TrimSpace(name)
	}
	if err := component.ValidateName(spec.Name); err != nil {
		return Answers{}, err
	}

	langs := component.LanguageNames()
	idx, err := d.Select(ctx, SelectConfig{
		Message:      "Language:",
		Options:      langs,
		DefaultIndex: indexOf(langs, string(defaults.Language)),
	})
	if err != nil {
		return Answers{}, err
	}
	if spec.Language, err = component.ParseLanguage(choice(langs, idx)); err != nil {
		return Answers{}, err
	}

	kinds := component.KindNames()
	idx, err = d.Select(ctx, SelectConfig{
		Message:      "Component kind:",
		Options:      kinds,
		DefaultIndex: indexOf(kinds, string(defaults.Kind)),
	})
	if err != nil {
		return Answers{}, err
	}
	if spec.Kind, err = component.ParseKind(choice(kinds, idx)); err != nil {
		return Answers{}, err
	}

	if spec.HasProps, err = d.Confirm(ctx, ConfirmConfig{
		Message: "Declare props?",
		Default: defaults.HasProps,
	}); err != nil {
		return Answers{}, err
	}

	if spec.HasHeaderImport, err = d.Confirm(ctx, ConfirmConfig{
		Message: "Add `import React from 'react'`?",
		Default: defaults.HasHeaderImport,
	}); err != nil {
		return Answers{}, err
	}

	style, err := d.Input(ctx, InputConfig{
		Message:   "Stylesheet extension:",
		Default:   defaults.Style,
		Help:      "css, scss, less... Leave empty for no stylesheet.",
		Validator: styleValidator,
	})
	if err != nil {
		return Answers{}, err
	}
	// Drivers are not required to run validators.
	if err := component.ValidateStyle(style); err != nil {
		return Answers{}, err
	}
	spec.Style = component.NormalizeStyle(style)

	answers := Answers{Spec: spec}
	if len(templateNames) == 0 {
		return answers, nil
	}

	options := append([]string{BuiltinChoice}, templateNames...)
	idx, err = d.Select(ctx, SelectConfig{
		Message: "Template:",
		Options: options,
	})
	if err != nil {
		return Answers{}, err
	}
	if c := choice(options, idx); c != BuiltinChoice {
		answers.Template = c
	}
	return answers, nil
}

func nameValidator(name string) error {
	return shortMessage(component.ValidateName(name))
}

func styleValidator(style string) error {
	return shortMessage(component.ValidateStyle(style))
}

// shortMessage drops the DetailError framing; survey prints it inline.
func shortMessage(err error) error {
	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		return errors.New(detail.Message)
	}
	return err
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

func choice(options []string, idx int) string {
	if idx < 0 || idx >= len(options) {
		return ""
	}
	return options[idx]
}
