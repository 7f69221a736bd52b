package component

import (
	"fmt"
	"strings"

	oerrors "github.com/opmodel/newcomp/internal/errors"
)

// Spec is the immutable description of one component to generate.
// The name is expected to have passed ValidateName already.
type Spec struct {
	// Name is the PascalCase component identifier.
	Name string

	// Style is the stylesheet suffix (css, scss, ...). Empty means no stylesheet.
	Style string

	// Language selects JavaScript or TypeScript output.
	Language Language

	// HasProps declares a props parameter (and a Props interface for TypeScript).
	HasProps bool

	// HasHeaderImport prepends `import React from 'react';`.
	HasHeaderImport bool

	// Kind selects the code shape.
	Kind Kind
}

// NormalizeStyle strips surrounding whitespace and leading dots so that
// ".css" and "css" both yield "css".
func NormalizeStyle(style string) string {
	return strings.TrimLeft(strings.TrimSpace(style), ".")
}

// ValidateStyle checks that style, once normalized, is usable as a file
// extension. Empty is valid and disables the stylesheet.
func ValidateStyle(style string) error {
	s := NormalizeStyle(style)
	if s == "" {
		return nil
	}
	if strings.ContainsAny(s, " "+forbiddenChars) || strings.Contains(s, "..") {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid stylesheet extension %q: must be a file extension such as css or scss", style),
			"", "style", "Use css, scss, less or leave it empty for no stylesheet.")
	}
	return nil
}

// ComponentFileName returns the main component file name, e.g. Button.tsx.
func (s Spec) ComponentFileName() string {
	return s.Name + "." + s.Language.ComponentExt()
}

// IndexFileName returns the barrel file name, e.g. index.ts.
func (s Spec) IndexFileName() string {
	return "index." + s.Language.SourceExt()
}

// StyleFileName returns the stylesheet file name, e.g. Button.module.scss.
// The second result is false when no stylesheet should be written.
func (s Spec) StyleFileName() (string, bool) {
	style := NormalizeStyle(s.Style)
	if style == "" {
		return "", false
	}
	return s.Name + ".module." + style, true
}

// IndexContent returns the barrel file text re-exporting the component.
func IndexContent(name string) string {
	return fmt.Sprintf("export { default } from './%s';\n", name)
}

// StyleContent returns the stylesheet stub with an empty class rule.
func StyleContent(name string) string {
	return fmt.Sprintf("/* Add your component styles here */\n.%s {\n}\n", name)
}
