// Package component renders React component source text and its companion files.
package component

import (
	"fmt"
	"strings"
)

// Kind selects the code shape of the generated component.
type Kind string

const (
	// Functional is a named function declaration.
	Functional Kind = "functional"

	// Arrow is a const bound to an arrow function.
	Arrow Kind = "arrow"

	// Class is a class extending React.Component.
	Class Kind = "class"

	// Memoized is an arrow function wrapped in memo.
	Memoized Kind = "memoized"

	// ForwardRef is a (props, ref) arrow function wrapped in forwardRef.
	ForwardRef Kind = "forwardRef"
)

// DefaultKind is used when no kind is specified.
const DefaultKind = Functional

// Kinds returns all component kinds in display order.
func Kinds() []Kind {
	return []Kind{Functional, Arrow, Class, Memoized, ForwardRef}
}

// KindNames returns all component kind names in display order.
func KindNames() []string {
	kinds := Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// ParseKind parses a kind name. Matching is case-insensitive so that
// "forwardref" and "forwardRef" are equivalent.
func ParseKind(s string) (Kind, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultKind, nil
	}
	for _, k := range Kinds() {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown component kind %q; valid kinds: %s", s, strings.Join(KindNames(), ", "))
}

// Language is the source language of the generated files.
type Language string

const (
	// JavaScript emits .jsx/.js files without type annotations.
	JavaScript Language = "js"

	// TypeScript emits .tsx/.ts files with a Props interface and annotations.
	TypeScript Language = "ts"
)

// DefaultLanguage is used when no language is specified.
const DefaultLanguage = JavaScript

// LanguageNames returns the valid language names.
func LanguageNames() []string {
	return []string{string(JavaScript), string(TypeScript)}
}

// ParseLanguage parses a language name.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultLanguage, nil
	case "js", "jsx", "javascript":
		return JavaScript, nil
	case "ts", "tsx", "typescript":
		return TypeScript, nil
	default:
		return "", fmt.Errorf("unknown language %q; valid languages: %s", s, strings.Join(LanguageNames(), ", "))
	}
}

// SourceExt returns the extension for plain source files (the barrel).
func (l Language) SourceExt() string {
	if l == TypeScript {
		return "ts"
	}
	return "js"
}

// ComponentExt returns the extension for files containing JSX.
func (l Language) ComponentExt() string {
	if l == TypeScript {
		return "tsx"
	}
	return "jsx"
}
