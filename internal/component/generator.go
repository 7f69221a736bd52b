package component

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	oerrors "github.com/opmodel/newcomp/internal/errors"
)

//go:embed variants/*.tmpl
var variantFS embed.FS

// variantTemplates holds every variant plus the shared "preamble" block.
var variantTemplates = template.Must(template.New("variants").ParseFS(variantFS, "variants/*.tmpl"))

const (
	// ReactImport is the framework header import line.
	ReactImport = "import React from 'react';"

	// MemoImport is the named import emitted for memoized components.
	MemoImport = "import { memo } from 'react';"

	// ForwardRefImport is the named import emitted for forwardRef components.
	ForwardRefImport = "import { forwardRef } from 'react';"

	// RefElementType is the host element type used by forwardRef components.
	RefElementType = "HTMLDivElement"
)

// variant describes how one Kind is rendered.
type variant struct {
	// template is the embedded template file name.
	template string

	// helperImport is an extra named import, emitted regardless of the header flag.
	helperImport string

	// params renders the parameter list of the generated callable.
	params func(Spec) string

	// typeArgs renders the generic argument list, including angle brackets.
	typeArgs func(Spec) string
}

// variants maps every Kind to its strategy. Unknown kinds use Functional.
var variants = map[Kind]variant{
	Functional: {template: "functional.tmpl", params: propsParam, typeArgs: none},
	Arrow:      {template: "arrow.tmpl", params: propsParam, typeArgs: none},
	Class:      {template: "class.tmpl", params: none, typeArgs: classTypeArgs},
	Memoized: {
		template:     "memoized.tmpl",
		helperImport: MemoImport,
		params:       propsParam,
		typeArgs:     none,
	},
	ForwardRef: {
		template:     "forwardRef.tmpl",
		helperImport: ForwardRefImport,
		params:       forwardRefParams,
		typeArgs:     forwardRefTypeArgs,
	},
}

// variantData is the data passed to the variant templates.
type variantData struct {
	Name           string
	Imports        []string
	PropsInterface bool
	Params         string
	TypeArgs       string
}

// Generator renders the main component file for one Spec.
type Generator struct {
	spec Spec
}

// NewGenerator creates a generator for spec.
// Returns a configuration error if the component name is empty.
func NewGenerator(spec Spec) (*Generator, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, oerrors.NewConfigurationError("component name is required", "name")
	}
	return &Generator{spec: spec}, nil
}

// Spec returns the generator's configuration.
func (g *Generator) Spec() Spec {
	return g.spec
}

// Render returns the component source text. Output depends only on the Spec.
func (g *Generator) Render() string {
	v, ok := variants[g.spec.Kind]
	if !ok {
		v = variants[Functional]
	}

	var sb strings.Builder
	if err := variantTemplates.ExecuteTemplate(&sb, v.template, g.data(v)); err != nil {
		// Templates are embedded and the data is fixed-shape, so this is a build defect.
		panic(fmt.Sprintf("rendering %s: %v", v.template, err))
	}
	return sb.String()
}

func (g *Generator) data(v variant) variantData {
	s := g.spec

	var imports []string
	if s.HasHeaderImport {
		imports = append(imports, ReactImport)
	}
	if v.helperImport != "" {
		imports = append(imports, v.helperImport)
	}

	return variantData{
		Name:           s.Name,
		Imports:        imports,
		PropsInterface: s.Language == TypeScript && s.HasProps,
		Params:         v.params(s),
		TypeArgs:       v.typeArgs(s),
	}
}

// Render is a convenience wrapper around NewGenerator and Generator.Render.
func Render(spec Spec) (string, error) {
	g, err := NewGenerator(spec)
	if err != nil {
		return "", err
	}
	return g.Render(), nil
}

func propsParam(s Spec) string {
	switch {
	case !s.HasProps:
		return ""
	case s.Language == TypeScript:
		return "props: Props"
	default:
		return "props"
	}
}

func none(Spec) string {
	return ""
}

// classTypeArgs types props through React.Component<Props> instead of
// annotating the constructor parameter.
func classTypeArgs(s Spec) string {
	if s.Language == TypeScript && s.HasProps {
		return "<Props>"
	}
	return ""
}

// forwardRefParams always declares ref; the props slot becomes "_" when the
// component takes no props.
func forwardRefParams(s Spec) string {
	if !s.HasProps {
		return "_, ref"
	}
	return propsParam(s) + ", ref"
}

// forwardRefTypeArgs carries the host element type and the props type.
// JavaScript output has no generic arguments.
func forwardRefTypeArgs(s Spec) string {
	if s.Language != TypeScript {
		return ""
	}
	propsType := "{}"
	if s.HasProps {
		propsType = "Props"
	}
	return "<" + RefElementType + ", " + propsType + ">"
}
