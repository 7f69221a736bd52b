// Package scaffold turns a component spec into files on disk.
//
// Generation happens in two phases. Plan renders every file in memory,
// loading and validating any custom template first. Write persists a plan.
// Nothing touches the filesystem until the whole plan exists.
package scaffold

import (
	"path/filepath"

	"github.com/opmodel/newcomp/internal/component"
	"github.com/opmodel/newcomp/internal/output"
	"github.com/opmodel/newcomp/internal/templates"
)

// SourceBuiltin is the Result.Source value for built-in variants.
const SourceBuiltin = "built-in"

// Request describes one component to generate.
type Request struct {
	// Spec is the validated component configuration.
	Spec component.Spec

	// Template is an optional custom template. Nil selects the built-in variant.
	Template *templates.Descriptor

	// TargetDir is the parent directory. The component gets its own
	// subdirectory named after the component.
	TargetDir string

	// Force allows writing into an existing component directory.
	Force bool

	// DryRun plans the files without writing them.
	DryRun bool

	// FallbackBuiltin renders the built-in variant when the custom
	// template cannot be loaded instead of failing.
	FallbackBuiltin bool
}

// ComponentDir returns the directory the component is written to.
func (r Request) ComponentDir() string {
	dir := r.TargetDir
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, r.Spec.Name)
}

// File is one planned output file.
type File struct {
	// Path is relative to the component directory.
	Path string `json:"path" yaml:"path"`

	// Content is the full file text.
	Content string `json:"-" yaml:"-"`

	// Description is shown next to the file in the created-file tree.
	Description string `json:"description" yaml:"description"`
}

// Plan renders all files for req. The returned source is SourceBuiltin or
// the name of the custom template used.
func Plan(req Request) ([]File, string, error) {
	gen, err := component.NewGenerator(req.Spec)
	if err != nil {
		return nil, "", err
	}
	spec := gen.Spec()

	source := SourceBuiltin
	var main string

	if req.Template != nil {
		loaded, err := templates.Load(*req.Template)
		switch {
		case err == nil:
			main = loaded.Render(templates.ComponentVariables(spec.Name))
			source = req.Template.Name
		case req.FallbackBuiltin:
			output.Warn("custom template unusable, using built-in variant",
				"component", spec.Name,
				"template", req.Template.Name,
				"err", err,
			)
		default:
			return nil, "", err
		}
	}
	if source == SourceBuiltin {
		main = gen.Render()
	}

	files := []File{
		{Path: spec.ComponentFileName(), Content: main, Description: "Component source"},
		{Path: spec.IndexFileName(), Content: component.IndexContent(spec.Name), Description: "Barrel export"},
	}
	if name, ok := spec.StyleFileName(); ok {
		files = append(files, File{Path: name, Content: component.StyleContent(spec.Name), Description: "Component styles"})
	}

	output.Debug("planned component",
		"name", spec.Name,
		"kind", spec.Kind,
		"language", spec.Language,
		"source", source,
		"files", len(files),
	)

	return files, source, nil
}
