package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	oerrors "github.com/opmodel/newcomp/internal/errors"
	"github.com/opmodel/newcomp/internal/output"
)

// Result describes one generated component.
type Result struct {
	// Name is the component name.
	Name string `json:"name" yaml:"name"`

	// Dir is the component directory.
	Dir string `json:"dir" yaml:"dir"`

	// Source is SourceBuiltin or the custom template name.
	Source string `json:"source" yaml:"source"`

	// Files are the planned (or written) files.
	Files []File `json:"files" yaml:"files"`

	// Overwritten is set when Dir existed and --force was used.
	Overwritten bool `json:"overwritten" yaml:"overwritten"`

	// DryRun is set when nothing was written.
	DryRun bool `json:"dryRun" yaml:"dryRun"`

	// Kept lists entries of an overwritten Dir that the plan did not replace.
	Kept []string `json:"kept,omitempty" yaml:"kept,omitempty"`
}

// Generate plans req and, unless it is a dry run, writes the plan.
func Generate(ctx context.Context, req Request) (*Result, error) {
	files, source, err := Plan(req)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Name:   req.Spec.Name,
		Dir:    req.ComponentDir(),
		Source: source,
		Files:  files,
		DryRun: req.DryRun,
	}
	if req.DryRun {
		return res, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	existed, err := Write(res.Dir, files, req.Force)
	if err != nil {
		return nil, err
	}
	res.Overwritten = existed
	if existed {
		res.Kept = leftovers(res.Dir, files)
	}
	return res, nil
}

// leftovers returns the entries of dir that are not in files, sorted.
// Directories carry a trailing slash.
func leftovers(dir string, files []File) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		output.Debug("listing overwritten directory", "dir", dir, "err", err)
		return nil
	}

	planned := make(map[string]bool, len(files))
	for _, f := range files {
		planned[f.Path] = true
	}

	var kept []string
	for _, e := range entries {
		if planned[e.Name()] {
			continue
		}
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		kept = append(kept, name)
	}
	return kept
}

// Outcome pairs a request with its result or error.
type Outcome struct {
	Request Request
	Result  *Result
	Err     error
}

// GenerateAll generates independent requests in parallel. Outcomes are in
// input order. The returned error joins every per-request error.
func GenerateAll(ctx context.Context, reqs []Request) ([]Outcome, error) {
	if err := checkDuplicates(reqs); err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, req := range reqs {
		g.Go(func() error {
			res, err := Generate(gctx, req)
			outcomes[i] = Outcome{Request: req, Result: res, Err: err}
			// Per-component failures must not cancel the others.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return outcomes, err
	}

	errs := make([]error, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("component %s: %w", o.Request.Spec.Name, o.Err))
		}
	}
	return outcomes, errors.Join(errs...)
}

func checkDuplicates(reqs []Request) error {
	seen := make(map[string]bool, len(reqs))
	for _, req := range reqs {
		dir := filepath.Clean(req.ComponentDir())
		if seen[dir] {
			return oerrors.NewValidationError(
				fmt.Sprintf("component %s requested more than once", req.Spec.Name),
				dir, "name", "Pass each component name once.")
		}
		seen[dir] = true
	}
	return nil
}
