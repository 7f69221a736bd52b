package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/opmodel/newcomp/internal/errors"
	"github.com/opmodel/newcomp/internal/output"
)

// ProjectTemplatesDir is the per-project template directory, relative to the project root.
const ProjectTemplatesDir = ".newcomp/templates"

// Discover lists templates from an optional single file and an optional
// directory. Missing or empty paths contribute nothing. The file descriptor
// comes first, followed by the directory's matching entries in directory
// order. Directory scanning is not recursive and no deduplication is done.
func Discover(filePath, dirPath string) ([]Descriptor, error) {
	var descriptors []Descriptor

	if filePath != "" {
		d, ok, err := discoverFile(filePath)
		if err != nil {
			return nil, err
		}
		if ok {
			descriptors = append(descriptors, d)
		}
	}

	if dirPath != "" {
		ds, err := discoverDir(dirPath)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, ds...)
	}

	return descriptors, nil
}

func discoverFile(path string) (Descriptor, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		output.Debug("template file not found, skipping", "path", path)
		return Descriptor{}, false, nil
	}
	if err != nil {
		return Descriptor{}, false, fmt.Errorf("checking template file %s: %w", path, err)
	}
	if info.IsDir() {
		output.Debug("template file is a directory, skipping", "path", path)
		return Descriptor{}, false, nil
	}
	return descriptorFor(path), true, nil
}

func discoverDir(dir string) ([]Descriptor, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		output.Debug("template directory not found, skipping", "path", dir)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("checking template directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		output.Debug("template directory is a file, skipping", "path", dir)
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading template directory %s: %w", dir, err)
	}

	var descriptors []Descriptor
	for _, entry := range entries {
		if entry.IsDir() || !HasRecognizedExt(entry.Name()) {
			continue
		}
		descriptors = append(descriptors, descriptorFor(filepath.Join(dir, entry.Name())))
	}
	return descriptors, nil
}

// SearchPaths returns the default template directories in precedence order:
// the project directory first, then the user's home directory.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 2)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, filepath.FromSlash(ProjectTemplatesDir)))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".newcomp", "templates"))
	}
	return paths
}

// DiscoverOptions configures DiscoverAll.
type DiscoverOptions struct {
	// File is an explicit template file.
	File string

	// Dir is an explicit template directory.
	Dir string

	// SearchPaths are additional directories scanned after File and Dir.
	SearchPaths []string
}

// DiscoverAll runs Discover for the explicit file and directory and then for
// each search path, concatenating the results.
func DiscoverAll(opts DiscoverOptions) ([]Descriptor, error) {
	descriptors, err := Discover(opts.File, opts.Dir)
	if err != nil {
		return nil, err
	}
	for _, dir := range opts.SearchPaths {
		if dir == "" || sameDir(dir, opts.Dir) {
			continue
		}
		ds, err := Discover("", dir)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, ds...)
	}
	return descriptors, nil
}

func sameDir(a, b string) bool {
	if b == "" {
		return false
	}
	return filepath.Clean(a) == filepath.Clean(b)
}

// Resolve selects a template by display name from descriptors, or treats ref
// as a path when it names an existing file. The first name match wins.
func Resolve(ref string, descriptors []Descriptor) (Descriptor, error) {
	for _, d := range descriptors {
		if d.Name == ref {
			return d, nil
		}
	}

	if strings.ContainsRune(ref, filepath.Separator) || strings.ContainsRune(ref, '/') || HasRecognizedExt(ref) {
		if info, err := os.Stat(ref); err == nil && !info.IsDir() {
			return descriptorFor(ref), nil
		}
	}

	names := make([]string, 0, len(descriptors))
	for _, d := range descriptors {
		names = append(names, d.Name)
	}
	hint := "No custom templates were discovered. Use --template-dir or pass a template file path."
	if len(names) > 0 {
		hint = "Available templates: " + strings.Join(names, ", ")
	}
	return Descriptor{}, oerrors.NewNotFoundError(fmt.Sprintf("template %q not found", ref), ref, hint)
}
