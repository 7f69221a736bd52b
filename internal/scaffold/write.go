package scaffold

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

// Write persists files under dir. Every file path must be a plain file name
// inside dir. An existing dir is refused unless force is set; files already
// in it that are not part of files are left alone. When a write fails, a
// directory created by this call is removed again. It reports whether dir
// existed beforehand.
func Write(dir string, files []File, force bool) (bool, error) {
	for _, f := range files {
		if !isFileName(f.Path) {
			return false, oerrors.NewValidationError(
				fmt.Sprintf("refusing to write %q: not a file name inside the component directory", f.Path),
				dir, "", "")
		}
	}

	existed, err := checkTargetDir(dir, force)
	if err != nil {
		return false, err
	}

	if !existed {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fsError("creating directory", dir, err)
		}
	}

	for _, f := range files {
		target := filepath.Join(dir, f.Path)
		if err := os.WriteFile(target, []byte(f.Content), 0o644); err != nil {
			if !existed {
				if rmErr := os.RemoveAll(dir); rmErr != nil {
					output.Warn("cleanup failed", "dir", dir, "err", rmErr)
				}
			}
			return existed, fsError("writing", target, err)
		}
		output.Debug("wrote file", "path", target)
	}

	return existed, nil
}

func isFileName(p string) bool {
	return p != "." && filepath.IsLocal(p) && filepath.Base(p) == p && !strings.ContainsAny(p, `/\`)
}

func checkTargetDir(dir string, force bool) (bool, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fsError("checking", dir, err)
	}
	if !info.IsDir() {
		return true, oerrors.NewExistsError(dir, "A file with the component's name is in the way.")
	}
	if !force {
		return true, oerrors.NewExistsError(dir, "Use --force to overwrite the existing component.")
	}
	return true, nil
}

// fsError wraps err and tags permission failures with ErrPermission.
func fsError(op, path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%s %s: %w: %w", op, path, oerrors.ErrPermission, err)
	}
	return fmt.Errorf("%s %s: %w", op, path, err)
}
