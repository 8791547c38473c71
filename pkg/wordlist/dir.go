package wordlist

import (
	"context"
	"correcthorse/pkg/domain"
	"correcthorse/pkg/logger"
	"correcthorse/pkg/serrors"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Dir loads word lists from the filesystem. A name naming an existing path is
// read as is; anything else is looked up inside the search directory.
type Dir struct {
	// path is the search directory for bare list names.
	path string
}

// Ensure Dir implements Loader.
var _ Loader = (*Dir)(nil)

// NewDir returns a Dir searching path. An empty path means DefaultDir.
func NewDir(path string) *Dir {
	if path == "" {
		path = DefaultDir
	}

	return &Dir{path: path}
}

// Path returns the search directory.
func (d *Dir) Path() string { return d.path }

// Resolve maps a list name to the file it will be read from.
func (d *Dir) Resolve(name string) (string, error) {
	if name == "" {
		return "", serrors.With(serrors.ErrBadRequest, "empty word list name")
	}

	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	resolved := filepath.Join(d.path, name)
	if _, err := os.Stat(resolved); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", serrors.With(serrors.ErrNotFound, "word list %q not found (also tried %s)", name, resolved)
		}

		return "", serrors.Wrap(serrors.ErrIO, err, "could not stat word list %q", name)
	}

	return resolved, nil
}

// Load implements Loader.
func (d *Dir) Load(ctx context.Context, name string) ([]domain.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	path, err := d.Resolve(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path) //nolint: gosec
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "word list %q not found", name)
		}

		return nil, serrors.Wrap(serrors.ErrIO, err, "could not open word list %q", name)
	}
	defer func() {
		_ = f.Close()
	}()

	words, err := Read(f)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrIO, err, "could not read word list %q", name)
	}

	logger.Debug(ctx, "word list loaded",
		zap.String("list", name),
		zap.String("path", path),
		zap.Int("words", len(words)),
	)

	return words, nil
}
