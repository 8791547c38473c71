package wordlist

import (
	"context"
	"correcthorse/pkg/domain"
	"correcthorse/pkg/serrors"
	"embed"
	"errors"
	"io/fs"
	"path"
)

//go:embed lists
var builtin embed.FS

// Embedded serves the word lists compiled into the binary. It lets the tool
// work on systems where nothing is installed under DefaultDir.
type Embedded struct {
	fsys fs.FS
}

// Ensure Embedded implements Loader.
var _ Loader = (*Embedded)(nil)

// NewEmbedded returns a loader for the built-in lists.
func NewEmbedded() *Embedded {
	sub, _ := fs.Sub(builtin, "lists")

	return &Embedded{fsys: sub}
}

// Names lists the built-in word lists.
func (e *Embedded) Names() ([]string, error) {
	entries, err := fs.ReadDir(e.fsys, ".")
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrIO, err, "could not list built-in word lists")
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, entry.Name())
		}
	}

	return names, nil
}

// Load implements Loader.
func (e *Embedded) Load(ctx context.Context, name string) ([]domain.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint: wrapcheck
	}

	if !fs.ValidPath(name) || path.Base(name) != name {
		return nil, serrors.With(serrors.ErrNotFound, "no built-in word list %q", name)
	}

	f, err := e.fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, serrors.With(serrors.ErrNotFound, "no built-in word list %q", name)
		}

		return nil, serrors.Wrap(serrors.ErrIO, err, "could not open built-in word list %q", name)
	}
	defer func() {
		_ = f.Close()
	}()

	words, err := Read(f)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrIO, err, "could not read built-in word list %q", name)
	}

	return words, nil
}
