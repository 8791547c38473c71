// Package wordlist loads the word lists passphrase words are drawn from. A
// list is a plain text file with one word per line, addressed either by a
// filesystem path or by a bare name resolved against a search directory.
//
//go:generate mockgen -package mockwordlist -source=interface.go -destination=mock/mockwordlist.go *
package wordlist

import (
	"context"
	"correcthorse/pkg/domain"
)

// DefaultDir is the system directory bare list names are resolved against.
const DefaultDir = "/usr/share/correcthorse"

// Loader returns the words of a named word list.
//
// Implementations report a name that resolves to nothing with a
// serrors.ErrNotFound kind and an unreadable list with serrors.ErrIO.
type Loader interface {
	Load(ctx context.Context, name string) ([]domain.Word, error)
}
