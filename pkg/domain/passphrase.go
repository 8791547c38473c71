package domain

import (
	"fmt"
	"strings"
)

// Passphrase is a generated sequence of words joined by a separator.
type Passphrase string

// JoinWords builds a passphrase from words using sep as the literal delimiter.
func JoinWords(words []Word, sep string) Passphrase {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(string(w))
	}

	return Passphrase(b.String())
}

const (
	// DefaultCharsMin is the default minimum number of characters.
	DefaultCharsMin = 12
	// DefaultWordsMin is the default minimum number of words.
	DefaultWordsMin = 4
	// DefaultList is the word list used when none is given.
	DefaultList = "english"
)

// Params bundles the inputs of a passphrase batch. It is built once per
// invocation and treated as read-only afterwards.
type Params struct {
	// Count is the number of passphrases to produce.
	Count int
	// CharsMin is the minimum summed length of the words, separators excluded.
	// Zero disables the check.
	CharsMin int
	// WordsMin is the minimum number of words. Zero disables the check.
	WordsMin int
	// UserWords are included in every passphrase.
	UserWords []Word
	// Lists names the word lists the pool is built from.
	Lists []string
	// CamelCase capitalizes the first character of every word.
	CamelCase bool
	// Sep is placed between words; it may be empty.
	Sep string
}

// Validate rejects negative counts and thresholds.
func (p Params) Validate() error {
	switch {
	case p.Count < 0:
		return fmt.Errorf("count must not be negative, got %d", p.Count)
	case p.CharsMin < 0:
		return fmt.Errorf("minimum characters must not be negative, got %d", p.CharsMin)
	case p.WordsMin < 0:
		return fmt.Errorf("minimum words must not be negative, got %d", p.WordsMin)
	}

	return nil
}

// Satisfied reports whether words meet both minimums of p.
func (p Params) Satisfied(words, chars int) bool {
	return words >= p.WordsMin && chars >= p.CharsMin
}
