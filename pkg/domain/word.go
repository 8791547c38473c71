package domain

import (
	"unicode"
	"unicode/utf8"
)

// Word is a single token of a passphrase. Only its length and the case of its
// first character are ever inspected.
type Word string

// Len returns the number of characters (runes) in the word.
func (w Word) Len() int { return utf8.RuneCountInString(string(w)) }

// Capitalize upper-cases the first character and leaves the rest untouched.
func (w Word) Capitalize() Word {
	r, size := utf8.DecodeRuneInString(string(w))
	if size == 0 || r == utf8.RuneError {
		return w
	}

	return Word(string(unicode.ToUpper(r)) + string(w[size:]))
}

// Words converts plain strings into Words.
func Words(in ...string) []Word {
	out := make([]Word, len(in))
	for i, s := range in {
		out[i] = Word(s)
	}

	return out
}

// TotalLen returns the summed character count of all words.
func TotalLen(words []Word) int {
	n := 0
	for _, w := range words {
		n += w.Len()
	}

	return n
}

// Pool is the collection of candidate words drawn from with replacement.
// Duplicates are allowed and order carries no meaning.
type Pool []Word
