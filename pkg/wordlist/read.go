package wordlist

import (
	"bufio"
	"correcthorse/pkg/domain"
	"fmt"
	"io"
	"strings"
)

// maxLineSize bounds a single line of a word list.
const maxLineSize = 64 * 1024

// Read parses a word list: every line, with surrounding whitespace removed,
// becomes one word. Blank lines are skipped.
func Read(r io.Reader) ([]domain.Word, error) {
	words := make([]domain.Word, 0, 128)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		words = append(words, domain.Word(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not scan word list: %w", err)
	}

	return words, nil
}
