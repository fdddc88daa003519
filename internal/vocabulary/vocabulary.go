// Package vocabulary loads the word lists used for memorable passwords.
package vocabulary

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// SystemPath is the word list shipped by most Unix systems.
const SystemPath = "/usr/share/dict/words"

var ErrEmpty = errors.New("vocabulary contains no usable words")

//go:embed words.txt
var defaultWords string

// LoadOptions filters the words read from a list. Zero values disable the
// corresponding filter.
type LoadOptions struct {
	MinWordLength int
	MaxWordLength int
	// LettersOnly drops words containing anything but letters, such as the
	// possessive forms found in system dictionaries.
	LettersOnly bool
}

func (o LoadOptions) keep(word string) bool {
	n := utf8.RuneCountInString(word)
	if o.MinWordLength > 0 && n < o.MinWordLength {
		return false
	}
	if o.MaxWordLength > 0 && n > o.MaxWordLength {
		return false
	}
	if o.LettersOnly {
		for _, r := range word {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

// Load reads one word per line. Blank lines and lines starting with '#' are
// skipped, words are NFC-normalised and file order is preserved.
func Load(r io.Reader, opts LoadOptions) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := norm.NFC.String(line)
		if !opts.keep(word) {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vocabulary: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return words, nil
}

// LoadFile reads a word list from path.
func LoadFile(path string, opts LoadOptions) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := Load(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}

// Default returns the embedded word list, filtered by opts. If the filter
// rejects every word the unfiltered list is returned instead.
func Default(opts LoadOptions) []string {
	words, err := Load(strings.NewReader(defaultWords), opts)
	if err != nil {
		words, _ = Load(strings.NewReader(defaultWords), LoadOptions{})
	}
	return words
}

// Resolve picks the vocabulary for a process: the list at path when one is
// given, otherwise the system dictionary, otherwise the embedded list. An
// explicit path that cannot be loaded is an error.
func Resolve(path string, opts LoadOptions) ([]string, error) {
	if path != "" {
		words, err := LoadFile(path, opts)
		if err != nil {
			return nil, err
		}
		slog.Info("vocabulary loaded", "source", path, "words", len(words))
		return words, nil
	}

	words, err := LoadFile(SystemPath, opts)
	if err == nil {
		slog.Info("vocabulary loaded", "source", SystemPath, "words", len(words))
		return words, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		slog.Warn("system word list unusable, falling back to embedded list", "error", err)
	}

	words = Default(opts)
	slog.Info("vocabulary loaded", "source", "embedded", "words", len(words))
	return words, nil
}
