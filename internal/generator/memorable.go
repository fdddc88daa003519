package generator

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultWordCount = 5
	DefaultSeparator = "-"
)

// MemorableConfig describes a password built from dictionary words.
type MemorableConfig struct {
	Words      int
	Separator  string
	Capitalize bool
	Vocabulary []string
}

// MemorableGenerator joins randomly chosen vocabulary words.
type MemorableGenerator struct {
	words      int
	separator  string
	capitalize bool
	vocabulary []string
	distinct   int
	source     Source
}

// NewMemorable validates cfg. The vocabulary is copied, so the caller may
// reuse its slice afterwards.
func NewMemorable(cfg MemorableConfig, opts ...Option) (*MemorableGenerator, error) {
	if cfg.Words <= 0 {
		return nil, ErrNonPositiveWordCount
	}
	if len(cfg.Vocabulary) == 0 {
		return nil, ErrEmptyVocabulary
	}
	s := newSettings(opts)
	vocab := slices.Clone(cfg.Vocabulary)
	return &MemorableGenerator{
		words:      cfg.Words,
		separator:  cfg.Separator,
		capitalize: cfg.Capitalize,
		vocabulary: vocab,
		distinct:   countDistinct(vocab),
		source:     s.source,
	}, nil
}

// Generate picks words independently, with replacement, and joins them in
// selection order.
func (g *MemorableGenerator) Generate() string {
	var upper cases.Caser
	if g.capitalize {
		// A Caser carries state, so each call gets its own.
		upper = cases.Upper(language.Und)
	}
	picked := make([]string, g.words)
	for i := range picked {
		w := g.vocabulary[g.source.IntN(len(g.vocabulary))]
		if g.capitalize {
			w = upper.String(w)
		}
		picked[i] = w
	}
	return strings.Join(picked, g.separator)
}

func (g *MemorableGenerator) Words() int { return g.words }

func (g *MemorableGenerator) Separator() string { return g.separator }

func (g *MemorableGenerator) EntropyBits() float64 {
	return entropy(g.words, g.distinct)
}

func countDistinct(words []string) int {
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return len(seen)
}
