package generator

import "strings"

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars    = digits
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	DefaultRandomLength = 8
)

// RandomConfig selects the character classes of a random password.
// Lowercase letters are always part of the source.
type RandomConfig struct {
	Length  int
	Caps    bool
	Numbers bool
	Symbols bool
}

// RandomGenerator produces passwords sampled from a union of character classes.
type RandomGenerator struct {
	length int
	chars  string
	source Source
}

// NewRandom validates cfg and builds the character source once.
func NewRandom(cfg RandomConfig, opts ...Option) (*RandomGenerator, error) {
	if cfg.Length <= 0 {
		return nil, ErrNonPositiveLength
	}
	chars := cfg.charset()
	if chars == "" {
		return nil, ErrEmptyCharacterSource
	}
	s := newSettings(opts)
	return &RandomGenerator{length: cfg.Length, chars: chars, source: s.source}, nil
}

func (cfg RandomConfig) charset() string {
	var sb strings.Builder
	sb.WriteString(lowercaseChars)
	if cfg.Caps {
		sb.WriteString(uppercaseChars)
	}
	if cfg.Numbers {
		sb.WriteString(numberChars)
	}
	if cfg.Symbols {
		sb.WriteString(symbolChars)
	}
	return sb.String()
}

// Generate draws every character independently from the whole source. An
// enabled class is not guaranteed to appear in the output.
func (g *RandomGenerator) Generate() string {
	return sample(g.source, g.chars, g.length)
}

// Charset returns the character source the generator samples from.
func (g *RandomGenerator) Charset() string { return g.chars }

func (g *RandomGenerator) Length() int { return g.length }

func (g *RandomGenerator) EntropyBits() float64 {
	return entropy(g.length, len(g.chars))
}
