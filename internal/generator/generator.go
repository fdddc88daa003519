// Package generator builds PIN codes, random character passwords and
// memorable word passwords behind a single Generator interface.
package generator

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidConfiguration = errors.New("invalid generator configuration")

	ErrNonPositiveLength    = fmt.Errorf("%w: length must be at least 1", ErrInvalidConfiguration)
	ErrNonPositiveWordCount = fmt.Errorf("%w: word count must be at least 1", ErrInvalidConfiguration)
	ErrEmptyVocabulary      = fmt.Errorf("%w: vocabulary must not be empty", ErrInvalidConfiguration)
	ErrEmptyCharacterSource = fmt.Errorf("%w: character source must not be empty", ErrInvalidConfiguration)
	ErrUnknownKind          = fmt.Errorf("%w: unknown generator kind", ErrInvalidConfiguration)
)

// Generator produces a new password on every call. Configuration is fixed at
// construction, so Generate cannot fail.
type Generator interface {
	Generate() string
}

// Estimator reports the entropy of a generator's output in bits, assuming
// every draw is uniform over its alphabet.
type Estimator interface {
	EntropyBits() float64
}

// Option customises a generator at construction.
type Option func(*settings)

type settings struct {
	source Source
}

// WithSource makes the generator draw from src instead of SecureSource.
func WithSource(src Source) Option {
	return func(s *settings) {
		if src != nil {
			s.source = src
		}
	}
}

func newSettings(opts []Option) settings {
	s := settings{source: SecureSource()}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func entropy(draws, alphabet int) float64 {
	if draws <= 0 || alphabet <= 1 {
		return 0
	}
	return float64(draws) * math.Log2(float64(alphabet))
}
