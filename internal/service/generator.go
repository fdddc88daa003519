package service

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
)

var (
	ErrLengthTooLong = errors.New("password length exceeds the allowed maximum")
	ErrTooManyWords  = errors.New("word count exceeds the allowed maximum")
)

// Limits caps request sizes so a single call stays cheap.
type Limits struct {
	MaxLength int
	MaxWords  int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxLength: 128, MaxWords: 20}
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	vocabulary []string
	limits     Limits
	hashParams crypto.HashParams
	opts       []generator.Option
}

// NewGeneratorService creates a new GeneratorService. vocabulary backs the
// memorable kind; opts are passed to every generator it builds.
func NewGeneratorService(vocabulary []string, limits Limits, opts ...generator.Option) *GeneratorService {
	return &GeneratorService{
		vocabulary: vocabulary,
		limits:     limits,
		hashParams: crypto.DefaultHashParams(),
		opts:       opts,
	}
}

// WithHashParams overrides the Argon2id parameters used for Hash requests.
func (s *GeneratorService) WithHashParams(p crypto.HashParams) *GeneratorService {
	s.hashParams = p
	return s
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts, err := s.options(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	g, err := generator.New(opts, s.opts...)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password := g.Generate()
	resp := model.GenerateResponse{
		Kind:     string(opts.Kind),
		Password: password,
		Length:   utf8.RuneCountInString(password),
	}
	if e, ok := g.(generator.Estimator); ok {
		resp.EntropyBits = e.EntropyBits()
	}

	if req.Hash {
		hash, err := crypto.HashPassword(password, s.hashParams)
		if err != nil {
			return model.GenerateResponse{}, fmt.Errorf("hashing password: %w", err)
		}
		resp.Hash = hash
	}

	return resp, nil
}

// Generators describes the available kinds with their defaults and limits.
func (s *GeneratorService) Generators() []model.GeneratorInfo {
	infos := make([]model.GeneratorInfo, 0, len(generator.Kinds()))
	for _, k := range generator.Kinds() {
		info := model.GeneratorInfo{Kind: string(k), Label: k.Label(), Min: 1}
		switch k {
		case generator.KindPin:
			info.Default, info.Max, info.Unit = generator.DefaultPinLength, s.limits.MaxLength, "characters"
		case generator.KindRandom:
			info.Default, info.Max, info.Unit = generator.DefaultRandomLength, s.limits.MaxLength, "characters"
		case generator.KindMemorable:
			info.Default, info.Max, info.Unit = generator.DefaultWordCount, s.limits.MaxWords, "words"
		}
		infos = append(infos, info)
	}
	return infos
}

func (s *GeneratorService) options(req model.GenerateRequest) (generator.Options, error) {
	kind := generator.KindRandom
	if req.Kind != "" {
		k, err := generator.ParseKind(req.Kind)
		if err != nil {
			return generator.Options{}, err
		}
		kind = k
	}

	opts := generator.Options{
		Kind:       kind,
		Length:     req.Length,
		Caps:       req.Caps,
		Numbers:    req.Numbers,
		Symbols:    req.Symbols,
		Words:      req.Words,
		Separator:  stringOrDefault(req.Separator, generator.DefaultSeparator),
		Capitalize: req.Capitalize,
		Vocabulary: s.vocabulary,
	}

	switch kind {
	case generator.KindPin, generator.KindRandom:
		if opts.Length == 0 {
			opts.Length = generator.DefaultPinLength
			if kind == generator.KindRandom {
				opts.Length = generator.DefaultRandomLength
			}
		}
		if s.limits.MaxLength > 0 && opts.Length > s.limits.MaxLength {
			return generator.Options{}, fmt.Errorf("%w (%d)", ErrLengthTooLong, s.limits.MaxLength)
		}
	case generator.KindMemorable:
		if opts.Words == 0 {
			opts.Words = generator.DefaultWordCount
		}
		if s.limits.MaxWords > 0 && opts.Words > s.limits.MaxWords {
			return generator.Options{}, fmt.Errorf("%w (%d)", ErrTooManyWords, s.limits.MaxWords)
		}
	}

	return opts, nil
}

// IsValidationError reports whether err was caused by the request itself.
func IsValidationError(err error) bool {
	return errors.Is(err, generator.ErrInvalidConfiguration) ||
		errors.Is(err, ErrLengthTooLong) ||
		errors.Is(err, ErrTooManyWords)
}

// stringOrDefault returns the dereferenced pointer value, or the fallback if nil.
func stringOrDefault(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
