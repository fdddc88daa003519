package generator

import (
	"fmt"
	"strings"
)

// Kind names one of the fixed set of generator variants.
type Kind string

const (
	KindRandom    Kind = "random"
	KindPin       Kind = "pin"
	KindMemorable Kind = "memorable"
)

var kindLabels = map[Kind]string{
	KindRandom:    "Random Password",
	KindPin:       "Pin Code",
	KindMemorable: "Memorable Password",
}

// Kinds lists every variant in menu order.
func Kinds() []Kind {
	return []Kind{KindRandom, KindPin, KindMemorable}
}

// Label is the human-readable menu entry for k.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

func (k Kind) Valid() bool {
	_, ok := kindLabels[k]
	return ok
}

// ParseKind accepts either the short name ("pin") or the menu label
// ("Pin Code"), ignoring case and surrounding space.
func ParseKind(s string) (Kind, error) {
	s = strings.TrimSpace(s)
	for _, k := range Kinds() {
		if strings.EqualFold(s, string(k)) || strings.EqualFold(s, k.Label()) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKind, s)
}

// Options gathers the settings of every variant. Fields that do not apply to
// Kind are ignored.
type Options struct {
	Kind Kind

	// pin and random
	Length int

	// random
	Caps    bool
	Numbers bool
	Symbols bool

	// memorable
	Words      int
	Separator  string
	Capitalize bool
	Vocabulary []string
}

// New builds the generator selected by opts.Kind.
func New(opts Options, extra ...Option) (Generator, error) {
	var (
		g   Generator
		err error
	)
	switch opts.Kind {
	case KindPin:
		g, err = NewPin(opts.Length, extra...)
	case KindRandom:
		g, err = NewRandom(RandomConfig{
			Length:  opts.Length,
			Caps:    opts.Caps,
			Numbers: opts.Numbers,
			Symbols: opts.Symbols,
		}, extra...)
	case KindMemorable:
		g, err = NewMemorable(MemorableConfig{
			Words:      opts.Words,
			Separator:  opts.Separator,
			Capitalize: opts.Capitalize,
			Vocabulary: opts.Vocabulary,
		}, extra...)
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, string(opts.Kind))
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}
