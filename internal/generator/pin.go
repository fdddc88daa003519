package generator

const digits = "0123456789"

// DefaultPinLength is used when no length is requested.
const DefaultPinLength = 8

// PinGenerator produces numeric PIN codes.
type PinGenerator struct {
	length int
	source Source
}

// NewPin returns a generator of length-digit PIN codes.
func NewPin(length int, opts ...Option) (*PinGenerator, error) {
	if length <= 0 {
		return nil, ErrNonPositiveLength
	}
	s := newSettings(opts)
	return &PinGenerator{length: length, source: s.source}, nil
}

// Generate returns a PIN whose digits are drawn independently from 0-9.
func (g *PinGenerator) Generate() string {
	return sample(g.source, digits, g.length)
}

func (g *PinGenerator) Length() int { return g.length }

func (g *PinGenerator) EntropyBits() float64 {
	return entropy(g.length, len(digits))
}
