package model

// GenerateRequest represents a password generation request.
// Zero numbers fall back to the kind's default. A nil Separator means the
// default separator, while an explicit "" joins words with nothing.
type GenerateRequest struct {
	Kind string `json:"kind"`

	Length  int  `json:"length,omitempty"`
	Caps    bool `json:"caps,omitempty"`
	Numbers bool `json:"numbers,omitempty"`
	Symbols bool `json:"symbols,omitempty"`

	Words      int     `json:"words,omitempty"`
	Separator  *string `json:"separator,omitempty"`
	Capitalize bool    `json:"capitalize,omitempty"`

	// Hash asks for an Argon2id hash of the password alongside it.
	Hash bool `json:"hash,omitempty"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Kind        string  `json:"kind"`
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	EntropyBits float64 `json:"entropy_bits"`
	Hash        string  `json:"hash,omitempty"`
}

// GeneratorInfo describes one generator kind and its accepted range.
type GeneratorInfo struct {
	Kind    string `json:"kind"`
	Label   string `json:"label"`
	Default int    `json:"default"`
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Unit    string `json:"unit"`
}
