package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHashFormat   = errors.New("invalid encoded hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)

// HashParams configures the Argon2id hashing parameters.
type HashParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultHashParams returns recommended Argon2id parameters for password hashing.
func DefaultHashParams() HashParams {
	return HashParams{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Hash is a decoded Argon2id hash.
type Hash struct {
	Params HashParams
	Salt   []byte
	Key    []byte
}

// String encodes h in PHC format:
// $argon2id$v=19$m=65536,t=3,p=2$<base64-salt>$<base64-key>
func (h Hash) String() string {
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.Params.Memory,
		h.Params.Iterations,
		h.Params.Parallelism,
		base64.RawStdEncoding.EncodeToString(h.Salt),
		base64.RawStdEncoding.EncodeToString(h.Key),
	)
}

// Matches reports whether password derives to the same key, in constant time.
func (h Hash) Matches(password string) bool {
	candidate := argon2.IDKey([]byte(password), h.Salt, h.Params.Iterations, h.Params.Memory, h.Params.Parallelism, uint32(len(h.Key)))
	return subtle.ConstantTimeCompare(h.Key, candidate) == 1
}

// HashPassword hashes password with the given parameters and a fresh salt,
// returning the PHC-encoded result.
func HashPassword(password string, params HashParams) (string, error) {
	salt := make([]byte, params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	h := Hash{
		Params: params,
		Salt:   salt,
		Key:    argon2.IDKey([]byte(password), salt, params.Iterations, params.Memory, params.Parallelism, params.KeyLength),
	}
	return h.String(), nil
}

// VerifyPassword checks whether a password matches the given PHC-encoded hash.
func VerifyPassword(password, encodedHash string) (bool, error) {
	h, err := ParseHash(encodedHash)
	if err != nil {
		return false, err
	}
	return h.Matches(password), nil
}

// ParseHash decodes a PHC-formatted Argon2id hash string.
func ParseHash(encodedHash string) (Hash, error) {
	parts := strings.Split(strings.TrimSpace(encodedHash), "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return Hash{}, ErrInvalidHashFormat
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return Hash{}, ErrInvalidHashFormat
	}
	if version != argon2.Version {
		return Hash{}, ErrIncompatibleVersion
	}

	var h Hash
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.Params.Memory, &h.Params.Iterations, &h.Params.Parallelism); err != nil {
		return Hash{}, ErrInvalidHashFormat
	}

	var err error
	if h.Salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return Hash{}, ErrInvalidHashFormat
	}
	if h.Key, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil || len(h.Key) == 0 {
		return Hash{}, ErrInvalidHashFormat
	}
	h.Params.SaltLength = uint32(len(h.Salt))
	h.Params.KeyLength = uint32(len(h.Key))

	return h, nil
}
