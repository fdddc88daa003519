package service

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/generator"
	"github.com/vaultpass/passgen-go/internal/model"
)

func strPtr(s string) *string { return &s }

func newTestGeneratorService() *GeneratorService {
	svc := NewGeneratorService([]string{"cat", "dog"}, DefaultLimits())
	return svc.WithHashParams(crypto.HashParams{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 8, KeyLength: 16})
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.Generate(model.GenerateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "random", resp.Kind)
	assert.Equal(t, generator.DefaultRandomLength, resp.Length)
	assert.Regexp(t, `^[a-z]{8}$`, resp.Password)
	assert.Empty(t, resp.Hash)
}

func TestGenerate_Kinds(t *testing.T) {
	tests := []struct {
		name    string
		req     model.GenerateRequest
		kind    string
		pattern string
	}{
		{
			name:    "pin default",
			req:     model.GenerateRequest{Kind: "pin"},
			kind:    "pin",
			pattern: `^[0-9]{8}$`,
		},
		{
			name:    "pin by label",
			req:     model.GenerateRequest{Kind: "Pin Code", Length: 4},
			kind:    "pin",
			pattern: `^[0-9]{4}$`,
		},
		{
			name:    "random with numbers",
			req:     model.GenerateRequest{Kind: "random", Length: 32, Numbers: true},
			kind:    "random",
			pattern: `^[a-z0-9]{32}$`,
		},
		{
			name:    "random with caps",
			req:     model.GenerateRequest{Kind: "random", Length: 20, Caps: true},
			kind:    "random",
			pattern: `^[a-zA-Z]{20}$`,
		},
		{
			name:    "memorable default separator",
			req:     model.GenerateRequest{Kind: "memorable", Words: 3, Capitalize: true},
			kind:    "memorable",
			pattern: `^(CAT|DOG)-(CAT|DOG)-(CAT|DOG)$`,
		},
		{
			name:    "memorable empty separator",
			req:     model.GenerateRequest{Kind: "memorable", Words: 2, Separator: strPtr("")},
			kind:    "memorable",
			pattern: `^(cat|dog)(cat|dog)$`,
		},
		{
			name:    "memorable default word count",
			req:     model.GenerateRequest{Kind: "memorable", Separator: strPtr(".")},
			kind:    "memorable",
			pattern: `^(cat|dog)(\.(cat|dog)){4}$`,
		},
	}

	svc := newTestGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Generate(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), resp.Password)
			assert.Equal(t, len(resp.Password), resp.Length)
			assert.Greater(t, resp.EntropyBits, 0.0)
		})
	}
}

func TestGenerate_Hash(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.Generate(model.GenerateRequest{Kind: "pin", Length: 6, Hash: true})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(resp.Hash, "$argon2id$"))

	ok, err := crypto.VerifyPassword(resp.Password, resp.Hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     model.GenerateRequest
		wantErr error
	}{
		{name: "unknown kind", req: model.GenerateRequest{Kind: "totp"}, wantErr: generator.ErrUnknownKind},
		{name: "negative length", req: model.GenerateRequest{Kind: "random", Length: -1}, wantErr: generator.ErrNonPositiveLength},
		{name: "length too long", req: model.GenerateRequest{Kind: "pin", Length: 129}, wantErr: ErrLengthTooLong},
		{name: "negative words", req: model.GenerateRequest{Kind: "memorable", Words: -4}, wantErr: generator.ErrNonPositiveWordCount},
		{name: "too many words", req: model.GenerateRequest{Kind: "memorable", Words: 21}, wantErr: ErrTooManyWords},
	}

	svc := newTestGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestGenerate_EmptyVocabulary(t *testing.T) {
	svc := NewGeneratorService(nil, DefaultLimits())

	_, err := svc.Generate(model.GenerateRequest{Kind: "memorable"})
	assert.ErrorIs(t, err, generator.ErrEmptyVocabulary)
	assert.True(t, IsValidationError(err))
}

func TestGenerate_SeededSourceIsDeterministic(t *testing.T) {
	req := model.GenerateRequest{Kind: "random", Length: 16, Caps: true, Numbers: true, Symbols: true}

	a, err := NewGeneratorService(nil, DefaultLimits(), generator.WithSource(generator.SeededSource(3))).Generate(req)
	require.NoError(t, err)
	b, err := NewGeneratorService(nil, DefaultLimits(), generator.WithSource(generator.SeededSource(3))).Generate(req)
	require.NoError(t, err)

	assert.Equal(t, a.Password, b.Password)
}

func TestGenerators(t *testing.T) {
	infos := newTestGeneratorService().Generators()
	require.Len(t, infos, 3)

	assert.Equal(t, "random", infos[0].Kind)
	assert.Equal(t, "Random Password", infos[0].Label)
	assert.Equal(t, 128, infos[0].Max)

	assert.Equal(t, "pin", infos[1].Kind)
	assert.Equal(t, generator.DefaultPinLength, infos[1].Default)

	assert.Equal(t, "memorable", infos[2].Kind)
	assert.Equal(t, "words", infos[2].Unit)
	assert.Equal(t, 20, infos[2].Max)
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(crypto.ErrInvalidHashFormat))
}
