package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "JWT_SECRET", "JWT_EXPIRY", "VOCABULARY_PATH", "MAX_PASSWORD_LENGTH", "MAX_WORDS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 128, cfg.MaxPasswordLength)
	assert.Equal(t, 20, cfg.MaxWords)
	assert.Equal(t, 3, cfg.VocabularyMinWordLength)
	assert.False(t, cfg.AuthEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY", "90m")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("VOCABULARY_PATH", "/tmp/words")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiry)
	assert.InDelta(t, 0.5, cfg.RateLimitRPS, 1e-9)
	assert.Equal(t, "/tmp/words", cfg.VocabularyPath)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrJWTSecretRequired)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("MAX_WORDS", "many")

	_, err := Load()
	assert.Error(t, err)
}
