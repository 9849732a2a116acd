package crypto

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── GenerateSalt ──────────────────────────────────────────────────────────────

// TestGenerateSalt_LengthAndRandomness verifies size and that two salts differ.
func TestGenerateSalt_LengthAndRandomness(t *testing.T) {
	s1, err := GenerateSalt()
	require.NoError(t, err)
	s2, err := GenerateSalt()
	require.NoError(t, err)

	assert.Len(t, s1, SaltSize)
	assert.NotEqual(t, s1, s2)
}

// ── LoadOrCreateSalt ──────────────────────────────────────────────────────────

// TestLoadOrCreateSalt_ExplicitWins verifies that an explicit salt is used
// and the salt file is not touched.
func TestLoadOrCreateSalt_ExplicitWins(t *testing.T) {
	want := bytes.Repeat([]byte{0x01}, SaltSize)
	path := filepath.Join(t.TempDir(), ".salt")

	got, err := LoadOrCreateSalt(config.Crypto{
		Salt:     base64.StdEncoding.EncodeToString(want),
		SaltFile: path,
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoFileExists(t, path)
}

// TestLoadOrCreateSalt_ExplicitInvalid covers bad base64 and salts of the
// wrong length, short or long.
func TestLoadOrCreateSalt_ExplicitInvalid(t *testing.T) {
	_, err := LoadOrCreateSalt(config.Crypto{Salt: "!!not-base64!!"})
	assert.ErrorIs(t, err, ErrInvalidSalt)

	for _, size := range []int{5, SaltSize - 1, SaltSize + 1, 24} {
		_, err = LoadOrCreateSalt(config.Crypto{Salt: base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{0x01}, size))})
		assert.ErrorIs(t, err, ErrInvalidSalt, "size %d", size)
		assert.ErrorIs(t, err, config.ErrConfiguration, "size %d", size)
	}
}

// TestLoadOrCreateSalt_CreatesFile verifies that a missing salt file is
// created with owner-only permissions and reused on the next call.
func TestLoadOrCreateSalt_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".salt")
	cfg := config.Crypto{SaltFile: path}

	first, err := LoadOrCreateSalt(cfg)
	require.NoError(t, err)
	assert.Len(t, first, SaltSize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := LoadOrCreateSalt(cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// TestLoadOrCreateSalt_ShortFile verifies that a truncated salt file is a
// configuration error rather than silently replaced.
func TestLoadOrCreateSalt_ShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".salt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o600))

	_, err := LoadOrCreateSalt(config.Crypto{SaltFile: path})
	assert.ErrorIs(t, err, ErrInvalidSalt)
	assert.ErrorIs(t, err, config.ErrConfiguration)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)
}

// TestLoadOrCreateSalt_LongFile verifies that a salt file with trailing
// bytes is rejected instead of being used as a different salt.
func TestLoadOrCreateSalt_LongFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".salt")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0x02}, SaltSize+1), 0o600))

	_, err := LoadOrCreateSalt(config.Crypto{SaltFile: path})
	assert.ErrorIs(t, err, ErrInvalidSalt)
	assert.ErrorIs(t, err, config.ErrConfiguration)
}

// TestLoadOrCreateSalt_NoSource verifies the error when nothing is configured.
func TestLoadOrCreateSalt_NoSource(t *testing.T) {
	_, err := LoadOrCreateSalt(config.Crypto{})
	assert.ErrorIs(t, err, config.ErrMissingSalt)
}
