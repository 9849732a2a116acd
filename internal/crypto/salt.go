package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
)

// SaltSize is the fixed length of a deployment salt.
const SaltSize = MinSaltSize

// GenerateSalt reads SaltSize random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// LoadOrCreateSalt returns the deployment salt.
//
// An explicit base64 salt in cfg.Salt wins. Otherwise cfg.SaltFile is read;
// when the file does not exist a new random salt is written to it with mode
// 0600. The salt is not secret but must stay stable: losing it makes every
// stored record unreadable.
func LoadOrCreateSalt(cfg config.Crypto) ([]byte, error) {
	if cfg.Salt != "" {
		salt, err := base64.StdEncoding.DecodeString(cfg.Salt)
		if err != nil {
			return nil, fmt.Errorf("%w: salt is not valid base64: %w", ErrInvalidSalt, err)
		}
		if len(salt) != SaltSize {
			return nil, fmt.Errorf("%w: got %d bytes, need exactly %d", ErrInvalidSalt, len(salt), SaltSize)
		}
		return salt, nil
	}

	if cfg.SaltFile == "" {
		return nil, config.ErrMissingSalt
	}

	salt, err := os.ReadFile(cfg.SaltFile)
	switch {
	case err == nil:
		if len(salt) != SaltSize {
			return nil, fmt.Errorf("%w: salt file %s holds %d bytes, need exactly %d", ErrInvalidSalt, cfg.SaltFile, len(salt), SaltSize)
		}
		return salt, nil
	case errors.Is(err, fs.ErrNotExist):
		return createSaltFile(cfg.SaltFile)
	default:
		return nil, fmt.Errorf("%w: read salt file: %w", config.ErrConfiguration, err)
	}
}

func createSaltFile(path string) ([]byte, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("%w: create salt dir: %w", config.ErrConfiguration, err)
		}
	}

	// O_EXCL: never overwrite a salt another process just wrote.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return nil, fmt.Errorf("%w: create salt file: %w", config.ErrConfiguration, err)
	}
	defer f.Close()

	if _, err := f.Write(salt); err != nil {
		return nil, fmt.Errorf("%w: write salt file: %w", config.ErrConfiguration, err)
	}

	return salt, nil
}
