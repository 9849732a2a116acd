// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the length of the derived data encryption key (AES-256).
	KeySize = 32
	// MinSaltSize is the shortest salt DeriveKey accepts.
	MinSaltSize = 16
)

// pbkdf2Deriver derives keys with PBKDF2-HMAC-SHA256.
type pbkdf2Deriver struct {
	iterations int
}

// argon2idDeriver derives keys with Argon2id.
type argon2idDeriver struct {
	time    uint32
	memory  uint32
	threads uint8
}

// NewKeyDeriver returns the [KeyDeriver] selected by cfg.KDF.
//
// PBKDF2 is the default and matches databases created with 100 000
// iterations. Argon2id is available for new deployments; switching an
// existing deployment to it makes its records unreadable.
func NewKeyDeriver(cfg config.Crypto) (KeyDeriver, error) {
	switch cfg.KDF {
	case config.KDFPBKDF2, "":
		if cfg.KDFIterations <= 0 {
			return nil, config.ErrInvalidKDFParams
		}
		return &pbkdf2Deriver{iterations: cfg.KDFIterations}, nil
	case config.KDFArgon2ID:
		if cfg.Argon2Time == 0 || cfg.Argon2Memory == 0 || cfg.Argon2Threads == 0 {
			return nil, config.ErrInvalidKDFParams
		}
		return &argon2idDeriver{
			time:    cfg.Argon2Time,
			memory:  cfg.Argon2Memory,
			threads: cfg.Argon2Threads,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownKDF, cfg.KDF)
	}
}

func (d *pbkdf2Deriver) DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if err := checkKDFInput(passphrase, salt); err != nil {
		return nil, err
	}

	return pbkdf2.Key([]byte(passphrase), salt, d.iterations, KeySize, sha256.New), nil
}

func (d *argon2idDeriver) DeriveKey(passphrase string, salt []byte) ([]byte, error) {
	if err := checkKDFInput(passphrase, salt); err != nil {
		return nil, err
	}

	return argon2.IDKey([]byte(passphrase), salt, d.time, d.memory, d.threads, KeySize), nil
}

func checkKDFInput(passphrase string, salt []byte) error {
	if passphrase == "" {
		return ErrEmptyPassphrase
	}
	if len(salt) < MinSaltSize {
		return fmt.Errorf("%w: got %d bytes, need at least %d", ErrInvalidSalt, len(salt), MinSaltSize)
	}

	return nil
}

// DeriveFromConfig resolves the deployment salt and derives the data
// encryption key in one step. It is meant to be called once at startup.
func DeriveFromConfig(cfg config.Crypto) ([]byte, error) {
	deriver, err := NewKeyDeriver(cfg)
	if err != nil {
		return nil, err
	}

	salt, err := LoadOrCreateSalt(cfg)
	if err != nil {
		return nil, err
	}

	return deriver.DeriveKey(cfg.Passphrase, salt)
}
