// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. Secrets are checked
// first so that a missing passphrase is reported even when other settings
// are also wrong.
func (cfg *StructuredConfig) validate() error {
	if cfg.Crypto.Passphrase == "" {
		return ErrMissingPassphrase
	}
	if cfg.Admin.Password == "" {
		return ErrMissingAdminPassword
	}
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if err := cfg.Crypto.validate(); err != nil {
		return err
	}

	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return ErrUnknownDBDriver
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (c Crypto) validate() error {
	if c.Salt == "" && c.SaltFile == "" {
		return ErrMissingSalt
	}

	switch c.KDF {
	case KDFPBKDF2:
		if c.KDFIterations <= 0 {
			return ErrInvalidKDFParams
		}
	case KDFArgon2ID:
		if c.Argon2Time == 0 || c.Argon2Memory == 0 || c.Argon2Threads == 0 {
			return ErrInvalidKDFParams
		}
	default:
		return ErrUnknownKDF
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
