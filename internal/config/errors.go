package config

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the root of every configuration failure. A startup
// path that receives an error matching it must stop the process.
var ErrConfiguration = errors.New("configuration error")

// Validation errors returned by validate when required configuration is
// missing or invalid. All of them wrap [ErrConfiguration].
var (
	// ErrMissingPassphrase indicates that QUIZ_PASSWORD is not set.
	ErrMissingPassphrase = fmt.Errorf("%w: quiz passphrase is not set", ErrConfiguration)
	// ErrMissingAdminPassword indicates that ADMIN_PASSWORD is not set.
	ErrMissingAdminPassword = fmt.Errorf("%w: admin password is not set", ErrConfiguration)
	// ErrMissingTokenSignKey indicates that APP_TOKEN_SIGN_KEY is not set.
	ErrMissingTokenSignKey = fmt.Errorf("%w: token sign key is not set", ErrConfiguration)
	// ErrMissingSalt indicates that neither an explicit salt nor a salt file
	// is configured.
	ErrMissingSalt = fmt.Errorf("%w: neither salt nor salt file is set", ErrConfiguration)
	// ErrUnknownKDF indicates an unsupported key derivation function name.
	ErrUnknownKDF = fmt.Errorf("%w: unknown key derivation function", ErrConfiguration)
	// ErrInvalidKDFParams indicates non-positive KDF cost parameters.
	ErrInvalidKDFParams = fmt.Errorf("%w: invalid key derivation parameters", ErrConfiguration)
	// ErrUnknownDBDriver indicates an unsupported storage driver.
	ErrUnknownDBDriver = fmt.Errorf("%w: unknown database driver", ErrConfiguration)
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = fmt.Errorf("%w: invalid storage configuration", ErrConfiguration)
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing base URL or request timeout).
	ErrInvalidAdapterConfigs = fmt.Errorf("%w: invalid adapter configuration", ErrConfiguration)
)
