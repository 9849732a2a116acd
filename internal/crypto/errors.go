package crypto

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
)

var (
	// ErrEmptyPassphrase is returned by DeriveKey for an empty passphrase.
	ErrEmptyPassphrase = fmt.Errorf("%w: passphrase must not be empty", config.ErrConfiguration)
	// ErrInvalidSalt is returned for a missing, undecodable or short salt.
	ErrInvalidSalt = fmt.Errorf("%w: invalid salt", config.ErrConfiguration)
	// ErrInvalidKey is returned by NewCipher for a key that is not 32 bytes.
	ErrInvalidKey = errors.New("invalid encryption key")

	// ErrDecryption means a stored payload failed authentication or could
	// not be decoded. It never says which.
	ErrDecryption = errors.New("payload integrity check failed")
	// ErrEncryption means a payload could not be serialised or sealed.
	ErrEncryption = errors.New("payload encryption failed")
)
