package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns the operator passphrase and the deployment salt into the
// 256-bit data encryption key.
//
// DeriveKey is deterministic: the same passphrase, salt and parameters
// always yield the same key, across restarts. It is pure and touches no
// state.
type KeyDeriver interface {
	// DeriveKey returns a 32-byte key. It fails with [ErrEmptyPassphrase]
	// for an empty passphrase and [ErrInvalidSalt] for a salt shorter than
	// [MinSaltSize].
	DeriveKey(passphrase string, salt []byte) ([]byte, error)
}

// Cipher seals and opens record payloads with an authenticated scheme.
//
// Every Seal uses a fresh random nonce, so sealing the same value twice
// produces different blobs. The associated data passed to Seal must be
// passed to Open unchanged, otherwise Open fails with [ErrDecryption].
type Cipher interface {
	// Seal serialises v to JSON and encrypts it. The result is
	// base64(nonce ‖ ciphertext ‖ tag).
	Seal(v any, associatedData []byte) (string, error)

	// Open authenticates and decrypts blob and unmarshals the plaintext into
	// target. Any integrity failure is reported as [ErrDecryption].
	Open(blob string, associatedData []byte, target any) error
}

// SecretChecker compares a candidate against a configured secret without
// leaking through timing where the two differ.
type SecretChecker interface {
	// Check reports whether candidate equals the configured secret.
	Check(candidate string) bool
}
