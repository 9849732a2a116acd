package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
)

// digestChecker implements [SecretChecker] by comparing SHA-256 digests in
// constant time. Hashing first fixes the compared length at 32 bytes, so
// neither the length of the secret nor the position of the first differing
// byte shows in the timing.
type digestChecker struct {
	digest [sha256.Size]byte
}

// NewSecretChecker returns a [SecretChecker] for secret. The plain secret is
// not retained.
func NewSecretChecker(secret string) SecretChecker {
	return &digestChecker{digest: sha256.Sum256([]byte(secret))}
}

// Check implements [SecretChecker].
func (c *digestChecker) Check(candidate string) bool {
	got := sha256.Sum256([]byte(candidate))
	return subtle.ConstantTimeCompare(got[:], c.digest[:]) == 1
}
