package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"golang.org/x/crypto/pbkdf2"
)

func testSalt() []byte {
	return bytes.Repeat([]byte{0xAB}, MinSaltSize)
}

func newTestPBKDF2(t *testing.T, iterations int) KeyDeriver {
	t.Helper()
	d, err := NewKeyDeriver(config.Crypto{KDF: config.KDFPBKDF2, KDFIterations: iterations})
	if err != nil {
		t.Fatalf("NewKeyDeriver error: %v", err)
	}
	return d
}

func TestDeriveKey_DeterministicForSameInputs(t *testing.T) {
	d := newTestPBKDF2(t, 100_000)

	k1, err := d.DeriveKey("correct horse battery staple", testSalt())
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	k2, err := d.DeriveKey("correct horse battery staple", testSalt())
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for identical inputs")
	}
}

func TestDeriveKey_MatchesPBKDF2HMACSHA256(t *testing.T) {
	d := newTestPBKDF2(t, 1000)

	got, err := d.DeriveKey("passphrase", testSalt())
	if err != nil {
		t.Fatalf("DeriveKey error: %v", err)
	}
	want := pbkdf2.Key([]byte("passphrase"), testSalt(), 1000, KeySize, sha256.New)

	if !bytes.Equal(got, want) {
		t.Fatalf("derived key does not match PBKDF2-HMAC-SHA256")
	}
}

func TestDeriveKey_DifferentPassphraseDifferentKey(t *testing.T) {
	d := newTestPBKDF2(t, 1000)

	k1, _ := d.DeriveKey("passphrase-one", testSalt())
	k2, _ := d.DeriveKey("passphrase-two", testSalt())

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different passphrases")
	}
}

func TestDeriveKey_DifferentSaltDifferentKey(t *testing.T) {
	d := newTestPBKDF2(t, 1000)

	k1, _ := d.DeriveKey("passphrase", testSalt())
	k2, _ := d.DeriveKey("passphrase", bytes.Repeat([]byte{0xCD}, MinSaltSize))

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_EmptyPassphrase(t *testing.T) {
	for _, kdf := range []string{config.KDFPBKDF2, config.KDFArgon2ID} {
		d, err := NewKeyDeriver(config.Crypto{
			KDF: kdf, KDFIterations: 1000,
			Argon2Time: 1, Argon2Memory: 8 * 1024, Argon2Threads: 1,
		})
		if err != nil {
			t.Fatalf("%s: NewKeyDeriver error: %v", kdf, err)
		}

		key, err := d.DeriveKey("", testSalt())
		if key != nil {
			t.Fatalf("%s: expected nil key", kdf)
		}
		if !errors.Is(err, ErrEmptyPassphrase) || !errors.Is(err, config.ErrConfiguration) {
			t.Fatalf("%s: err = %v, want configuration error", kdf, err)
		}
	}
}

func TestDeriveKey_ShortSalt(t *testing.T) {
	d := newTestPBKDF2(t, 1000)

	_, err := d.DeriveKey("passphrase", []byte("salt"))
	if !errors.Is(err, ErrInvalidSalt) {
		t.Fatalf("err = %v, want ErrInvalidSalt", err)
	}
}

func TestDeriveKey_Argon2IDDeterministic(t *testing.T) {
	d, err := NewKeyDeriver(config.Crypto{
		KDF: config.KDFArgon2ID, Argon2Time: 1, Argon2Memory: 8 * 1024, Argon2Threads: 2,
	})
	if err != nil {
		t.Fatalf("NewKeyDeriver error: %v", err)
	}

	k1, _ := d.DeriveKey("passphrase", testSalt())
	k2, _ := d.DeriveKey("passphrase", testSalt())
	pb, _ := newTestPBKDF2(t, 1000).DeriveKey("passphrase", testSalt())

	if len(k1) != KeySize || !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical 32-byte argon2id keys")
	}
	if bytes.Equal(k1, pb) {
		t.Fatalf("argon2id and pbkdf2 keys must differ")
	}
}

func TestNewKeyDeriver_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Crypto
		want error
	}{
		{name: "unknown kdf", cfg: config.Crypto{KDF: "scrypt"}, want: config.ErrUnknownKDF},
		{name: "zero iterations", cfg: config.Crypto{KDF: config.KDFPBKDF2}, want: config.ErrInvalidKDFParams},
		{name: "argon2 zero threads", cfg: config.Crypto{KDF: config.KDFArgon2ID, Argon2Time: 1, Argon2Memory: 1024}, want: config.ErrInvalidKDFParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeyDeriver(tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDeriveFromConfig_StableAcrossCalls(t *testing.T) {
	cfg := config.Crypto{
		Passphrase:    "passphrase",
		SaltFile:      t.TempDir() + "/.salt",
		KDF:           config.KDFPBKDF2,
		KDFIterations: 1000,
	}

	k1, err := DeriveFromConfig(cfg)
	if err != nil {
		t.Fatalf("DeriveFromConfig error: %v", err)
	}
	k2, err := DeriveFromConfig(cfg)
	if err != nil {
		t.Fatalf("DeriveFromConfig error: %v", err)
	}

	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected the same key after the salt file was created")
	}
}
