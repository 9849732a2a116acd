// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
)

// gcmCipher is the AES-256-GCM implementation of [Cipher]. The AEAD is
// safe for concurrent use, so one instance is shared by all repositories.
type gcmCipher struct {
	aead cipher.AEAD
}

// NewCipher builds an AES-256-GCM [Cipher] from a 32-byte key.
func NewCipher(key []byte) (Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d bytes, need %d", ErrInvalidKey, len(key), KeySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &gcmCipher{aead: aead}, nil
}

// RecordAAD builds the associated data binding a sealed payload to the
// record it belongs to, so a blob copied onto another row fails to open.
func RecordAAD(kind, id string) []byte {
	return []byte(kind + ":" + id)
}

// Seal implements [Cipher]. The blob layout is nonce (12 bytes) ‖ ciphertext
// ‖ tag, base64 standard encoded.
func (c *gcmCipher) Seal(v any, associatedData []byte) (string, error) {
	plaintext, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: marshal payload: %w", ErrEncryption, err)
	}

	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(plaintext)+c.aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrEncryption, err)
	}

	blob := c.aead.Seal(nonce, nonce, plaintext, associatedData)
	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Cipher].
func (c *gcmCipher) Open(blob string, associatedData []byte, target any) error {
	// Strict decoding alone still skips CR/LF, so the blob must also be the
	// canonical encoding of what it decodes to.
	raw, err := base64.StdEncoding.Strict().DecodeString(blob)
	if err != nil || base64.StdEncoding.EncodeToString(raw) != blob {
		return fmt.Errorf("%w: decode payload", ErrDecryption)
	}

	nonceSize := c.aead.NonceSize()
	if len(raw) < nonceSize+c.aead.Overhead() {
		return fmt.Errorf("%w: payload too short", ErrDecryption)
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, associatedData)
	if err != nil {
		return fmt.Errorf("%w: authentication failed", ErrDecryption)
	}

	if err := json.Unmarshal(plaintext, target); err != nil {
		return fmt.Errorf("%w: unmarshal payload", ErrDecryption)
	}

	return nil
}
