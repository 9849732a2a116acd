package store

import (
	"bytes"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-quiz-keeper/internal/crypto"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/stretchr/testify/require"
)

// ── helpers shared by the store tests ────────────────────────────────────────

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

func newTestCipher(t *testing.T) crypto.Cipher {
	t.Helper()
	c, err := crypto.NewCipher(bytes.Repeat([]byte{0x42}, crypto.KeySize))
	require.NoError(t, err)
	return c
}

func newMockDB(t *testing.T, driver string) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, driver, logger.Nop()), mock
}

func newMockQuestionRepo(t *testing.T, driver string) (*questionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, driver)
	return &questionRepository{
		db:     db,
		cipher: newTestCipher(t),
		ids:    fixedIDs("generated-id"),
		logger: logger.Nop(),
	}, mock
}
