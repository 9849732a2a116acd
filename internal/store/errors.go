package store

import (
	"errors"
	"fmt"
)

// Root errors of the store. Every failure returned by a repository matches
// exactly one of ErrStorage, ErrNotFound, ErrAlreadyExists or
// crypto.ErrDecryption.
var (
	// ErrStorage is the root of every I/O level failure: the database could
	// not be reached, a statement failed or a row could not be scanned.
	ErrStorage = errors.New("storage error")

	// ErrNotFound is returned when the requested record does not exist.
	// It is an expected outcome, not a storage failure.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists is returned when a put collides with an existing
	// record.
	ErrAlreadyExists = errors.New("record already exists")
)

// Record specific sentinels. Callers should use [errors.Is] to match
// against these values or their roots.
var (
	ErrQuestionNotFound = fmt.Errorf("%w: question", ErrNotFound)
	ErrScoreNotFound    = fmt.Errorf("%w: score", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("%w: category", ErrNotFound)

	ErrQuestionAlreadyExists = fmt.Errorf("%w: question", ErrAlreadyExists)
	ErrScoreAlreadyExists    = fmt.Errorf("%w: score", ErrAlreadyExists)
	ErrCategoryAlreadyExists = fmt.Errorf("%w: category", ErrAlreadyExists)
)

// Low-level database operation errors. All of them wrap [ErrStorage].
var (
	// ErrConnecting is returned when the database cannot be opened or pinged.
	ErrConnecting = fmt.Errorf("%w: failed to connect to database", ErrStorage)

	// ErrMigrating is returned when the schema migrations fail.
	ErrMigrating = fmt.Errorf("%w: failed to migrate database", ErrStorage)

	// ErrUnavailable is returned when the driver reports the database as
	// busy, locked, read-only or unreachable.
	ErrUnavailable = fmt.Errorf("%w: database unavailable", ErrStorage)

	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = fmt.Errorf("%w: error building sql query", ErrStorage)

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = fmt.Errorf("%w: error executing sql query", ErrStorage)

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = fmt.Errorf("%w: failed to execute statement", ErrStorage)

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = fmt.Errorf("%w: failed to begin transaction", ErrStorage)

	// ErrCommittingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommittingTransaction = fmt.Errorf("%w: failed to commit transaction", ErrStorage)

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = fmt.Errorf("%w: failed to scan row", ErrStorage)

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = fmt.Errorf("%w: failed to scan rows", ErrStorage)
)
