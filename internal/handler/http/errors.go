// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but cannot be split into at least two space-separated
	// parts or its scheme is not Bearer.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request level errors reported with HTTP 400 before the service layer is
// reached.
var (
	ErrInvalidJSON       = errors.New("invalid JSON was passed")
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	// ErrIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	ErrIntegrityCheckFailed = errors.New("integrity check failed")
)
