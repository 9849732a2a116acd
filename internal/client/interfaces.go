// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command described by args and returns when it is
	// done.
	Run(ctx context.Context, args []string) error
}

// PasswordReader obtains the admin password from the operator.
type PasswordReader interface {
	ReadPassword(prompt string) (string, error)
}
