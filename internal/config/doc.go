// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults for non-secret tunables
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Secrets (the quiz passphrase, the admin password and the token signing key)
// never have defaults: a missing secret is a [ErrConfiguration] and must stop
// the process at startup.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the admin CLI.
package config
