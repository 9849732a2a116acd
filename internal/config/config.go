// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-quiz-keeper application. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the request integrity key and the
	// application version.
	App App `envPrefix:"APP_"`

	// Admin holds the admin panel credential.
	Admin Admin `envPrefix:"ADMIN_"`

	// Crypto holds the passphrase and key derivation settings used to build
	// the data encryption key.
	Crypto Crypto `envPrefix:"QUIZ_"`

	// Quiz holds gameplay tunables.
	Quiz Quiz `envPrefix:"QUIZ_"`

	// Storage holds configuration for the record store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the admin CLI uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to sign admin and quiz tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// AdminTokenDuration is how long an admin session token stays valid.
	// Env: APP_ADMIN_TOKEN_DURATION
	AdminTokenDuration time.Duration `env:"ADMIN_TOKEN_DURATION"`

	// QuizTokenDuration is how long a player has to finish a started quiz.
	// Env: APP_QUIZ_TOKEN_DURATION
	QuizTokenDuration time.Duration `env:"QUIZ_TOKEN_DURATION"`

	// HashKey is the HMAC key used for request integrity checking of admin
	// writes (the HashSHA256 header). Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Admin holds the admin panel credential.
type Admin struct {
	// Password is compared in constant time against every admin login.
	// Env: ADMIN_PASSWORD
	Password string `env:"PASSWORD"`
}

// Crypto configures how the data encryption key is derived.
type Crypto struct {
	// Passphrase is the operator secret the encryption key is derived from.
	// It is held in memory only long enough to derive the key.
	// Env: QUIZ_PASSWORD
	Passphrase string `env:"PASSWORD"`

	// Salt is an explicit base64-encoded 16-byte salt. When set, SaltFile is
	// ignored.
	// Env: QUIZ_SALT
	Salt string `env:"SALT"`

	// SaltFile is where the deployment salt is kept. It is created with a
	// random salt on first start and must survive restarts.
	// Env: QUIZ_SALT_FILE
	SaltFile string `env:"SALT_FILE"`

	// KDF selects the key derivation function: "pbkdf2" or "argon2id".
	// Env: QUIZ_KDF
	KDF string `env:"KDF"`

	// KDFIterations is the PBKDF2-HMAC-SHA256 iteration count.
	// Env: QUIZ_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// Argon2Time, Argon2Memory (KiB) and Argon2Threads tune Argon2id.
	// Env: QUIZ_ARGON2_TIME, QUIZ_ARGON2_MEMORY, QUIZ_ARGON2_THREADS
	Argon2Time    uint32 `env:"ARGON2_TIME"`
	Argon2Memory  uint32 `env:"ARGON2_MEMORY"`
	Argon2Threads uint8  `env:"ARGON2_THREADS"`
}

// Quiz holds gameplay tunables.
type Quiz struct {
	// QuestionLimit is the number of questions drawn per category when a
	// quiz starts and the request does not specify a limit.
	// Env: QUIZ_QUESTION_LIMIT
	QuestionLimit uint64 `env:"QUESTION_LIMIT"`

	// LeaderboardLimit is the default number of leaderboard rows.
	// Env: QUIZ_LEADERBOARD_LIMIT
	LeaderboardLimit int `env:"LEADERBOARD_LIMIT"`
}

// Storage groups the configuration for the record store.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is "sqlite3" (default, local file) or "postgres".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is a file path for sqlite3 or a connection URI for postgres.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint.
	// Empty disables the gRPC transport.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client-side view of the server.
type Adapter struct {
	// BaseURL is the HTTP base URL of the quiz server.
	// Env: ADAPTER_ADDRESS
	BaseURL string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Supported values of [Crypto.KDF] and [DB.Driver].
const (
	KDFPBKDF2   = "pbkdf2"
	KDFArgon2ID = "argon2id"

	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// Redacted returns a copy of cfg that is safe to log: every secret is
// replaced by a fixed marker.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	const marker = "[redacted]"
	redact := func(s string) string {
		if s == "" {
			return ""
		}
		return marker
	}

	cfg.App.TokenSignKey = redact(cfg.App.TokenSignKey)
	cfg.App.HashKey = redact(cfg.App.HashKey)
	cfg.Admin.Password = redact(cfg.Admin.Password)
	cfg.Crypto.Passphrase = redact(cfg.Crypto.Passphrase)
	return cfg
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error wrapping
// [ErrConfiguration] if any source fails to load or validation fails.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}
