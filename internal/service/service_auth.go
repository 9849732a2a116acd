package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/crypto"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

// authService is the concrete implementation of AuthService.
// There is a single administrator, identified by a shared password; a
// successful login yields a short-lived signed session token.
type authService struct {
	// checker holds the admin credential and compares candidates in
	// constant time.
	checker crypto.SecretChecker

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued admin token remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService around checker and the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(checker crypto.SecretChecker, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		checker:       checker,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.AdminTokenDuration,
		logger:        logger,
	}
}

// Login authenticates the administrator.
//
// Returns a signed admin token or:
//   - ErrInvalidDataProvided if password is empty.
//   - ErrWrongPassword if password does not match the configured credential.
//   - ErrTokenCreationFailed if signing fails.
//
// Neither the candidate nor the configured password is ever logged.
func (a *authService) Login(ctx context.Context, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if password == "" {
		log.Warn().Str("func", "*authService.Login").Msg("empty admin password provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	if !a.checker.Check(password) {
		log.Warn().Str("func", "*authService.Login").Msg("wrong admin password")
		return models.Token{}, ErrWrongPassword
	}

	token, err := utils.GenerateAdminToken(a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("failed to create admin token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Str("func", "*authService.Login").Msg("admin logged in")
	return token, nil
}

// ParseToken validates a raw admin token and returns the session it
// carries. Any validation failure (expired, wrong issuer or audience,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Session, error) {
	session, err := utils.ParseAdminToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("admin token rejected")
		return models.Session{}, ErrTokenIsExpiredOrInvalid
	}

	return session, nil
}
