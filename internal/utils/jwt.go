package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-quiz-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// Token audiences keep admin and quiz tokens from being used in place of
// each other even though they share a signing key.
const (
	AdminAudience = "quiz-admin"
	QuizAudience  = "quiz-player"
)

var (
	// ErrInvalidTokenParams is returned when a token cannot be issued
	// because the issuer, duration or sign key is missing.
	ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")
	// ErrInvalidToken is returned for any token that fails verification.
	ErrInvalidToken = errors.New("invalid token")
)

// GenerateAdminToken creates a signed HMAC-SHA256 JWT for the admin
// session.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): always [models.AdminSubject]
//   - Audience  (aud): [AdminAudience]
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
func GenerateAdminToken(issuer string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   models.AdminSubject,
		Audience:  jwt.ClaimStrings{AdminAudience},
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	return sign(claims, signKey)
}

// ParseAdminToken validates an admin token and returns the session it
// represents.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) and audience (aud) checks
//   - Expiration (exp) claim check
//   - Subject (sub) equal to [models.AdminSubject]
func ParseAdminToken(tokenString, tokenSignKey, tokenIssuer string) (models.Session, error) {
	claims := &jwt.RegisteredClaims{}
	if err := parse(tokenString, claims, tokenSignKey, tokenIssuer, AdminAudience); err != nil {
		return models.Session{}, err
	}

	if claims.Subject != models.AdminSubject {
		return models.Session{}, fmt.Errorf("%w: unexpected subject", ErrInvalidToken)
	}

	session := models.Session{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		session.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}

// GenerateQuizToken signs the explicit player session created when a quiz
// starts. The question ids travel inside the token, so the server keeps no
// per-player state between start and submit.
func GenerateQuizToken(issuer string, tokenDuration time.Duration, signKey string, session models.QuizSession) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &models.QuizClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        session.ID,
			Issuer:    issuer,
			Subject:   session.Username,
			Audience:  jwt.ClaimStrings{QuizAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username:     session.Username,
		CategoryID:   session.CategoryID,
		CategoryName: session.CategoryName,
		QuestionIDs:  session.QuestionIDs,
	}

	return sign(claims, signKey)
}

// ParseQuizToken validates a quiz token and returns the player session.
func ParseQuizToken(tokenString, tokenSignKey, tokenIssuer string) (models.QuizSession, error) {
	claims := &models.QuizClaims{}
	if err := parse(tokenString, claims, tokenSignKey, tokenIssuer, QuizAudience); err != nil {
		return models.QuizSession{}, err
	}

	if claims.Username == "" || len(claims.QuestionIDs) == 0 {
		return models.QuizSession{}, fmt.Errorf("%w: empty quiz session", ErrInvalidToken)
	}

	return claims.Session(), nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func sign(claims jwt.Claims, signKey string) (models.Token, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString}, nil
}

func parse(tokenString string, claims jwt.Claims, signKey, issuer, audience string) error {
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return nil
}
