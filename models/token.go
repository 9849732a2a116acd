package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminSubject is the "sub" claim of every admin session token.
const AdminSubject = "admin"

// Token wraps a signed JWT together with its compact serialization.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Session is the explicit admin session passed through the request context
// once a bearer token has been verified. It replaces the "logged in" flag
// that used to live in UI state.
type Session struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IsAdmin reports whether the session was issued to the quiz administrator.
func (s Session) IsAdmin() bool {
	return s.Subject == AdminSubject
}

// QuizClaims is the JWT claim set of a quiz token.
type QuizClaims struct {
	jwt.RegisteredClaims

	Username     string   `json:"usr"`
	CategoryID   int64    `json:"cat"`
	CategoryName string   `json:"cat_name"`
	QuestionIDs  []string `json:"qids"`
}

// Session converts the claims into a [QuizSession].
func (c *QuizClaims) Session() QuizSession {
	session := QuizSession{
		ID:           c.ID,
		Username:     c.Username,
		CategoryID:   c.CategoryID,
		CategoryName: c.CategoryName,
		QuestionIDs:  c.QuestionIDs,
	}
	if c.ExpiresAt != nil {
		session.ExpiresAt = c.ExpiresAt.Time
	}
	return session
}

// LoginRequest is the body of POST /api/admin/login.
type LoginRequest struct {
	Password string `json:"password"`
}
