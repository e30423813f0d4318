package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mockshop/commerce-api/internal/core/domain"
)

// TokenTTL is how long an issued session token remains valid.
const TokenTTL = time.Hour

type sessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService signing with secret. A zero ttl
// falls back to TokenTTL.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = TokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces an HS256-signed token embedding the subject id, email, and
// role, with issued-at and expiry claims.
func (s *TokenService) Issue(subjectID, email, role string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify validates the signature and expiry. Every failure mode collapses to
// domain.ErrTokenInvalid so callers cannot distinguish why a token was
// rejected.
func (s *TokenService) Verify(token string) (*domain.SessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return &domain.SessionClaims{
		SubjectID: claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
	}, nil
}
