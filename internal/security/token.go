package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/codewithemma/account-microservice/internal/core/domain"
)

// ErrInvalidToken covers expired, tampered, and malformed tokens alike.
var ErrInvalidToken = errors.New("invalid token")

const defaultTTL = 24 * time.Hour

// Claims carried inside issued tokens. Subject is the account email.
type Claims struct {
	AccountID uint64 `json:"account_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates the service's HS256 JWTs. The signing
// secret is process-wide configuration, read-only after startup.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Generate issues a token bound to the credential's identity and role.
func (t *TokenIssuer) Generate(cred domain.Credential) (string, error) {
	now := time.Now()
	claims := Claims{
		AccountID: cred.ID,
		Role:      cred.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   cred.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate parses tok and returns its claims. Expired or tampered tokens are
// rejected, as are tokens signed with anything but HMAC.
func (t *TokenIssuer) Validate(tok string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tok, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
