// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"

	helper "assignment_backend/internals/helpers"
)

// TokenTTL is the fixed lifetime of a session token.
const TokenTTL = time.Hour

var (
	ErrInvalidToken = fmt.Errorf("%w: invalid token", helper.ErrUnauthorized)
	ErrExpiredToken = fmt.Errorf("%w: token expired", helper.ErrUnauthorized)
	ErrSigningKey   = errors.New("token signing secret is not configured")
)

// Identity is the claim a session token carries.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	UID   string `json:"uid,omitempty"`
}

type Claims struct {
	Identity
	jwt.RegisteredClaims
}

// TokenService signs and verifies stateless HS256 session tokens.
// There is no revocation list: logout only drops the cookie, so a token stays
// valid until it expires.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(strings.TrimSpace(secret)),
		now:    time.Now,
	}
}

// WithClock swaps the issuing clock. Verification always uses wall time.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	return &TokenService{secret: s.secret, now: now}
}

// Issue signs a token for id that expires exactly TokenTTL after issuance.
func (s *TokenService) Issue(id Identity) (string, time.Time, error) {
	if len(s.secret) == 0 {
		return "", time.Time{}, ErrSigningKey
	}
	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(TokenTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature and expiry and returns the embedded identity.
func (s *TokenService) Verify(raw string) (Identity, error) {
	if len(s.secret) == 0 {
		return Identity{}, ErrSigningKey
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, ErrInvalidToken
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Identity{}, ErrExpiredToken
	case err != nil:
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case !tok.Valid:
		return Identity{}, ErrInvalidToken
	case claims.ExpiresAt == nil:
		return Identity{}, ErrInvalidToken
	}
	return claims.Identity, nil
}
