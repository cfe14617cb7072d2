// Package auth implements credential hashing and the bearer-token
// lifecycle: issuing HS256 JWTs bound to a personnel number and
// verifying presented tokens against the process-wide signing secret.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failures. The middleware collapses all three into one
// HTTP response, but callers that care can tell them apart.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenSignature = errors.New("token signature mismatch")
)

// TokenService issues and verifies signed bearer tokens. The secret
// and validity window are fixed at construction; there is no runtime
// rotation and no server-side revocation, so a structurally valid,
// unexpired token is sufficient proof of authentication.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying userID as the subject, valid from now
// until now plus the configured window.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates raw and returns the embedded subject.
// Failures are reported as ErrTokenExpired, ErrTokenSignature or
// ErrTokenMalformed. Verify has no side effects.
func (s *TokenService) Verify(raw string) (int64, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is ever used for signing; reject anything else
		// so an attacker cannot downgrade the algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrTokenSignature
		default:
			return 0, ErrTokenMalformed
		}
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenMalformed
	}
	// Numeric JSON claims decode as float64.
	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, ErrTokenMalformed
	}
	return int64(sub), nil
}
