package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	tok, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, err := svc.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyExpired(t *testing.T) {
	// Issue with a validity window already in the past.
	issuer := NewTokenService("test-secret", -time.Minute)
	tok, err := issuer.Issue(42)
	require.NoError(t, err)

	verifier := NewTokenService("test-secret", time.Hour)
	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyTampered(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	tok, err := svc.Issue(42)
	require.NoError(t, err)

	// Flip the last signature byte.
	b := []byte(tok)
	if b[len(b)-1] == 'A' {
		b[len(b)-1] = 'B'
	} else {
		b[len(b)-1] = 'A'
	}

	_, err = svc.Verify(string(b))
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestVerifyWrongSecret(t *testing.T) {
	tok, err := NewTokenService("secret-one", time.Hour).Issue(42)
	require.NoError(t, err)

	_, err = NewTokenService("secret-two", time.Hour).Verify(tok)
	assert.ErrorIs(t, err, ErrTokenSignature)
}

func TestVerifyMalformed(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		_, err := svc.Verify(raw)
		assert.ErrorIs(t, err, ErrTokenMalformed, "input %q", raw)
	}
}
