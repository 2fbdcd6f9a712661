package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_Roundtrip(t *testing.T) {
	tok, err := NewSessionToken("secret", 42, 24)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)

	uid, err := ParseSessionToken("secret", tok.Token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), uid)
}

func TestSessionToken_Expired(t *testing.T) {
	// A negative TTL produces a token whose expiry is already in the past.
	tok, err := NewSessionToken("secret", 42, -1)
	require.NoError(t, err)

	_, err = ParseSessionToken("secret", tok.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	tok, err := NewSessionToken("secret", 42, 24)
	require.NoError(t, err)

	_, err = ParseSessionToken("other-secret", tok.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		_, err := ParseSessionToken("secret", raw)
		require.ErrorIs(t, err, ErrInvalidToken, "raw=%q", raw)
	}
}

func TestSessionToken_RejectsUnsignedAlg(t *testing.T) {
	// An alg=none token must never pass, even with valid-looking claims.
	claims := jwt.MapClaims{"sub": 42, "exp": time.Now().Add(time.Hour).Unix()}
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	raw, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseSessionToken("secret", raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestSessionToken_Tampered(t *testing.T) {
	tok, err := NewSessionToken("secret", 42, 24)
	require.NoError(t, err)

	// Flip the last character of the signature.
	raw := []byte(tok.Token)
	if raw[len(raw)-1] == 'A' {
		raw[len(raw)-1] = 'B'
	} else {
		raw[len(raw)-1] = 'A'
	}
	_, err = ParseSessionToken("secret", string(raw))
	require.ErrorIs(t, err, ErrInvalidToken)
}
