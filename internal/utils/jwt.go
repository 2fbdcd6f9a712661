package utils // package utils provides helper functions for token creation and hashing

import (
    "errors" // sentinel error for any token that fails verification
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// ErrInvalidToken is returned by ParseSessionToken whenever a token cannot be
// trusted: bad signature, malformed payload, unexpected algorithm or past
// expiry.  Callers do not need to distinguish between those cases; all of
// them mean the request is unauthenticated.
var ErrInvalidToken = errors.New("invalid token")

// SessionToken represents a signed JWT session token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Session tokens are sent in the Authorization
// header when calling protected endpoints.  There is no server-side session
// and no revocation list; a token simply stops working once Exp has passed.
type SessionToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, and a TTL in hours.  It returns a
// SessionToken structure containing the signed token and its expiration
// time.  The JWT includes standard claims: subject (sub), expiration (exp)
// and issued at (iat).
func NewSessionToken(secret string, userID uint64, ttlHours int) (SessionToken, error) {
    // Calculate the expiration time by adding the TTL to the current UTC time.
    exp := time.Now().UTC().Add(time.Duration(ttlHours) * time.Hour)
    claims := jwt.MapClaims{
        "sub": userID,
        "exp": exp.Unix(),
        "iat": time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SessionToken{}, err
    }
    return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies a raw session token against the signing secret
// and returns the subject user ID it was issued for.  The signing method is
// pinned to HMAC so tokens signed with a different algorithm are rejected.
// Expired or otherwise unverifiable tokens yield ErrInvalidToken.
func ParseSessionToken(secret, raw string) (uint64, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return 0, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return 0, ErrInvalidToken
    }
    // Numeric JSON claims decode as float64; reject anything else.
    sub, ok := claims["sub"].(float64)
    if !ok || sub <= 0 {
        return 0, ErrInvalidToken
    }
    return uint64(sub), nil
}
