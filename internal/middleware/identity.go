package middleware

// identity.go defines helper functions shared across middleware files. It
// provides a user identifier extraction function that reads the subject
// that JWTAuth stored in the request context. When no user is authenticated
// (public browse routes, register, login) "anon" is returned so rate-limit
// keys still partition sensibly.

import (
    "strconv"

    "github.com/labstack/echo/v4"
)

// currentUserID extracts the authenticated user's id from the context as a
// string for use in cache and rate-limit keys. JWTAuth stores the subject
// as a uint64; "anon" is returned for unauthenticated requests.
func currentUserID(c echo.Context) string {
    switch v := c.Get("user_id").(type) {
    case uint64:
        return strconv.FormatUint(v, 10)
    case string:
        if v != "" {
            return v
        }
    }
    return "anon"
}
