package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/sivaharine/pet-Adoption/internal/utils" // session token verification
)

// JWTAuth returns an Echo middleware that validates a Bearer session token
// and injects the token's subject into the request context.  The provided
// secret must match the one used when issuing tokens.  This middleware
// wraps every mutating or identity-scoped route (pet create/update/delete,
// profile, favorites) so that handlers can read the authenticated user via
// `c.Get("user_id")`.  Public browse routes, register and login bypass it.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header starts with "Bearer " followed by the JWT.
            // Anything else is rejected before handler logic runs.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // ParseSessionToken checks the HMAC signature, the payload
            // shape and the embedded expiry in one call.  Every failure
            // mode collapses to the same 401 so clients learn nothing
            // about why a token was rejected.
            uid, err := utils.ParseSessionToken(secret, raw)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            // Store the subject user ID in the context for handlers and
            // downstream middleware.
            c.Set("user_id", uid)
            return next(c)
        }
    }
}
