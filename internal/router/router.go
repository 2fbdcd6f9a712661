package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/sivaharine/pet-Adoption/internal/handler"    // import the handlers that implement business logic
	"github.com/sivaharine/pet-Adoption/internal/middleware" // import middleware for JWT authentication
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The "/healthz" endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterUsers registers the user-facing routes: registration and login
// under /v1/users (no session required), plus the identity-scoped profile
// and favorites endpoints which all sit behind the JWTAuth guard.  The
// provided AuthHandler implements registration/login/profile and the
// FavoritesHandler the favorites set operations; jwtSecret verifies the
// session tokens those endpoints require.
func RegisterUsers(e *echo.Echo, a *handler.AuthHandler, f *handler.FavoritesHandler, jwtSecret string) {
	// Both register and login end by issuing a session token.
	g := e.Group("/v1/users")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	// Identity-scoped endpoints.  JWTAuth rejects the request with 401
	// before any handler logic runs when the bearer token is missing,
	// malformed, expired or signed with the wrong secret.
	auth := e.Group("/v1/users", middleware.JWTAuth(jwtSecret))
	auth.GET("/profile", a.Profile)
	auth.GET("/favorites", f.ListFavorites)
	auth.POST("/favorites/:petId", f.AddFavorite)
	auth.DELETE("/favorites/:petId", f.RemoveFavorite)
}
