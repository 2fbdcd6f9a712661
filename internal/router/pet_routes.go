package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/sivaharine/pet-Adoption/internal/handler"    // pet handlers
	"github.com/sivaharine/pet-Adoption/internal/middleware" // JWT guard
)

// RegisterPets registers the pet listing endpoints under /v1/pets.
// Browsing is public; creating requires a valid session token and
// update/delete additionally require that the caller is the listing's
// creator, which the repository enforces.  The cacheMW middleware (the
// Redis response cache, or a pass-through when Redis is unavailable) is
// applied only to the public GET routes.
func RegisterPets(e *echo.Echo, p *handler.PetHandler, pub *handler.PublicHandler, jwtSecret string, cacheMW echo.MiddlewareFunc) {
	// ---- Public browse ----
	e.GET("/v1/pets", pub.ListPets, cacheMW)
	e.GET("/v1/pets/:id", pub.GetPet, cacheMW)

	// ---- Authenticated mutations ----
	g := e.Group(
		"/v1/pets",
		middleware.JWTAuth(jwtSecret),
	)
	g.POST("", p.CreatePet)
	g.PUT("/:id", p.UpdatePet)
	g.DELETE("/:id", p.DeletePet)
}
