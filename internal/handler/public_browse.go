// Package handler exposes HTTP handlers for both authenticated and public endpoints.
// This file defines handlers for the public browsing API. These routes allow
// unauthenticated users to browse pet listings without requiring a session
// token. Query filters mirror what the mobile client's browse screen offers:
// species type, breed substring, size, gender and lifecycle status.

package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sivaharine/pet-Adoption/internal/repository"
)

// PublicHandler aggregates the repositories needed for unauthenticated
// browsing.
type PublicHandler struct {
	Pets *repository.PetRepo // provides access to pet listings
}

// ListPets handles GET /v1/pets.  All filters are optional; unknown values
// simply match nothing because the columns are ENUMs.  Breed matching is a
// case-insensitive substring search.
func (h *PublicHandler) ListPets(c echo.Context) error {
	filter := repository.PetFilter{
		Type:   c.QueryParam("type"),
		Breed:  c.QueryParam("breed"),
		Size:   c.QueryParam("size"),
		Gender: c.QueryParam("gender"),
		Status: c.QueryParam("status"),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pets, err := h.Pets.List(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch pets"})
	}
	return c.JSON(http.StatusOK, toPetResponses(pets))
}

// GetPet handles GET /v1/pets/:id and returns a single listing with its
// creator's name and email, or 404 when the id does not resolve.
func (h *PublicHandler) GetPet(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pet, err := h.Pets.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrPetNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "pet not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not fetch pet"})
	}
	return c.JSON(http.StatusOK, toPetResponse(pet))
}
