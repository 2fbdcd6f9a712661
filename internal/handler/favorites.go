// This file implements the favorites endpoints. Add and remove are
// idempotent set operations delegated to single SQL statements; listing
// resolves favorites to their current pet records, so a pet deleted after
// being favorited simply disappears from the list.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sivaharine/pet-Adoption/internal/repository"
)

// FavoritesHandler bundles the favorites ledger for the authenticated
// favorites endpoints.
type FavoritesHandler struct {
	Favorites *repository.FavoriteRepo
}

// NewFavoritesHandler constructs a FavoritesHandler and panics if the
// repository is nil.
func NewFavoritesHandler(f *repository.FavoriteRepo) *FavoritesHandler {
	if f == nil {
		panic("nil repository passed to NewFavoritesHandler")
	}
	return &FavoritesHandler{Favorites: f}
}

// favoritesResp carries the user's full favorites id set, returned by both
// mutations so clients can sync state from a single response.
type favoritesResp struct {
	Favorites []uint64 `json:"favorites"`
}

// AddFavorite handles POST /v1/users/favorites/:petId.  The pet must
// exist; adding a pet that is already favorited changes nothing and still
// returns 200 with the current set.
func (h *FavoritesHandler) AddFavorite(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	petID, err := strconv.ParseUint(c.Param("petId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pet id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.Favorites.PetExists(ctx, petID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !exists {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "pet not found"})
	}
	if err := h.Favorites.Add(ctx, uid, petID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not add favorite"})
	}
	ids, err := h.Favorites.ListIDs(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, favoritesResp{Favorites: ids})
}

// RemoveFavorite handles DELETE /v1/users/favorites/:petId.  Removing a
// pet that was never favorited is a no-op returning the unchanged set.
func (h *FavoritesHandler) RemoveFavorite(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	petID, err := strconv.ParseUint(c.Param("petId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pet id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Favorites.Remove(ctx, uid, petID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not remove favorite"})
	}
	ids, err := h.Favorites.ListIDs(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, favoritesResp{Favorites: ids})
}

// ListFavorites handles GET /v1/users/favorites and returns the favorited
// pets resolved to their current records.
func (h *FavoritesHandler) ListFavorites(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	pets, err := h.Favorites.ListPets(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, toPetResponses(pets))
}
