package handler

import (
	"database/sql"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/sivaharine/pet-Adoption/internal/repository"
)

func newFavEnv(t *testing.T) (*FavoritesHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewFavoritesHandler(repository.NewFavoriteRepo(db)), mock
}

func expectFavAdd(mock sqlmock.Sqlmock, petID uint64, inserted int64) {
	mock.ExpectQuery("SELECT 1 FROM pets").
		WithArgs(petID).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("INSERT IGNORE INTO favorites").
		WillReturnResult(sqlmock.NewResult(0, inserted))
	mock.ExpectQuery("SELECT pet_id FROM favorites").
		WillReturnRows(sqlmock.NewRows([]string{"pet_id"}).AddRow(petID))
}

func TestAddFavorite_Idempotent(t *testing.T) {
	h, mock := newFavEnv(t)
	// First add inserts a row, the repeat hits the composite key and
	// affects nothing. Both return the same single-element set.
	expectFavAdd(mock, 7, 1)
	expectFavAdd(mock, 7, 0)

	for i := 0; i < 2; i++ {
		c, rec := petCtx(http.MethodPost, "/v1/users/favorites/7", "", 1, "petId", "7")
		require.NoError(t, h.AddFavorite(c))
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"favorites":[7]}`, rec.Body.String())
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavorite_PetNotFound(t *testing.T) {
	h, mock := newFavEnv(t)
	mock.ExpectQuery("SELECT 1 FROM pets").
		WithArgs(uint64(99)).
		WillReturnError(sql.ErrNoRows)

	c, rec := petCtx(http.MethodPost, "/v1/users/favorites/99", "", 1, "petId", "99")
	require.NoError(t, h.AddFavorite(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddFavorite_BadID(t *testing.T) {
	h, _ := newFavEnv(t)
	c, rec := petCtx(http.MethodPost, "/v1/users/favorites/abc", "", 1, "petId", "abc")
	require.NoError(t, h.AddFavorite(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRemoveFavorite_NonMemberNoop(t *testing.T) {
	h, mock := newFavEnv(t)
	mock.ExpectExec("DELETE FROM favorites").
		WithArgs(uint64(1), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT pet_id FROM favorites").
		WillReturnRows(sqlmock.NewRows([]string{"pet_id"}))

	c, rec := petCtx(http.MethodDelete, "/v1/users/favorites/7", "", 1, "petId", "7")
	require.NoError(t, h.RemoveFavorite(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"favorites":[]}`, rec.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFavorites_ResolvesPets(t *testing.T) {
	h, mock := newFavEnv(t)
	mock.ExpectQuery("FROM favorites f").
		WithArgs(uint64(1)).
		WillReturnRows(petMockRow(7, 2))

	c, rec := petCtx(http.MethodGet, "/v1/users/favorites", "", 1)
	require.NoError(t, h.ListFavorites(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var pets []struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}
	decodeJSON(t, rec, &pets)
	require.Len(t, pets, 1)
	require.Equal(t, uint64(7), pets[0].ID)
	require.Equal(t, "Max", pets[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListFavorites_EmptyIsArray(t *testing.T) {
	h, mock := newFavEnv(t)
	cols := []string{
		"id", "name", "type", "breed", "age", "size", "gender",
		"description", "images", "location", "status",
		"vaccinated", "neutered", "microchipped", "added_by",
		"created_at", "updated_at", "u_name", "u_email",
	}
	mock.ExpectQuery("FROM favorites f").
		WillReturnRows(sqlmock.NewRows(cols))

	c, rec := petCtx(http.MethodGet, "/v1/users/favorites", "", 1)
	require.NoError(t, h.ListFavorites(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]\n", rec.Body.String())
}

func TestFavorites_Unauthenticated(t *testing.T) {
	h, _ := newFavEnv(t)
	c, rec := jsonCtx(http.MethodGet, "/v1/users/favorites", "")
	require.NoError(t, h.ListFavorites(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
