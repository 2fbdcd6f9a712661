package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func newFavoriteRepo(t *testing.T) (*FavoriteRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewFavoriteRepo(db), mock
}

func TestFavoriteRepo_Add_Idempotent(t *testing.T) {
	r, mock := newFavoriteRepo(t)
	// First add inserts a row; the second hits the composite key and
	// INSERT IGNORE affects nothing. Neither call errors.
	mock.ExpectExec("INSERT IGNORE INTO favorites").
		WithArgs(uint64(1), uint64(7)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT IGNORE INTO favorites").
		WithArgs(uint64(1), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.Add(context.Background(), 1, 7))
	require.NoError(t, r.Add(context.Background(), 1, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepo_Remove_NonMemberIsNoop(t *testing.T) {
	r, mock := newFavoriteRepo(t)
	mock.ExpectExec("DELETE FROM favorites").
		WithArgs(uint64(1), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, r.Remove(context.Background(), 1, 7))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFavoriteRepo_ListIDs(t *testing.T) {
	r, mock := newFavoriteRepo(t)
	mock.ExpectQuery("SELECT pet_id FROM favorites").
		WithArgs(uint64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"pet_id"}).AddRow(7).AddRow(9))

	ids, err := r.ListIDs(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []uint64{7, 9}, ids)
}

func TestFavoriteRepo_ListIDs_Empty(t *testing.T) {
	r, mock := newFavoriteRepo(t)
	mock.ExpectQuery("SELECT pet_id FROM favorites").
		WillReturnRows(sqlmock.NewRows([]string{"pet_id"}))

	ids, err := r.ListIDs(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, ids)
	require.Empty(t, ids)
}

func TestFavoriteRepo_ListPets_OmitsDeleted(t *testing.T) {
	r, mock := newFavoriteRepo(t)
	// The user favorited two pets but one was deleted since; the join
	// only yields the surviving row.
	mock.ExpectQuery("FROM favorites f").
		WithArgs(uint64(1)).
		WillReturnRows(petRow(7, 2))

	pets, err := r.ListPets(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, pets, 1)
	require.Equal(t, uint64(7), pets[0].ID)
}

func TestFavoriteRepo_PetExists(t *testing.T) {
	r, mock := newFavoriteRepo(t)
	mock.ExpectQuery("SELECT 1 FROM pets").
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM pets").
		WithArgs(uint64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	ok, err := r.PetExists(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.PetExists(context.Background(), 8)
	require.NoError(t, err)
	require.False(t, ok)
}
