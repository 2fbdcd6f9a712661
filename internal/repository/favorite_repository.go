// This file implements the favorites ledger: the set of pets a user has
// liked. The composite primary key (user_id, pet_id) plus INSERT IGNORE /
// plain DELETE make both mutations idempotent single-statement set
// operations, so concurrent favoriting never loses updates and duplicates
// cannot exist.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sivaharine/pet-Adoption/internal/model"
)

// FavoriteRepo encapsulates all database queries related to favorites.
type FavoriteRepo struct {
	db *sql.DB
}

// NewFavoriteRepo constructs a FavoriteRepo with the provided DB handle.
func NewFavoriteRepo(db *sql.DB) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// Add records petID in userID's favorites.  INSERT IGNORE makes the call
// idempotent: adding an already-favorited pet affects no rows and returns
// no error.  The foreign key on pet_id rejects pets that do not exist;
// that surfaces as a MySQL 1452 error which callers map to not-found.
func (r *FavoriteRepo) Add(ctx context.Context, userID, petID uint64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT IGNORE INTO favorites (user_id, pet_id) VALUES (?,?)",
		userID, petID)
	return err
}

// Remove deletes petID from userID's favorites.  Removing a pet that was
// never favorited is a no-op, not an error.
func (r *FavoriteRepo) Remove(ctx context.Context, userID, petID uint64) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id = ? AND pet_id = ?",
		userID, petID)
	return err
}

// ListIDs returns the ids of all pets userID has favorited, ordered by the
// time they were added.
func (r *FavoriteRepo) ListIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT pet_id FROM favorites WHERE user_id = ? ORDER BY created_at, pet_id",
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []uint64{}
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ListPets resolves userID's favorites to their current pet records at
// read time.  The inner join against pets means a favorite whose pet has
// since been deleted is silently omitted rather than returned as a
// tombstone.
func (r *FavoriteRepo) ListPets(ctx context.Context, userID uint64) ([]*model.Pet, error) {
	q := "SELECT " + petColumns + ` FROM favorites f
		JOIN pets p ON p.id = f.pet_id
		JOIN users u ON u.id = p.added_by
		WHERE f.user_id = ?
		ORDER BY f.created_at, f.pet_id`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.Pet{}
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// PetExists reports whether a pet row exists.  Used by the favorites
// handlers to return 404 before attempting an add.
func (r *FavoriteRepo) PetExists(ctx context.Context, petID uint64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM pets WHERE id = ? LIMIT 1", petID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
