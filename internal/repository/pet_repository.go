// This file defines the PetRepo with CRUD and lookup operations for pet
// adoption listings. Ownership of a listing is enforced in the SQL itself:
// mutating statements carry the creator id in their WHERE clause so the
// check and the write happen as one atomic statement. Two requests racing
// to mutate the same pet therefore cannot both succeed when one of them
// is not the creator.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"

	"github.com/sivaharine/pet-Adoption/internal/model"
)

// PetRepo encapsulates all database queries related to pets.  It depends
// on a sql.DB connection which should be configured elsewhere.
type PetRepo struct {
	db *sql.DB
}

// NewPetRepo constructs a PetRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.
func NewPetRepo(db *sql.DB) *PetRepo {
	return &PetRepo{db: db}
}

// PetFilter narrows List results.  Empty fields are ignored.  Breed is a
// case-insensitive substring match; the other fields match exactly.
type PetFilter struct {
	Type   string
	Breed  string
	Size   string
	Gender string
	Status string
}

const petColumns = `p.id, p.name, p.type, p.breed, p.age, p.size, p.gender,
	p.description, p.images, p.location, p.status,
	p.vaccinated, p.neutered, p.microchipped, p.added_by,
	p.created_at, p.updated_at, u.name, u.email`

// scanPet reads one joined pets+users row into a model.Pet.
func scanPet(row interface{ Scan(...any) error }) (*model.Pet, error) {
	var (
		p      model.Pet
		images []byte
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Type, &p.Breed, &p.Age, &p.Size, &p.Gender,
		&p.Description, &images, &p.Location, &p.Status,
		&p.Vaccinated, &p.Neutered, &p.Microchipped, &p.AddedBy,
		&p.CreatedAt, &p.UpdatedAt, &p.AddedByName, &p.AddedByEmail); err != nil {
		return nil, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

// Create inserts a new pet listing.  On success the pet's ID, timestamps
// and creator name/email are populated from a follow-up SELECT so callers
// receive a fully populated record.  AddedBy must already be set to the
// authenticated creator.
func (r *PetRepo) Create(ctx context.Context, p *model.Pet) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	const qInsert = `INSERT INTO pets
		(name, type, breed, age, size, gender, description, images, location, status,
		 vaccinated, neutered, microchipped, added_by)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		p.Name, p.Type, p.Breed, p.Age, p.Size, p.Gender,
		p.Description, images, p.Location, p.Status,
		p.Vaccinated, p.Neutered, p.Microchipped, p.AddedBy)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)

	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *got
	return nil
}

// GetByID fetches a pet by its ID together with the creator's name and
// email.  It returns ErrPetNotFound if no row is found.
func (r *PetRepo) GetByID(ctx context.Context, id uint64) (*model.Pet, error) {
	q := "SELECT " + petColumns + " FROM pets p JOIN users u ON u.id = p.added_by WHERE p.id = ?"
	p, err := scanPet(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return p, nil
}

// List returns pets matching the filter ordered by id.  The WHERE clause
// is assembled only from non-empty filter fields; with an empty filter all
// pets are returned.
func (r *PetRepo) List(ctx context.Context, f PetFilter) ([]*model.Pet, error) {
	q := "SELECT " + petColumns + " FROM pets p JOIN users u ON u.id = p.added_by"
	var (
		conds []string
		args  []any
	)
	if f.Type != "" {
		conds = append(conds, "p.type = ?")
		args = append(args, f.Type)
	}
	if f.Breed != "" {
		conds = append(conds, "LOWER(p.breed) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Breed)+"%")
	}
	if f.Size != "" {
		conds = append(conds, "p.size = ?")
		args = append(args, f.Size)
	}
	if f.Gender != "" {
		conds = append(conds, "p.gender = ?")
		args = append(args, f.Gender)
	}
	if f.Status != "" {
		conds = append(conds, "p.status = ?")
		args = append(args, f.Status)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY p.id"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Pet
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

// Update replaces the mutable fields of a pet, but only when the pet was
// added by ownerID.  The ownership predicate is part of the UPDATE itself,
// so the statement is the single point where ownership is decided.  When
// no row is affected, a follow-up SELECT distinguishes a missing pet
// (ErrPetNotFound) from one added by someone else (ErrForbidden); an
// affected count of zero with matching owner means the payload equaled the
// stored row, which is treated as success.
func (r *PetRepo) Update(ctx context.Context, p *model.Pet, ownerID uint64) error {
	images, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}
	const q = `UPDATE pets
		SET name=?, type=?, breed=?, age=?, size=?, gender=?, description=?,
		    images=?, location=?, status=?, vaccinated=?, neutered=?, microchipped=?,
		    updated_at=CURRENT_TIMESTAMP
		WHERE id = ? AND added_by = ?`
	res, err := r.db.ExecContext(ctx, q,
		p.Name, p.Type, p.Breed, p.Age, p.Size, p.Gender, p.Description,
		images, p.Location, p.Status, p.Vaccinated, p.Neutered, p.Microchipped,
		p.ID, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return r.classifyMiss(ctx, p.ID, ownerID)
	}
	got, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *got
	return nil
}

// Delete removes a pet, but only when it was added by ownerID.  Like
// Update, the ownership check rides on the DELETE's WHERE clause.  A
// zero affected count is resolved to ErrPetNotFound or ErrForbidden.
func (r *PetRepo) Delete(ctx context.Context, id, ownerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM pets WHERE id = ? AND added_by = ?", id, ownerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if err := r.classifyMiss(ctx, id, ownerID); err != nil {
			return err
		}
		// Row matched the predicate after all; the delete raced with
		// another statement, report not found.
		return ErrPetNotFound
	}
	return nil
}

// classifyMiss explains why a conditional write touched no rows: the pet
// is gone (ErrPetNotFound), belongs to another user (ErrForbidden), or
// exists with the expected owner (nil).
func (r *PetRepo) classifyMiss(ctx context.Context, id, ownerID uint64) error {
	var addedBy uint64
	err := r.db.QueryRowContext(ctx,
		"SELECT added_by FROM pets WHERE id = ?", id).Scan(&addedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPetNotFound
	}
	if err != nil {
		return err
	}
	if addedBy != ownerID {
		return ErrForbidden
	}
	return nil
}
