package model

import "time"

// Allowed values for the enumerated pet columns.  The database enforces
// these through ENUM column types; handlers validate request payloads
// against the same sets before any write reaches the repository.
const (
    PetTypeDog   = "dog"
    PetTypeCat   = "cat"
    PetTypeBird  = "bird"
    PetTypeOther = "other"

    PetSizeSmall  = "small"
    PetSizeMedium = "medium"
    PetSizeLarge  = "large"

    PetGenderMale   = "male"
    PetGenderFemale = "female"

    PetStatusAvailable = "available"
    PetStatusAdopted   = "adopted"
    PetStatusPending   = "pending"
)

// PetTypes, PetSizes, PetGenders and PetStatuses are lookup sets used by
// input validation.
var (
    PetTypes    = map[string]bool{PetTypeDog: true, PetTypeCat: true, PetTypeBird: true, PetTypeOther: true}
    PetSizes    = map[string]bool{PetSizeSmall: true, PetSizeMedium: true, PetSizeLarge: true}
    PetGenders  = map[string]bool{PetGenderMale: true, PetGenderFemale: true}
    PetStatuses = map[string]bool{PetStatusAvailable: true, PetStatusAdopted: true, PetStatusPending: true}
)

// Pet represents an adoption listing persisted in the `pets` table.
// Every pet is created by an authenticated user and AddedBy records that
// creator; only the creator may update or delete the listing.  Images are
// stored as a JSON array column to preserve their order.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – the pet's name.
//  Type         – species tag (dog, cat, bird, other).
//  Breed        – free-text breed.
//  Age          – age in years, non-negative.
//  Size         – small, medium or large.
//  Gender       – male or female.
//  Description  – free-text description shown to adopters.
//  Images       – ordered list of image references.
//  Location     – free-text location string.
//  Status       – lifecycle status (available, adopted, pending).
//  Vaccinated   – optional health flag (nil when unknown).
//  Neutered     – optional health flag (nil when unknown).
//  Microchipped – optional health flag (nil when unknown).
//  AddedBy      – users.id of the creator.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Pet struct {
    ID           uint64    // pets.id
    Name         string    // pets.name
    Type         string    // pets.type
    Breed        string    // pets.breed
    Age          uint32    // pets.age
    Size         string    // pets.size
    Gender       string    // pets.gender
    Description  string    // pets.description
    Images       []string  // pets.images (JSON array)
    Location     string    // pets.location
    Status       string    // pets.status
    Vaccinated   *bool     // pets.vaccinated (nullable)
    Neutered     *bool     // pets.neutered (nullable)
    Microchipped *bool     // pets.microchipped (nullable)
    AddedBy      uint64    // pets.added_by
    CreatedAt    time.Time // pets.created_at
    UpdatedAt    time.Time // pets.updated_at

    // AddedByName and AddedByEmail are populated by list/detail queries
    // that join the users table so clients can show who listed the pet.
    // They are not columns of the pets table itself.
    AddedByName  string
    AddedByEmail string
}
