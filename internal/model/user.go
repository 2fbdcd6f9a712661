package model

import "time"

// User represents an application user record as stored in the
// `users` table. Each field corresponds to a column in the
// database. The json tags are omitted here because these structs
// are primarily used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags so the
// password hash is never serialized to clients.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name chosen at registration.
//  Email        – unique email address (stored lower-cased).
//  PasswordHash – bcrypt hashed password.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Name         string    // users.name
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// Favorite models a row in the `favorites` table, the set-valued
// relation from a user to the pets they have liked.  The composite
// primary key (user_id, pet_id) guarantees a user can never favorite
// the same pet twice.
//
// Fields:
//  UserID    – the user who favorited the pet.
//  PetID     – the favorited pet.
//  CreatedAt – when the favorite was added.
type Favorite struct {
    UserID    uint64    // favorites.user_id
    PetID     uint64    // favorites.pet_id
    CreatedAt time.Time // favorites.created_at
}
