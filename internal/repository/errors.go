// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrForbidden indicates that the current user is not
// the creator of a pet they are trying to mutate, while
// ErrEmailExists signals that a registration collides with an
// already-registered email address.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts to update or delete
// a pet that was added by a different user. Handlers should translate
// this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrEmailExists is returned when an insert into the users table hits
// the unique email constraint. Handlers should translate this into an
// HTTP 409 response.
var ErrEmailExists = errors.New("email already exists")

// ErrPetNotFound is returned when a pet cannot be found by id.
var ErrPetNotFound = errors.New("pet not found")

// ErrUserNotFound is returned when a user cannot be found by id or email.
var ErrUserNotFound = errors.New("user not found")
