// Package repository contains the data access layer. Sentinel errors
// defined here let handlers map failures onto HTTP status codes without
// inspecting driver-specific error strings at the call site.
package repository

import "errors"

// ErrNotFound is returned when a requested row does not exist.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when registering or updating an account
// with an email already in use. Maps onto HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrConflict is returned when an operation cannot proceed because of
// conflicting state, such as assigning an admin who is already assigned
// to another hotel or lot. Maps onto HTTP 409.
var ErrConflict = errors.New("conflict")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own. Maps onto HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrBadTransition is returned when a booking status change is not in
// the allowed transition table. Maps onto HTTP 422.
var ErrBadTransition = errors.New("invalid status transition")
