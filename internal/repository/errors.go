// Package repository defines error types that are reused by the booking
// repository.  These sentinel values allow handlers to distinguish between
// different failure scenarios: a fetch that matched no row (which covers
// both a missing booking and an ownership mismatch, since the ownership
// filter is part of the query) and an update that affected no rows.
package repository

import "errors"

// ErrNotFound is returned when a fetch matches no row, either because the
// booking does not exist or because the ownership filter excluded it.
// Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("booking not found")

// ErrNoRowsAffected is returned when an update targeted zero rows, either
// because the id is missing or because the ownership filter excluded the
// row.  Handlers translate this into an HTTP 400 response, distinct from a
// store failure.
var ErrNoRowsAffected = errors.New("no rows affected")
