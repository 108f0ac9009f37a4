// internal/core/domain/errors.go
package domain

import "errors"

// Validation errors raised when constructing or mutating a Wine.
var (
	ErrInvalidYear   = errors.New("year must not be after the current year")
	ErrInvalidVolume = errors.New("volume does not match any bottle size")
	ErrInvalidColor  = errors.New("color must be one of the known wine colors")
	ErrEmptyName     = errors.New("name is required")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Invariant violations reported by Assortment.Add and Assortment.Remove.
// They carry the rejection reason so callers can decide how much of it to
// surface; boundary layers are free to reduce them to a boolean.
var (
	ErrAlreadyInAssortment = errors.New("wine is already in an assortment")
	ErrYearMismatch        = errors.New("wine year does not match the assortment year")
	ErrNotInAssortment     = errors.New("wine is not in the assortment")
)
