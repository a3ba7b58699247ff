package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a catalog entity fails validation.
	// This is usually wrapped with the offending field or id.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateCategoryID is returned when two categories share an id.
	ErrDuplicateCategoryID = errors.New("duplicate category id")

	// ErrDuplicateEndpointID is returned when two endpoints share an id,
	// regardless of which categories they belong to.
	ErrDuplicateEndpointID = errors.New("duplicate endpoint id")

	// ErrEmptyCatalog is returned when a catalog holds no categories.
	ErrEmptyCatalog = errors.New("catalog has no categories")
)
