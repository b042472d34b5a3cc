package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is matched by every per-kind not-found error.
	ErrNotFound = errors.New("not found")

	ErrMealNotFound        = fmt.Errorf("meal %w", ErrNotFound)
	ErrProductNotFound     = fmt.Errorf("product %w", ErrNotFound)
	ErrMealProductNotFound = fmt.Errorf("meal product %w", ErrNotFound)

	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrLookupFailed = errors.New("lookup failed")
)
