package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a name is not in the catalog.
	ErrNotFound = errors.New("not found in catalog")

	// ErrUnsupportedConfiguration is returned for a section whose bolt
	// layout cannot be derived, e.g. a CT breadth missing from the gauge table.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")
)

// NotFoundError names the entry that could not be found.
type NotFoundError struct {
	Kind string // "section", "material", "bolt diameter", "bolt material"
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in catalog", e.Kind, e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError represents an invalid catalog entry
type ValidationError struct {
	Entry string
	msg   string
	err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Entry, e.msg)
}

func (e *ValidationError) Unwrap() error {
	return e.err
}
