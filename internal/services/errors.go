package services

import "strings"

// ValidationError reports one or more constraint violations on a candidate
// product, including name-uniqueness conflicts. Violations holds every
// failed constraint, not just the first.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return "product validation failed: " + strings.Join(e.Violations, "; ")
}

// NotFoundError reports that a referenced product (by ID or name) does not
// exist, or that the catalog is empty.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}
