package service

import "github.com/pkg/errors"

var (
	// ErrValidation is returned when name or roll is blank. Nothing is changed.
	ErrValidation = errors.New("name and roll number are required")
	// ErrNotFound is returned by Get and Update for a position outside the list.
	ErrNotFound = errors.New("student not found")
	// ErrInvalidIndex is returned by Delete for a position outside the list.
	ErrInvalidIndex = errors.New("invalid index")
	// ErrInvalidCSV is returned when an import file cannot be parsed.
	ErrInvalidCSV = errors.New("invalid csv")
)
