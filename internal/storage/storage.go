// Package storage holds the durable representations of the student list.
// Every Save rewrites the whole list; there is no incremental append.
package storage

import (
	"github.com/pkg/errors"

	"rollbook/internal/model"
)

// ErrUnreadable marks a durable representation that exists but cannot be read or parsed.
var ErrUnreadable = errors.New("storage unreadable")

// Backend loads and saves the full, ordered student list.
type Backend interface {
	Load() ([]model.Student, error)
	Save(students []model.Student) error
}
