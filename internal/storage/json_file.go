package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"rollbook/internal/model"
)

// ErrReadOnly is returned by Save on a JSONFile opened with ReadOnly.
var ErrReadOnly = errors.New("storage is read-only")

// JSONFile keeps the list as a pretty-printed JSON array in a single file.
type JSONFile struct {
	path     string
	readOnly bool
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (f *JSONFile) Path() string {
	return f.path
}

// ReadOnly returns a view of the same file that never writes: a missing
// file loads as an empty list and Save fails with ErrReadOnly.
func (f *JSONFile) ReadOnly() *JSONFile {
	return &JSONFile{path: f.path, readOnly: true}
}

// Load returns the stored list. A missing file is created empty. A file that
// cannot be read or parsed yields an empty list and an error wrapping ErrUnreadable.
func (f *JSONFile) Load() ([]model.Student, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		if f.readOnly {
			return []model.Student{}, nil
		}
		if err := f.Save(nil); err != nil {
			return nil, err
		}
		return []model.Student{}, nil
	}
	if err != nil {
		return []model.Student{}, errors.Wrapf(ErrUnreadable, "read %s: %v", f.path, err)
	}

	var students []model.Student
	if err := json.Unmarshal(data, &students); err != nil {
		return []model.Student{}, errors.Wrapf(ErrUnreadable, "parse %s: %v", f.path, err)
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

// Save replaces the file content with the given list.
func (f *JSONFile) Save(students []model.Student) error {
	if f.readOnly {
		return errors.Wrap(ErrReadOnly, f.path)
	}
	data, err := Encode(students)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "create directory %s", dir)
	}
	if err := renameio.WriteFile(f.path, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", f.path)
	}
	return nil
}

// Encode renders the list in the durable format: a JSON array with 2-space
// indentation. A nil list encodes as [].
func Encode(students []model.Student) ([]byte, error) {
	if students == nil {
		students = []model.Student{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(students); err != nil {
		return nil, errors.Wrap(err, "encode students")
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
