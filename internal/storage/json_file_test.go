package storage_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"rollbook/internal/model"
	"rollbook/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFileLoadCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	f := storage.NewJSONFile(path)

	students, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, students)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONFileLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Truncated", `[{"name": "Ann", "roll"`},
		{"Not an array", `{"name": "Ann"}`},
		{"Empty file", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "students.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			students, err := storage.NewJSONFile(path).Load()
			assert.True(t, errors.Is(err, storage.ErrUnreadable), "got %v", err)
			assert.NotNil(t, students)
			assert.Empty(t, students)
		})
	}
}

func TestJSONFileSaveFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "students.json")
	f := storage.NewJSONFile(path)

	err := f.Save([]model.Student{
		{Name: "Bo <3", Roll: "R2", Course: "EE"},
		{Name: "Ann", Roll: "R1", Course: ""},
	})
	require.NoError(t, err)

	want := `[
  {
    "name": "Bo <3",
    "roll": "R2",
    "course": "EE"
  },
  {
    "name": "Ann",
    "roll": "R1",
    "course": ""
  }
]`
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, string(data))
}

func TestJSONFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	in := []model.Student{
		{Name: "Zoë", Roll: "R9", Course: "Maths"},
		{Name: "Ann", Roll: "R1", Course: "CS"},
	}

	require.NoError(t, storage.NewJSONFile(path).Save(in))

	out, err := storage.NewJSONFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestJSONFileReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	f := storage.NewJSONFile(path).ReadOnly()

	students, err := f.Load()
	require.NoError(t, err)
	assert.Empty(t, students)
	assert.NoFileExists(t, path)

	err = f.Save([]model.Student{{Name: "Ann", Roll: "R1"}})
	assert.True(t, errors.Is(err, storage.ErrReadOnly), "got %v", err)
	assert.NoFileExists(t, path)
}

func TestJSONFileLoadMissingCourse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Ann", "roll": "R1"}]`), 0644))

	students, err := storage.NewJSONFile(path).Load()
	require.NoError(t, err)
	assert.Equal(t, []model.Student{{Name: "Ann", Roll: "R1"}}, students)
}
