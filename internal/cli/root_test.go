package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"rollbook/internal/cli"
	"rollbook/internal/model"
	"rollbook/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	cmd := cli.NewRootCommand()

	for _, name := range []string{"addr", "data", "driver"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	names := []string{}
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "export")
}

func TestExportToStdout(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	path := filepath.Join(t.TempDir(), "students.json")
	students := []model.Student{
		{Name: "Bo", Roll: "R2", Course: "EE"},
		{Name: "Ann", Roll: "R1", Course: "CS"},
	}
	require.NoError(t, storage.NewJSONFile(path).Save(students))

	var out bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"export", "--data", path})
	require.NoError(t, cmd.Execute())

	want, err := storage.Encode(students)
	require.NoError(t, err)
	assert.Equal(t, string(want)+"\n", out.String())
}

func TestExportMissingFileCreatesNothing(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	path := filepath.Join(t.TempDir(), "students.json")

	var out bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"export", "--data", path})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "[]\n", out.String())
	assert.NoFileExists(t, path)
}

func TestExportSQLiteToFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SQLITE_PATH", filepath.Join(dir, "students.db"))
	out := filepath.Join(dir, "export.json")

	cmd := cli.NewRootCommand()
	cmd.SetArgs([]string{"export", "--driver", "sqlite", "--out", out})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestUnknownDriver(t *testing.T) {
	cmd := cli.NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"export", "--driver", "mongo"})
	assert.Error(t, cmd.Execute())
}
