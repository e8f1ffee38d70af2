package cli

import (
	"github.com/google/renameio/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"rollbook/internal/server"
	"rollbook/internal/service"
	"rollbook/internal/storage"
)

// NewExportCommand prints the stored list in the JSON file format. With
// --driver sqlite or postgres it converts a SQL mirror back to a JSON file.
func NewExportCommand(opts *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the student list as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, closeBackend, err := server.OpenBackend(opts.config())
			if err != nil {
				return err
			}
			defer closeBackend()
			if f, ok := backend.(*storage.JSONFile); ok {
				backend = f.ReadOnly()
			}

			students, err := service.NewStudentService(backend)
			if err != nil {
				return err
			}
			data, err := storage.Encode(students.List(""))
			if err != nil {
				return err
			}

			if out == "" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}
			return errors.Wrapf(renameio.WriteFile(out, data, 0644), "write %s", out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write to this file instead of stdout")
	return cmd
}
