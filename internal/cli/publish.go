package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drnpkg/drn/internal/archive"
	"github.com/drnpkg/drn/internal/config"
	"github.com/drnpkg/drn/internal/manifest"
	"github.com/drnpkg/drn/sdk/go/drnapi"
	"github.com/spf13/cobra"
)

func newPublishCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Pack the current directory and upload it to the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := config.APIKey()
			if key == "" {
				return errors.New(msgNotLoggedIn)
			}

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			m, err := manifest.Load(filepath.Join(cwd, manifest.FileName))
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("no %s found. Run 'drn init' first", manifest.FileName)
				}
				return err
			}
			if err := m.Validate(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Packing %s@%s...\n", m.Name, m.Version)
			data, err := archive.Build(cwd)
			if err != nil {
				return err
			}

			result, err := s.client(key).Publish(cmd.Context(), &drnapi.PublishRequest{
				Name:        m.Name,
				Version:     m.Version,
				Description: m.Description,
				ArchiveName: m.ArchiveName(),
				Archive:     data,
			})
			if err != nil {
				return apiErr(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}
}
