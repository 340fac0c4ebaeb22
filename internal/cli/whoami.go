package cli

import (
	"errors"
	"fmt"

	"github.com/drnpkg/drn/internal/config"
	"github.com/spf13/cobra"
)

func newWhoamiCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account the stored API key belongs to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key := config.APIKey()
			if key == "" {
				return errors.New(msgNotLoggedIn)
			}

			profile, err := s.client(key).Whoami(cmd.Context())
			if err != nil {
				return apiErr(err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Username: %s\n", profile.Username)
			fmt.Fprintf(cmd.OutOrStdout(), "Email:    %s\n", profile.Email)
			return nil
		},
	}
}
