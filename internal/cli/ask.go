package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/drnpkg/drn/internal/config"
	"github.com/spf13/cobra"
)

func newAskCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "ask \"<message>\"",
		Aliases: []string{"chat"},
		Short:   "Send one message to the registry chat endpoint",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := config.APIKey()
			if key == "" {
				return errors.New(msgNotLoggedIn)
			}

			message := args[0]
			if strings.TrimSpace(message) == "" {
				return errors.New("message must not be empty: drn ask \"<message>\"")
			}

			reply, err := s.client(key).Chat(cmd.Context(), message)
			if err != nil {
				return apiErr(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), reply.Reply)
			return nil
		},
	}
}
