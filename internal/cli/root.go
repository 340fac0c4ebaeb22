// Package cli provides the drn command-line interface.
package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/drnpkg/drn/sdk/go/drnapi"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// DefaultRegistryURL is the production registry endpoint.
const DefaultRegistryURL = "https://registry.drnpkg.dev"

// session carries the flag-driven settings shared by the networked commands.
type session struct {
	registryURL string
	verbose     bool
}

// client builds an API client for the given credential.
func (s *session) client(apiKey string) *drnapi.Client {
	log := zap.NewNop()
	if s.verbose {
		log, _ = zap.NewDevelopment()
	}
	return drnapi.NewClient(s.registryURL,
		drnapi.WithAPIKey(apiKey),
		drnapi.WithLogger(log),
	)
}

// NewRootCmd returns the root cobra command.
func NewRootCmd() *cobra.Command {
	s := &session{}

	root := &cobra.Command{
		Use:   "drn",
		Short: "Client for the drn package registry",
		Long: `drn publishes packages to the drn registry and talks to its chat endpoint.

Log in once with an API key, then publish the current directory or run
one-shot queries against the registry.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			// Unrecognized commands show the usage text alongside the error.
			_ = cmd.Usage()
			return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
		},
	}

	root.PersistentFlags().StringVar(&s.registryURL, "registry", DefaultRegistryURL, "registry base URL")
	root.PersistentFlags().BoolVar(&s.verbose, "verbose", false, "log API requests")

	root.AddCommand(
		newLoginCmd(),
		newWhoamiCmd(s),
		newAskCmd(s),
		newInitCmd(survey.Ask),
		newPublishCmd(s),
	)

	return root
}
