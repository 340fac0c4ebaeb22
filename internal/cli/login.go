package cli

import (
	"fmt"
	"strings"

	"github.com/drnpkg/drn/internal/config"
	"github.com/spf13/cobra"
)

// keyPrefix is required on every registry API key.
const keyPrefix = "sk-"

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <api_key>",
		Short: "Store an API key for authenticated commands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !strings.HasPrefix(key, keyPrefix) {
				return fmt.Errorf("invalid API key: registry keys start with %q", keyPrefix)
			}

			// Merge rather than overwrite so unrelated config keys survive
			// a re-login.
			cfg := config.Load()
			cfg[config.KeyAPIKey] = key
			if err := config.Save(cfg); err != nil {
				return err
			}

			path, err := config.Path()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ Logged in. API key saved to %s\n", path)
			return nil
		},
	}
}
