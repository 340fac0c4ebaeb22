package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/Masterminds/semver/v3"
	"github.com/drnpkg/drn/internal/manifest"
	"github.com/spf13/cobra"
)

// askFn runs an interactive prompt; survey.Ask in production, stubbed in
// tests where no terminal exists. The prompt is opened only on the init path.
type askFn func(qs []*survey.Question, response any, opts ...survey.AskOpt) error

func newInitCmd(ask askFn) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create a drn.json manifest interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			def := manifest.Default(cwd)

			questions := []*survey.Question{
				{
					Name:   "name",
					Prompt: &survey.Input{Message: "package name:", Default: def.Name},
				},
				{
					Name:     "version",
					Prompt:   &survey.Input{Message: "version:", Default: def.Version},
					Validate: semverAnswer,
				},
				{
					Name:   "description",
					Prompt: &survey.Input{Message: "description:"},
				},
				{
					Name:   "main",
					Prompt: &survey.Input{Message: "entry point:", Default: def.Main},
				},
			}

			var m manifest.Manifest
			if err := ask(questions, &m); err != nil {
				return fmt.Errorf("prompt: %w", err)
			}

			path := filepath.Join(cwd, manifest.FileName)
			if err := m.Save(path); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✅ Created %s\n", path)
			fmt.Fprintln(cmd.OutOrStdout(), "   Run: drn publish")
			return nil
		},
	}
}

// semverAnswer validates a version prompt answer.
func semverAnswer(ans any) error {
	s, _ := ans.(string)
	if _, err := semver.StrictNewVersion(s); err != nil {
		return fmt.Errorf("%q is not a semver version (like 1.0.0)", s)
	}
	return nil
}
