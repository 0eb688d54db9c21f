package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-arrower/environment"
)

func newShowCmd(logger *slog.Logger, f *flags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the environment of a profile",
		Long: `Print the environment of a profile, with all overrides applied.
The environment is printed as it is, without validating it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ff, err := environment.ParseFormat(format)
			if err != nil {
				return fmt.Errorf("invalid flag --format: %w", err)
			}

			conf, err := load(cmd.Context(), logger, f)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			return environment.Render(cmd.OutOrStdout(), conf, ff) //nolint:wrapcheck // errors of the renderer are descriptive
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(environment.JSONFormat), "output format, one of: json, yaml, ts")

	return cmd
}
