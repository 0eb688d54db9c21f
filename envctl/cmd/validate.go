package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-arrower/environment"
)

func newValidateCmd(logger *slog.Logger, f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the environment of a profile can be bundled",
		Long: `Check that all values of the environment are present
and that apiServerUrl and auth0.callbackURL are absolute URLs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := load(cmd.Context(), logger, f)
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true

			green := color.New(color.FgGreen, color.Bold).FprintfFunc()
			red := color.New(color.FgRed, color.Bold).FprintfFunc()

			violations := conf.Violations()
			if len(violations) == 0 {
				green(cmd.OutOrStdout(), "ok: %s environment is valid\n", conf.Profile())
				return nil
			}

			for _, v := range violations {
				red(cmd.OutOrStdout(), "invalid: %s\n", v)
			}

			return fmt.Errorf("%w: %d value(s) of the %s environment", environment.ErrInvalidConfig, len(violations), conf.Profile())
		},
	}
}
