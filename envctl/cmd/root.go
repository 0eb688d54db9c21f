// Package cmd contains the commands of the envctl cli.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-arrower/environment"
	"github.com/go-arrower/environment/alog"
	cmdutil "github.com/go-arrower/environment/cmd"
)

// flags shared by all commands loading an environment.
type flags struct {
	profile    string
	configFile string
	verbose    bool
}

func newRootCmd(logger *slog.Logger, f *flags) *cobra.Command {
	root := &cobra.Command{
		Use:   "envctl",
		Short: "envctl selects the environment of a frontend build.",
		Long: `Select the development or production environment of the coffee shop frontend,
apply the overrides of a deployment and render the environment file the build bundles.

Values are overridden by a config file (--config) and by environment variables
prefixed with ` + environment.EnvPrefix + `_, e.g. ` + environment.EnvKey("auth0.client_id") + `.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if f.verbose {
				alog.SetLevel(logger, alog.LevelDebug)
			}
		},
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&f.profile, "profile", "p", string(environment.DevelopmentProfile),
		"build profile, one of: development, production")
	root.PersistentFlags().StringVarP(&f.configFile, "config", "c", "", "config file overriding the profile's values")
	root.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "log what is going on")

	return root
}

// NewEnvctlCLI initialises the complete envctl cli with its commands and returns the root command.
func NewEnvctlCLI(logger *slog.Logger) *cobra.Command {
	if logger == nil {
		logger = alog.NewNoop()
	}

	f := &flags{}

	rootCmd := newRootCmd(logger, f)
	rootCmd.AddCommand(cmdutil.Version("envctl"))
	rootCmd.AddCommand(newProfilesCmd())
	rootCmd.AddCommand(newShowCmd(logger, f))
	rootCmd.AddCommand(newValidateCmd(logger, f))
	rootCmd.AddCommand(newWriteCmd(logger, f))

	return rootCmd
}

// Execute runs the envctl cli.
func Execute() {
	logger := alog.New(alog.WithHandler(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       alog.LevelDebug,
		ReplaceAttr: alog.MapLogLevelsToName,
	})))

	if err := NewEnvctlCLI(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

// load returns the environment selected by f.
func load(ctx context.Context, logger *slog.Logger, f *flags) (environment.Config, error) {
	profile, err := environment.ParseProfile(f.profile)
	if err != nil {
		return environment.Config{}, fmt.Errorf("invalid flag --profile: %w", err)
	}

	ctx = alog.AddAttr(ctx, slog.String("profile", string(profile)))

	return environment.NewLoader(logger).Load(ctx, profile, f.configFile) //nolint:wrapcheck // errors of the loader are descriptive
}
