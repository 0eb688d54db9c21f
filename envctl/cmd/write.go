package cmd

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/go-arrower/environment"
	cmdutil "github.com/go-arrower/environment/cmd"
)

func newWriteCmd(logger *slog.Logger, f *flags) *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write the environment file bundled by the frontend build",
		Long: `Validate the environment of a profile and write it to a file.
An invalid environment is never written.`,
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

			if err := conf.Validate(); err != nil {
				return err //nolint:wrapcheck // validation errors list all violations
			}

			buf := &bytes.Buffer{}
			if err := environment.Render(buf, conf, ff); err != nil {
				return err //nolint:wrapcheck // errors of the renderer are descriptive
			}

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil { //nolint:gomnd,gosec // default dir permissions
				return fmt.Errorf("could not create directory of %s: %w", out, err)
			}

			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil { //nolint:gomnd,gosec // the file is bundled, not secret
				return fmt.Errorf("could not write environment file: %w", err)
			}

			version, _ := cmdutil.BuildVersion()
			logger.LogAttrs(cmd.Context(), slog.LevelInfo, "wrote environment file",
				slog.String("file", out),
				slog.String("profile", string(conf.Profile())),
				slog.String("format", string(ff)),
				slog.String("envctl", version),
			)

			fmt.Fprintln(cmd.OutOrStdout(), out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(environment.TSFormat), "file format, one of: json, yaml, ts")
	cmd.Flags().StringVarP(&out, "out", "o", "", "path of the file to write, e.g. src/environments/environment.ts")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
