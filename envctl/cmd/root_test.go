package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/environment/alog"
	cmdutil "github.com/go-arrower/environment/cmd"
	"github.com/go-arrower/environment/envctl/cmd"
)

func TestRootCmd(t *testing.T) {
	t.Parallel()

	t.Run("no command: show help & list of commands", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil))
		assert.NoError(t, err)
		assert.Contains(t, output, "Available Commands:")
		assert.Contains(t, output, "COFFEESHOP_AUTH0_CLIENT_ID", "should document the environment overrides")
	})

	t.Run("unknown command: show help & list of commands", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil), "non-ex-command")
		assert.Error(t, err)
		assert.Contains(t, output, "Available Commands:")
	})

	t.Run("help message does not show use of flags", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil))
		assert.NoError(t, err)
		assert.NotContains(t, output, "[flags]")
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil), "version")
		assert.NoError(t, err)
		assert.Contains(t, output, "envctl version: ")
	})

	t.Run("verbose", func(t *testing.T) {
		t.Parallel()

		logger := alog.Test(t)
		alog.SetLevel(logger.Logger, 0)

		_, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(logger.Logger), "show")
		assert.NoError(t, err)
		logger.Empty()

		_, err = cmdutil.TestExecute(t, cmd.NewEnvctlCLI(logger.Logger), "show", "--verbose")
		assert.NoError(t, err)
		logger.Contains("loaded environment")
		logger.Contains("profile=development")
	})
}

func TestProfilesCmd(t *testing.T) {
	t.Parallel()

	output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil), "profiles")
	assert.NoError(t, err)
	assert.Contains(t, output, "development  production=false apiServerUrl=http://127.0.0.1:5000")
	assert.Contains(t, output, "production   production=true apiServerUrl=http://127.0.0.1:5000")
}
