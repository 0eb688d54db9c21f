package cmd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	cmdutil "github.com/go-arrower/environment/cmd"
	"github.com/go-arrower/environment/envctl/cmd"
)

func TestShowCmd(t *testing.T) {
	t.Parallel()

	t.Run("development as json", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil), "show")
		assert.NoError(t, err)
		assert.Contains(t, output, `"production": false`)
		assert.Contains(t, output, `"apiServerUrl": "http://127.0.0.1:5000"`)
		assert.Contains(t, output, `"clientId": "GoloPe06qxx3kdmcS6JFkJm06zU05twm"`)
	})

	t.Run("production", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil), "show", "--profile", "production")
		assert.NoError(t, err)
		assert.Contains(t, output, `"production": true`)
	})

	t.Run("config file as ts", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil),
			"show", "-p", "production", "-c", "../../testdata/config/production.yaml", "-f", "ts")
		assert.NoError(t, err)
		assert.Contains(t, output, "export const environment = {")
		assert.Contains(t, output, "apiServerUrl: 'https://api.coffeeshop.example.com',")
	})

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil), "show", "--format", "yaml")
		assert.NoError(t, err)
		assert.Contains(t, output, "production: false")
	})

	t.Run("invalid profile", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil), "show", "--profile", "staging")
		assert.Error(t, err)
		assert.Contains(t, output, "use one of: development, production")
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil), "show", "--format", "toml")
		assert.Error(t, err)
		assert.Contains(t, output, "use one of: json, yaml, ts")
	})

	t.Run("file of another profile", func(t *testing.T) {
		t.Parallel()

		_, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil), "show", "-c", "../../testdata/config/production.yaml")
		assert.Error(t, err)
	})

	t.Run("no arguments allowed", func(t *testing.T) {
		t.Parallel()

		output, err := cmdutil.TestExecute(t, cmd.NewEnvctlCLI(nil), "show", "production")
		assert.Error(t, err)
		assert.Contains(t, output, "unknown command")
	})
}
