package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-arrower/environment"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "profiles",
		Short:                 "List all build profiles",
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, p := range environment.Profiles() {
				conf, _ := environment.ForProfile(p)
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s production=%t apiServerUrl=%s\n", p, conf.Production, conf.APIServerURL)
			}
		},
	}
}
