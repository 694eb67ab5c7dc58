package cmd

import (
	"fmt"

	"appliance-portcfg/internal/pkg/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and git info",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetGitInfo()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\nTag: %s\nBranch: %s\nCommit: %s\nDirty: %v\n",
			version.AppName, version.AppVersion, info.Tag, info.Branch, info.Commit, info.Dirty)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
