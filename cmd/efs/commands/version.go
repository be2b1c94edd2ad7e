package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	buildinfo "github.com/empirelib/efs/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of efs.`,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "efs version %s\n", buildinfo.Version)
		fmt.Fprintf(out, "  commit: %s\n", buildinfo.Commit)
		fmt.Fprintf(out, "  built:  %s\n", buildinfo.Date)
		fmt.Fprintf(out, "  go:     %s\n", runtime.Version())
	},
}
