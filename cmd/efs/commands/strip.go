package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/empirelib/efs/pathnode"
)

var (
	stripInclusive bool
	stripReversed  bool
)

func init() {
	stripCmd.Flags().BoolVar(&stripInclusive, "inclusive", false,
		"keep the matched node itself")
	stripCmd.Flags().BoolVar(&stripReversed, "reversed", false,
		"scan from the end of the path and keep the tail")
	rootCmd.AddCommand(stripCmd)
}

var stripCmd = &cobra.Command{
	Use:   "strip <path> <node>",
	Short: "Cut a path at the first occurrence of a node",
	Long: `Cut a path at the first occurrence of the named node.

By default the scan runs left to right and the part before the match is
kept. With --reversed the scan runs right to left and the tail after
the match is kept. --inclusive keeps the matched node itself. A node
that never occurs leaves the path unchanged.`,
	Example: `  efs strip a/b/c/d b              # a
  efs strip a/b/c/d b --inclusive  # a/b
  efs strip a/b/c/d b --reversed   # c/d`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result string
		var ok bool
		if stripReversed {
			result, ok = pathnode.StripUpToReversed(args[0], args[1], stripInclusive)
		} else {
			result, ok = pathnode.StripUpTo(args[0], args[1], stripInclusive)
		}

		fmt.Fprintln(cmd.OutOrStdout(), orAbsent(result, ok))
		return nil
	},
}
