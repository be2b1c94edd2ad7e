package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/empirelib/efs/internal/errors"
	"github.com/empirelib/efs/pathnode"
)

func init() {
	rootCmd.AddCommand(siblingCmd)
}

var siblingCmd = &cobra.Command{
	Use:   "sibling <path> <name>",
	Short: "Find a named entry next to a path or one of its ancestors",
	Long: `Walk upward from a path, looking for an entry with the given name at
each level. The first level where the entry exists wins. This command
reads the filesystem.`,
	Example: `  efs sibling internal/scan/walk.go go.mod
  efs sibling src/app/main .git`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		found, ok := pathnode.FindParentSibling(args[0], args[1])
		if !ok {
			return errors.NewUserError(
				errors.Newf("no %q beside %s or its ancestors", args[1], args[0]),
				"the search stops at the first node of the path")
		}
		fmt.Fprintln(cmd.OutOrStdout(), found)
		return nil
	},
}
