package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/empirelib/efs/internal/errors"
	"github.com/empirelib/efs/pathnode"
)

var nodesSet string

func init() {
	nodesCmd.Flags().StringVar(&nodesSet, "set", "",
		"replace a node, as INDEX=NAME (negative index counts from the end)")
	rootCmd.AddCommand(nodesCmd)
}

var nodesCmd = &cobra.Command{
	Use:   "nodes <path>",
	Short: "List a path's nodes, or rewrite one of them",
	Long: `List the nodes of a path with their indexes.

With --set INDEX=NAME the node at INDEX is replaced and the rebuilt
path is printed instead. Negative indexes count from the end, so -1 is
the last node.`,
	Example: `  efs nodes /usr/local/bin
  efs nodes /usr/local/bin --set 1=opt
  efs nodes a/b/c.txt --set -1=d.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if nodesSet != "" {
			index, name, err := parseSetSpec(nodesSet)
			if err != nil {
				return err
			}
			if index < 0 {
				index += len(pathnode.Split(args[0]))
			}
			rebuilt, err := pathnode.SetNodeAt(args[0], index, name)
			if err != nil {
				if errors.Is(err, pathnode.ErrIndexOutOfRange) {
					return errors.NewUserError(err, "run 'efs nodes' without --set to see valid indexes")
				}
				return err
			}
			fmt.Fprintln(out, rebuilt)
			return nil
		}

		for i, node := range pathnode.Split(args[0]) {
			fmt.Fprintf(out, "%d: %s\n", i, node)
		}
		return nil
	},
}

// parseSetSpec parses an INDEX=NAME argument.
func parseSetSpec(spec string) (int, string, error) {
	rawIndex, name, found := strings.Cut(spec, "=")
	if !found {
		return 0, "", errors.NewUserError(
			errors.Newf("malformed --set value %q", spec), "expected INDEX=NAME, e.g. --set 1=opt")
	}
	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		return 0, "", errors.NewUserError(
			errors.Newf("malformed --set index %q", rawIndex), "the index must be an integer")
	}
	return index, name, nil
}
