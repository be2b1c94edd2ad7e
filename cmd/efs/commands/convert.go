package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/empirelib/efs/internal/errors"
	"github.com/empirelib/efs/pathnode"
)

var convertTo string

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "unix",
		"target separator style: windows, unix")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <path>",
	Short: "Convert a path between unix and windows separators",
	Example: `  efs convert 'C:\Users\me' --to unix
  efs convert /usr/local/bin --to windows`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result string
		var ok bool
		switch convertTo {
		case "windows":
			result, ok = pathnode.ToWindows(args[0])
		case "unix":
			result, ok = pathnode.ToUnix(args[0])
		default:
			return errors.NewUserError(
				errors.Newf("unknown conversion target %q", convertTo),
				"valid targets: windows, unix")
		}

		fmt.Fprintln(cmd.OutOrStdout(), orAbsent(result, ok))
		return nil
	},
}
