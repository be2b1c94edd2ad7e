package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/empirelib/efs/fsx"
)

func init() {
	rootCmd.AddCommand(nextCmd)
}

var nextCmd = &cobra.Command{
	Use:   "next <path>",
	Short: "Print the next available file name for a path",
	Long: `Print the path itself when it is free, or the first numbered variant
that is. The separator, starting number, step and probe limit come from
the naming section of the configuration file. This command reads the
filesystem.`,
	Example: `  efs next report.txt   # report.txt, or report0.txt, report1.txt, ...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := fsx.Default().NextAvailableName(args[0],
			fsx.WithSeparator(cfg.Naming.Separator),
			fsx.WithStart(cfg.Naming.Start),
			fsx.WithStep(cfg.Naming.Step),
			fsx.WithLimit(cfg.Naming.Limit),
		)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}
