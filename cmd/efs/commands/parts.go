package commands

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/empirelib/efs/internal/errors"
	"github.com/empirelib/efs/internal/logging"
	"github.com/empirelib/efs/pathnode"
)

var partsJSON bool

func init() {
	partsCmd.Flags().BoolVar(&partsJSON, "json", false, "emit the breakdown as JSON")
	rootCmd.AddCommand(partsCmd)
}

var partsCmd = &cobra.Command{
	Use:   "parts <path>",
	Short: "Break a path into directory, stem and extension",
	Long: `Break a path into its directory, stem and extension.

Parts the path does not have are reported as (none): a bare file name
has no directory, a dotfile like .gitignore has no extension.`,
	Example: `  efs parts /var/log/syslog.1.gz
  efs parts .gitignore --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parts := pathnode.SplitParts(args[0])
		out := cmd.OutOrStdout()

		if partsJSON {
			payload := struct {
				Dir     string `json:"dir"`
				HasDir  bool   `json:"has_dir"`
				Stem    string `json:"stem"`
				HasStem bool   `json:"has_stem"`
				Ext     string `json:"ext"`
				HasExt  bool   `json:"has_ext"`
			}{parts.Dir, parts.HasDir, parts.Stem, parts.HasStem, parts.Ext, parts.HasExt}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(payload); err != nil {
				return errors.Wrap(err, "encoding parts")
			}
			return nil
		}

		label := func(s string) string { return s }
		if logging.SupportsColor(out) {
			cyan := color.New(color.FgCyan)
			label = func(s string) string { return cyan.Sprint(s) }
		}

		fmt.Fprintf(out, "%s %s\n", label("dir: "), orAbsent(parts.Dir, parts.HasDir))
		fmt.Fprintf(out, "%s %s\n", label("stem:"), orAbsent(parts.Stem, parts.HasStem))
		fmt.Fprintf(out, "%s %s\n", label("ext: "), orAbsent(parts.Ext, parts.HasExt))
		return nil
	},
}
