package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/empirelib/efs/internal/errors"
	"github.com/empirelib/efs/scan"
)

var (
	scanRecursive bool
	scanPattern   string
	scanExts      []string
	scanDirs      bool
	scanFiles     bool
)

func init() {
	scanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false,
		"descend into subdirectories")
	scanCmd.Flags().StringVar(&scanPattern, "pattern", "",
		"keep entries whose name matches the glob pattern")
	scanCmd.Flags().StringSliceVar(&scanExts, "ext", nil,
		"keep files with one of these extensions")
	scanCmd.Flags().BoolVar(&scanDirs, "dirs", false, "keep directories only")
	scanCmd.Flags().BoolVar(&scanFiles, "files", false, "keep files only")
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "List directory entries through a filter",
	Long: `List the entries of a directory, one per line.

The filter flags are mutually exclusive; without one, every entry is
listed. This command reads the filesystem.`,
	Example: `  efs scan . --recursive --ext go
  efs scan /var/log --pattern '*.gz'
  efs scan . --dirs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := buildScanFilter()
		if err != nil {
			return err
		}

		opts := []scan.Option{scan.WithFilter(filter)}
		if scanRecursive {
			opts = append(opts, scan.Recursive())
		}

		results, err := scan.Scan(afero.NewOsFs(), args[0], opts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, r := range results {
			fmt.Fprintln(out, r)
		}
		return nil
	},
}

func buildScanFilter() (scan.Filter, error) {
	var filters []scan.Filter
	if scanDirs {
		filters = append(filters, scan.DirsOnly)
	}
	if scanFiles {
		filters = append(filters, scan.FilesOnly)
	}
	if scanPattern != "" {
		filters = append(filters, scan.MatchPattern(scanPattern))
	}
	if len(scanExts) > 0 {
		filters = append(filters, scan.Extensions(scanExts...))
	}

	switch len(filters) {
	case 0:
		return func(e scan.Entry) (string, bool) { return e.Path, true }, nil
	case 1:
		return filters[0], nil
	default:
		return nil, errors.NewUserError(
			errors.New("conflicting filter flags"),
			"use at most one of --pattern, --ext, --dirs, --files")
	}
}
