package main

import (
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type pathsReport struct {
	Executable []string `json:"executable" yaml:"executable"`
	Utility    []string `json:"utility" yaml:"utility"`
	Search     []string `json:"search" yaml:"search"`
}

func newPathsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "List default and effective command search paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := pathsReport{
				Executable: a.paths.ExecutableSearchPaths(),
				Utility:    a.paths.StandardUtilityPaths(),
				Search:     a.resolver().Dirs(),
			}
			return render(a.out, a.format, report, func(tw *tabwriter.Writer) {
				writeRow(tw, "KIND", "DIRECTORY")
				for _, d := range report.Executable {
					writeRow(tw, "executable", d)
				}
				for _, d := range report.Utility {
					writeRow(tw, "utility", d)
				}
				for _, d := range report.Search {
					writeRow(tw, "search", d)
				}
			})
		},
	}
}
