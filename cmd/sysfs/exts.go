package main

import (
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newExtsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exts",
		Short: "List the executable extension set",
		Long: `List the extensions that mark a file as executable under extension-based
semantics, in PATHEXT order. Falls back to .COM, .EXE, .BAT, .CMD when
PATHEXT is unset or empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exts := a.registry.Extensions()
			return render(a.out, a.format, exts, func(tw *tabwriter.Writer) {
				writeRow(tw, "EXTENSION")
				for _, ext := range exts {
					writeRow(tw, ext)
				}
			})
		},
	}
}
