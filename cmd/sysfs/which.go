package main

import (
	"context"
	"text/tabwriter"

	"github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"
)

type whichReport struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

func newWhichCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "which NAME...",
		Short: "Resolve command names to executable paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			found, err := a.resolver().FindAll(ctx, args)
			if err != nil {
				return err
			}

			reports := make([]whichReport, 0, len(args))
			missing := 0
			for _, name := range args {
				path, ok := found[name]
				if !ok {
					missing++
				}
				reports = append(reports, whichReport{Name: name, Path: path})
			}

			if err := render(a.out, a.format, reports, func(tw *tabwriter.Writer) {
				writeRow(tw, "NAME", "PATH")
				for _, r := range reports {
					path := r.Path
					if path == "" {
						path = yesNo(false)
					}
					writeRow(tw, r.Name, path)
				}
			}); err != nil {
				return err
			}

			if missing > 0 {
				return errors.Newf(errors.CodeNotFound, "%d of %d commands not found", missing, len(args))
			}
			return nil
		},
	}
}
