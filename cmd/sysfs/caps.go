package main

import (
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/sysfs/capability"
)

type capsReport struct {
	capability.Result `yaml:",inline"`

	Path      string                `json:"path" yaml:"path"`
	Identity  string                `json:"identity" yaml:"identity"`
	Ownership *capability.Ownership `json:"ownership,omitempty" yaml:"ownership,omitempty"`
	Error     string                `json:"error,omitempty" yaml:"error,omitempty"`
}

func newCapsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "caps PATH...",
		Short: "Show capability predicates and identity for paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]capsReport, 0, len(args))
			for _, path := range args {
				reports = append(reports, a.inspect(path))
			}
			return render(a.out, a.format, reports, func(tw *tabwriter.Writer) {
				writeRow(tw, "PATH", "R", "W", "X", "BLK", "CHR", "FIFO", "SOCK", "SGID", "SUID", "STICKY", "IDENTITY")
				for _, r := range reports {
					writeRow(tw, r.Path,
						yesNo(r.Readable), yesNo(r.Writable), yesNo(r.Executable),
						yesNo(r.BlockDevice), yesNo(r.CharDevice), yesNo(r.FIFO), yesNo(r.Socket),
						yesNo(r.Setgid), yesNo(r.Setuid), yesNo(r.Sticky),
						r.Identity,
					)
				}
			})
		},
	}
}

func (a *app) inspect(path string) capsReport {
	report := capsReport{
		Path:   path,
		Result: capability.Query(a.caps, path),
	}

	id, err := a.caps.Identity(path)
	if err != nil {
		a.logger.Debug("identity lookup failed", "path", path, "error", err)
		report.Error = err.Error()
	}
	report.Identity = id.String()

	if info, err := os.Stat(path); err == nil {
		owner := a.caps.Ownership(info)
		report.Ownership = &owner
	}
	return report
}
