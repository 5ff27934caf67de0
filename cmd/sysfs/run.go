package main

import (
	"os"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/exec"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/sysfs/discard"
)

func newRunCmd(a *app) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "run [--quiet] -- COMMAND [ARGS...]",
		Short: "Resolve and run a command",
		Long: `Resolve COMMAND the same way 'which' does and run it with the inherited
environment. With --quiet, the command's output is written to the null device.

The command's stdout and stderr are also buffered in memory until it exits,
with or without --quiet, so avoid commands with very large output.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.resolver().Find(args[0])
			if err != nil {
				return err
			}

			opts := []exec.Option{exec.WithInheritEnv(), exec.WithPassthrough()}
			if ctx := cmd.Context(); ctx != nil {
				opts = append(opts, exec.WithContext(ctx))
			}
			if quiet {
				sink, err := discard.Open()
				if err != nil {
					return err
				}
				defer sink.Close()
				opts = append(opts, exec.WithStdout(sink), exec.WithStderr(sink))
			} else {
				opts = append(opts, exec.WithStdout(os.Stdout), exec.WithStderr(os.Stderr))
			}
			executor := exec.New(opts...)

			a.logger.Debug("running command", "path", path, "args", args[1:], "quiet", quiet)
			result, err := executor.Run(append([]string{path}, args[1:]...)...)
			if err != nil {
				var execErr *exec.ExecError
				if errors.As(err, &execErr) && result != nil && result.ExitCode > 0 {
					return &exitError{code: result.ExitCode}
				}
				return errors.WrapWithContext(err, errors.CodeExecutionFailed, "failed to run command", map[string]interface{}{
					"path": path,
				})
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "discard the command's output")
	return cmd
}
