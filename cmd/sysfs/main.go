// Command sysfs inspects filesystem capabilities and command resolution
// the way a shell runtime sees them.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jmgilman/go/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("error:"), err)
		os.Exit(1)
	}
}

// exitError carries a subprocess exit code out of a command without
// printing an additional error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
