//go:build !unix

package captest

import "github.com/jmgilman/go/fs/core"

func mkfifo(string) error {
	return core.ErrUnsupported
}
