// Package ioerr classifies filesystem failures into platform errors.
package ioerr

import (
	stderrors "errors"
	"io/fs"

	"github.com/jmgilman/go/errors"
)

// Context keys attached to every classified error.
const (
	KeyPath = "path"
	KeyOp   = "op"
)

// Wrap converts a filesystem error into a PlatformError carrying the
// failed operation and path. Returns nil if err is nil.
func Wrap(err error, op, path string) errors.PlatformError {
	if err == nil {
		return nil
	}

	return errors.WrapWithContext(err, Classify(err), op+" "+path, map[string]interface{}{
		KeyPath: path,
		KeyOp:   op,
	})
}

// Classify maps err to an error code.
func Classify(err error) errors.ErrorCode {
	switch {
	case err == nil:
		return errors.CodeUnknown
	case stderrors.Is(err, fs.ErrNotExist):
		return errors.CodeNotFound
	case stderrors.Is(err, fs.ErrPermission):
		return errors.CodeForbidden
	default:
		return errors.CodeInternal
	}
}
