// Package discard opens handles to the platform null device.
//
// The handle is opened for both reading and writing on every platform, so a
// single handle can swallow a subprocess's output and serve as an input that
// is immediately at end-of-stream:
//
//	sink, err := discard.Open()
//	if err != nil {
//	    return err
//	}
//	defer sink.Close()
//	cmd.Stdin, cmd.Stdout, cmd.Stderr = sink, sink, sink
package discard

import (
	"os"

	"github.com/jmgilman/go/sysfs/internal/ioerr"
)

// Device is the name of the platform null device ("/dev/null" or "NUL").
const Device = os.DevNull

// Open opens the platform null device for reading and writing.
// Failure is returned as a PlatformError carrying the device path; there
// is no fallback.
func Open() (*os.File, error) {
	return OpenDevice(Device)
}

// OpenDevice opens the named null device for reading and writing.
func OpenDevice(name string) (*os.File, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, ioerr.Wrap(err, "open discard sink", name)
	}
	return f, nil
}
