package pipeline

import (
	"errors"
	"fmt"
)

// ErrUsage is returned when no markdown path was given.
var ErrUsage = errors.New("missing markdown path")

// FileAccessError reports an input or output file that could not be
// opened, read or written.
type FileAccessError struct {
	Op   string // read markdown, extract references, write output
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
