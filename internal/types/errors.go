package types

import (
	"errors"
	"fmt"
)

// Errors raised while decoding an image.
var (
	ErrInvalidAddress      = errors.New("invalid address")
	ErrSeek                = errors.New("position unreachable")
	ErrTruncatedRecord     = errors.New("truncated record")
	ErrFieldOutOfRange     = errors.New("field out of range")
	ErrVolumeLabelNotFound = errors.New("volume label VOL1 not found")
	ErrDirectoryDecode     = errors.New("directory decode failed")
	ErrFileNotFound        = errors.New("file not found")
)

// DirectoryDecodeError describes an entry that could not be decoded. Traversal
// of the directory level holding the entry stops at this point.
type DirectoryDecodeError struct {
	Name  string
	Level int
	Slot  int
	Err   error
}

func (e *DirectoryDecodeError) Error() string {
	name := e.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("directory level %d slot %d (%s): %v", e.Level, e.Slot, name, e.Err)
}

// Unwrap returns the underlying cause
func (e *DirectoryDecodeError) Unwrap() error {
	return e.Err
}

// Is matches ErrDirectoryDecode so callers can test for the error class.
func (e *DirectoryDecodeError) Is(target error) bool {
	return target == ErrDirectoryDecode
}
