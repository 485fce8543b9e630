package app

import (
	"fmt"
	"strings"
)

// WildcardName selects every entry of an image
const WildcardName = "*"

// Selection is the set of names given to a command
type Selection []string

// IsAll reports whether the selection is the lone wildcard
func (s Selection) IsAll() bool {
	return len(s) == 1 && s[0] == WildcardName
}

// IsEmpty returns true if no names were given
func (s Selection) IsEmpty() bool {
	return len(s) == 0
}

// Validate rejects blank names and a wildcard mixed with names
func (s Selection) Validate() error {
	for _, name := range s {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("file names cannot be blank")
		}
		if name == WildcardName && len(s) > 1 {
			return fmt.Errorf("%q cannot be combined with file names", WildcardName)
		}
	}
	return nil
}

// String returns a string representation of the selection
func (s Selection) String() string {
	switch {
	case s.IsEmpty():
		return "volume summary and all entries"
	case s.IsAll():
		return "all entries"
	default:
		return strings.Join(s, ", ")
	}
}

// ProgressUpdate represents progress information
type ProgressUpdate struct {
	Message   string
	Completed int64
	Total     int64
}

// Percent calculates completion percentage
func (p *ProgressUpdate) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return int((p.Completed * 100) / p.Total)
}

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeImageAccess  = "IMAGE_ACCESS"
	ErrCodeVolumeLabel  = "VOLUME_LABEL"
	ErrCodeFileNotFound = "FILE_NOT_FOUND"
	ErrCodeOutput       = "OUTPUT"
)

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
