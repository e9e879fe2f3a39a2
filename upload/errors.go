package upload

import (
	"errors"
	"fmt"
)

// Common registry errors
var (
	ErrNotExist       = errors.New("upload does not exist")
	ErrExist          = errors.New("upload already exists")
	ErrInvalidID      = errors.New("invalid upload id")
	ErrInvalidContent = errors.New("file is neither an image nor a video")
	ErrTooLarge       = errors.New("file exceeds the maximum upload size")
	ErrContentChanged = errors.New("file content no longer matches its upload id")
)

// PathError records an error and the operation and file path that caused it
type PathError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *PathError) Unwrap() error {
	return e.Err
}

// IsNotExist reports whether an error indicates that an upload does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, ErrNotExist)
}

// IsExist reports whether an error indicates that an upload already exists
func IsExist(err error) bool {
	return errors.Is(err, ErrExist)
}
