package analyse

import (
	"errors"
	"fmt"
)

// ErrNotDirectory indicates the input path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// FileError represents a failure to read one workbook.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("analyse %q: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// NewFileError creates a new FileError.
func NewFileError(path string, err error) *FileError {
	return &FileError{Path: path, Err: err}
}
