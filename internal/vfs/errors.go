package vfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for the operation-level failure taxonomy.
// Callers distinguish outcomes with errors.Is().
var (
	// ErrNotFound indicates a path component or named child does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotADirectory indicates the operation requires a directory but
	// resolved a file.
	ErrNotADirectory = errors.New("not a directory")

	// ErrIsADirectory indicates the operation requires a file but resolved
	// a directory.
	ErrIsADirectory = errors.New("is a directory")

	// ErrNotAFile indicates a search target resolved to a directory.
	ErrNotAFile = errors.New("not a file")

	// ErrAlreadyExists indicates a creation target name is already occupied.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotEmpty indicates a non-recursive removal of a non-empty directory.
	ErrNotEmpty = errors.New("directory not empty")
)

// PathError records an operation, the path or name it failed on, and the
// sentinel classifying the failure. errors.Is sees through it to the
// sentinel; errors.As recovers the offending path for message formatting.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

func pathErr(op, path string, err error) error {
	return &PathError{Op: op, Path: path, Err: err}
}
