package store

import "fmt"

// LoadError reports a list file that could not be read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load list file %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// WriteError reports a failure to persist the list file. The previous on-disk
// state is left untouched when this is returned.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write list file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
