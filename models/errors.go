package models

import (
	"errors"
	"fmt"
)

// ErrNoFocusedList is returned by task-level operations when no list is
// focused, which can only happen when no lists exist.
var ErrNoFocusedList = errors.New("cannot get focused list; there is none")

// DuplicateListNameError is returned when creating a list under a taken name.
type DuplicateListNameError struct {
	Name string
}

func (e *DuplicateListNameError) Error() string {
	return fmt.Sprintf("cannot create list named %q, a list already exists with this name", e.Name)
}

// ListNotFoundError is returned when an operation targets a missing list.
type ListNotFoundError struct {
	Name string
}

func (e *ListNotFoundError) Error() string {
	return fmt.Sprintf("no list named %q exists", e.Name)
}

// ConfirmationMismatchError is returned when the re-typed confirmation token
// does not match the list requested for deletion.
type ConfirmationMismatchError struct {
	Entered   string
	Requested string
}

func (e *ConfirmationMismatchError) Error() string {
	return fmt.Sprintf("cannot delete list; name entered %q does not match requested deletion %q", e.Entered, e.Requested)
}

// InvalidListNameError is returned when a list name fails validation before
// the store is touched.
type InvalidListNameError struct {
	Name string
}

func (e *InvalidListNameError) Error() string {
	return fmt.Sprintf("invalid list name %q: names must start and end with a letter or digit and may contain '-' and '_' in between", e.Name)
}
