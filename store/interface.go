package store

import "github.com/todofile/todo/models"

// ListStore defines the contract for list persistence. Every mutating method
// performs one full read-modify-write cycle against the backing file: the
// aggregate is loaded fresh, mutated in memory and rewritten wholesale.
// Task-level methods operate on the focused list.
type ListStore interface {
	// CreateList inserts an empty list; the first list created grabs focus.
	CreateList(name string) error

	// DeleteList removes a list. confirm must equal name; the prompt that
	// collects the token lives in the CLI layer.
	DeleteList(name, confirm string) error

	// ShiftFocus moves focus to an existing list.
	ShiftFocus(name string) error

	// AddTasks appends one incomplete task per title to the focused list,
	// all sharing the same optional due date.
	AddTasks(titles []string, date *models.Date) error

	// DropTasks removes tasks from the focused list by their 1-based
	// positions in the due-date-sorted view. Out-of-range positions are
	// silently ignored.
	DropTasks(indices []int) error

	// SetCompletion marks tasks in the focused list complete or incomplete,
	// addressed the same way as DropTasks.
	SetCompletion(indices []int, complete bool) error

	// Snapshot loads and returns the current aggregate without mutating it.
	Snapshot() (*models.ListFile, error)

	// Close releases the file lock, if one is held.
	Close() error
}
