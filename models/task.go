package models

import (
	"fmt"
	"sort"
	"strconv"
)

// Task is a single entry in a list. Order within TodoList.Tasks is insertion
// order; display and index addressing use the due-date-sorted view.
type Task struct {
	Title    string `json:"title"`
	Complete bool   `json:"complete"`
	Date     *Date  `json:"date"`
}

func (t Task) String() string {
	mark := "✕"
	if t.Complete {
		mark = "✓"
	}
	if t.Date != nil {
		return fmt.Sprintf("%s [%s] %s", mark, t.Date, t.Title)
	}
	return fmt.Sprintf("%s %s", mark, t.Title)
}

// compareTasks orders tasks by due date. Dateless tasks sort ahead of dated
// ones; everything else goes through Date.Compare.
func compareTasks(a, b Task) int {
	switch {
	case a.Date == nil && b.Date == nil:
		return 0
	case a.Date == nil:
		return -1
	case b.Date == nil:
		return 1
	}
	return a.Date.Compare(*b.Date)
}

// TodoList holds the ordered tasks of one named list.
type TodoList struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// NewTodoList returns an empty list with the given name.
func NewTodoList(name string) *TodoList {
	return &TodoList{Name: name, Tasks: []Task{}}
}

// AddTasks appends one incomplete task per title, all sharing the same
// optional due date.
func (l *TodoList) AddTasks(titles []string, date *Date) {
	for _, t := range titles {
		l.Tasks = append(l.Tasks, Task{Title: t, Complete: false, Date: date})
	}
}

// SortedTasks returns the due-date-sorted view of the list. The sort is
// stable: tasks that compare equal keep their relative insertion order.
func (l *TodoList) SortedTasks() []Task {
	out := make([]Task, len(l.Tasks))
	copy(out, l.Tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return compareTasks(out[i], out[j]) < 0
	})
	return out
}

// sortedOffsets converts 1-based sorted-view positions into unique 0-based
// offsets in descending order, so that removing the highest offset first
// never shifts offsets still pending. Positions below 1 are dropped here;
// positions past the end are skipped by the callers.
func sortedOffsets(indices []int) []int {
	seen := make(map[int]bool, len(indices))
	out := make([]int, 0, len(indices))
	for _, i := range indices {
		if i < 1 || seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i-1)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

// DropTasks removes the tasks at the given 1-based positions in the sorted
// view. Out-of-range positions are silently ignored. The task sequence is
// replaced by the pruned sorted view.
func (l *TodoList) DropTasks(indices []int) {
	sorted := l.SortedTasks()
	for _, off := range sortedOffsets(indices) {
		if off < len(sorted) {
			sorted = append(sorted[:off], sorted[off+1:]...)
		}
	}
	l.Tasks = sorted
}

// SetCompletion flips the complete flag on the tasks at the given 1-based
// positions in the sorted view. Out-of-range positions are silently ignored.
func (l *TodoList) SetCompletion(indices []int, complete bool) {
	sorted := l.SortedTasks()
	for _, off := range sortedOffsets(indices) {
		if off < len(sorted) {
			sorted[off].Complete = complete
		}
	}
	l.Tasks = sorted
}

// RenderLines renders the sorted view, one line per task, numbered from 1.
// The index column is padded to the digit width of the task count.
func (l *TodoList) RenderLines() []string {
	sorted := l.SortedTasks()
	width := len(strconv.Itoa(len(sorted)))
	lines := make([]string, 0, len(sorted))
	for i, t := range sorted {
		lines = append(lines, fmt.Sprintf("%-*d| %s", width, i+1, t))
	}
	return lines
}
