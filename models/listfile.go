package models

import (
	"regexp"
	"sort"

	"github.com/go-playground/validator/v10"
)

// listNameRe is the list naming rule: alphanumeric first and last character,
// hyphens and underscores allowed in between.
var listNameRe = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9_-]*[A-Za-z0-9])?$`)

// validate is a single validator instance; it caches struct info.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("listname", func(fl validator.FieldLevel) bool {
		return listNameRe.MatchString(fl.Field().String())
	})
}

// ValidateListName checks a user-supplied list name against the naming rule.
func ValidateListName(name string) error {
	if err := validate.Var(name, "required,listname"); err != nil {
		return &InvalidListNameError{Name: name}
	}
	return nil
}

// ListFile is the full persisted aggregate: every named list plus the focus
// pointer. Focused is nil exactly when Lists is empty; otherwise it names an
// existing list. Normalize enforces this at every mutation boundary.
type ListFile struct {
	Focused *string              `json:"focused"`
	Lists   map[string]*TodoList `json:"lists"`
}

// NewListFile returns an empty aggregate, as created on first run.
func NewListFile() *ListFile {
	return &ListFile{Lists: make(map[string]*TodoList)}
}

// Normalize repairs the focus invariant. Files written by older versions (or
// edited by hand) can carry a stale focus; repair lands on the alphabetically
// first list, and an empty aggregate always clears focus.
func (f *ListFile) Normalize() {
	if f.Lists == nil {
		f.Lists = make(map[string]*TodoList)
	}
	if len(f.Lists) == 0 {
		f.Focused = nil
		return
	}
	if f.Focused != nil {
		if _, ok := f.Lists[*f.Focused]; ok {
			return
		}
	}
	names := f.ListNames()
	sort.Strings(names)
	f.Focused = &names[0]
}

// CreateList inserts an empty list under name. The first list created grabs
// focus; later ones leave focus alone.
func (f *ListFile) CreateList(name string) error {
	if _, ok := f.Lists[name]; ok {
		return &DuplicateListNameError{Name: name}
	}
	f.Lists[name] = NewTodoList(name)
	if f.Focused == nil {
		n := name
		f.Focused = &n
	}
	return nil
}

// DeleteList removes name after checking the caller-supplied confirmation
// token against it. Prompting for the token is the CLI's job; the core only
// verifies. When the removed list was focused, focus shifts to the
// alphabetically first remaining list, or clears if none remain.
func (f *ListFile) DeleteList(name, confirm string) error {
	if _, ok := f.Lists[name]; !ok {
		return &ListNotFoundError{Name: name}
	}
	if confirm != name {
		return &ConfirmationMismatchError{Entered: confirm, Requested: name}
	}

	wasFocused := f.Focused == nil || *f.Focused == name
	delete(f.Lists, name)
	if wasFocused {
		f.Focused = nil
	}
	f.Normalize()
	return nil
}

// ShiftFocus sets focus to an existing list.
func (f *ListFile) ShiftFocus(name string) error {
	if _, ok := f.Lists[name]; !ok {
		return &ListNotFoundError{Name: name}
	}
	n := name
	f.Focused = &n
	return nil
}

// FocusedList returns the currently focused list.
func (f *ListFile) FocusedList() (*TodoList, error) {
	if f.Focused == nil {
		return nil, ErrNoFocusedList
	}
	return f.Lists[*f.Focused], nil
}

// ListNames returns all list names in storage order (unordered). Display
// ordering is the caller's responsibility.
func (f *ListFile) ListNames() []string {
	names := make([]string, 0, len(f.Lists))
	for name := range f.Lists {
		names = append(names, name)
	}
	return names
}
