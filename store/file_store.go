package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/afero"

	"github.com/todofile/todo/models"
)

const lockSuffix = ".lock"

// FileListStore implements ListStore against a single JSON file. Each
// operation locks the file, loads the aggregate, mutates it and atomically
// rewrites the whole file via a temp file and rename, so an interrupted run
// leaves the previous on-disk state intact.
type FileListStore struct {
	filePath string
	fs       afero.Fs
	flk      *flock.Flock
	data     *models.ListFile
}

// NewFileListStore creates a store backed by filePath on the given
// filesystem. Use afero.NewOsFs() for real use and afero.NewMemMapFs() in
// tests. Cross-process locking is engaged only on the OS filesystem; memory
// filesystems have no second process to race against.
func NewFileListStore(fs afero.Fs, filePath string) (*FileListStore, error) {
	dir := filepath.Dir(filePath)
	if dir != "." && dir != "" {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
	}

	s := &FileListStore{
		filePath: filePath,
		fs:       fs,
		data:     models.NewListFile(),
	}
	if _, ok := fs.(*afero.OsFs); ok {
		s.flk = flock.New(filePath + lockSuffix)
	}
	return s, nil
}

func (s *FileListStore) lock() error {
	if s.flk == nil {
		return nil
	}
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", s.filePath, err)
	}
	return nil
}

func (s *FileListStore) unlock() {
	if s.flk != nil {
		_ = s.flk.Unlock()
	}
}

// load reads the aggregate from disk. A missing or empty file is a first run
// and yields an empty aggregate; anything unreadable or undecodable is a
// LoadError. The focus invariant is repaired immediately after decoding.
func (s *FileListStore) load() error {
	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = models.NewListFile()
			return nil
		}
		return &LoadError{Path: s.filePath, Err: err}
	}
	if len(data) == 0 {
		s.data = models.NewListFile()
		return nil
	}

	var lf models.ListFile
	if err := json.Unmarshal(data, &lf); err != nil {
		return &LoadError{Path: s.filePath, Err: err}
	}
	lf.Normalize()
	s.data = &lf
	return nil
}

// save rewrites the whole aggregate. The temp-then-rename dance keeps the old
// file intact until the new contents are fully on disk.
func (s *FileListStore) save() error {
	s.data.Normalize()

	out, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return &WriteError{Path: s.filePath, Err: err}
	}

	tmpPath := s.filePath + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, out, 0o644); err != nil {
		return &WriteError{Path: s.filePath, Err: err}
	}
	if err := s.fs.Rename(tmpPath, s.filePath); err != nil {
		_ = s.fs.Remove(tmpPath)
		return &WriteError{Path: s.filePath, Err: err}
	}
	return nil
}

// mutate runs fn inside one lock → load → mutate → save cycle.
func (s *FileListStore) mutate(fn func(*models.ListFile) error) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.unlock()

	if err := s.load(); err != nil {
		return err
	}
	if err := fn(s.data); err != nil {
		return err
	}
	return s.save()
}

// CreateList inserts an empty list under name.
func (s *FileListStore) CreateList(name string) error {
	return s.mutate(func(f *models.ListFile) error {
		return f.CreateList(name)
	})
}

// DeleteList removes a list once the confirmation token checks out.
func (s *FileListStore) DeleteList(name, confirm string) error {
	return s.mutate(func(f *models.ListFile) error {
		return f.DeleteList(name, confirm)
	})
}

// ShiftFocus moves focus to an existing list.
func (s *FileListStore) ShiftFocus(name string) error {
	return s.mutate(func(f *models.ListFile) error {
		return f.ShiftFocus(name)
	})
}

// AddTasks appends tasks to the focused list.
func (s *FileListStore) AddTasks(titles []string, date *models.Date) error {
	return s.mutate(func(f *models.ListFile) error {
		list, err := f.FocusedList()
		if err != nil {
			return err
		}
		list.AddTasks(titles, date)
		return nil
	})
}

// DropTasks removes tasks from the focused list by sorted-view position.
func (s *FileListStore) DropTasks(indices []int) error {
	return s.mutate(func(f *models.ListFile) error {
		list, err := f.FocusedList()
		if err != nil {
			return err
		}
		list.DropTasks(indices)
		return nil
	})
}

// SetCompletion marks focused-list tasks complete or incomplete.
func (s *FileListStore) SetCompletion(indices []int, complete bool) error {
	return s.mutate(func(f *models.ListFile) error {
		list, err := f.FocusedList()
		if err != nil {
			return err
		}
		list.SetCompletion(indices, complete)
		return nil
	})
}

// Snapshot loads and returns the current aggregate without writing back.
func (s *FileListStore) Snapshot() (*models.ListFile, error) {
	if err := s.lock(); err != nil {
		return nil, err
	}
	defer s.unlock()

	if err := s.load(); err != nil {
		return nil, err
	}
	return s.data, nil
}

// Close releases the file lock. Unlock is idempotent.
func (s *FileListStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
