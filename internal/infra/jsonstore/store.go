// Package jsonstore provides a JSON file-based implementation of TaskRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/vijay4057/task-tracker/internal/domain"
)

// storeData represents the JSON document. The whole document is rewritten
// on every mutation; tasks keep their insertion order.
type storeData struct {
	Tasks []*domain.Task `json:"tasks"`
	Meta  meta           `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextTaskID int `json:"nextTaskID"`
}

// Store implements domain.TaskRepository using a single JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; call Initialize to create it.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// List retrieves all tasks in insertion order.
func (s *Store) List() ([]*domain.Task, error) {
	var tasks []*domain.Task
	err := s.withLock(func(data *storeData) error {
		tasks = data.Tasks
		return nil
	})
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return tasks, err
}

// Get retrieves a task by ID. Returns nil if not found.
func (s *Store) Get(id int) (*domain.Task, error) {
	var task *domain.Task
	err := s.withLock(func(data *storeData) error {
		task = findTask(data, id)
		return nil
	})
	return task, err
}

// Create assigns the next ID to the task and appends it to the store.
func (s *Store) Create(task *domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		task.ID = data.Meta.NextTaskID
		data.Meta.NextTaskID++
		data.Tasks = append(data.Tasks, task)
		return nil
	})
}

// Update applies fn to the stored task inside a single read-modify-write.
func (s *Store) Update(id int, fn func(*domain.Task) error) (*domain.Task, error) {
	var updated *domain.Task
	err := s.withLockWrite(func(data *storeData) error {
		task := findTask(data, id)
		if task == nil {
			return domain.ErrTaskNotFound
		}
		if err := fn(task); err != nil {
			return err
		}
		task.ID = id // immutable regardless of what fn did
		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a task permanently.
func (s *Store) Delete(id int) error {
	return s.withLockWrite(func(data *storeData) error {
		for i, t := range data.Tasks {
			if t.ID == id {
				data.Tasks = append(data.Tasks[:i], data.Tasks[i+1:]...)
				return nil
			}
		}
		return domain.ErrTaskNotFound
	})
}

// Replace swaps the entire collection, reassigning IDs from the counter.
func (s *Store) Replace(tasks []*domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		data.Tasks = data.Tasks[:0]
		for _, t := range tasks {
			t.ID = data.Meta.NextTaskID
			data.Meta.NextTaskID++
			data.Tasks = append(data.Tasks, t)
		}
		return nil
	})
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.write(&storeData{
		Tasks: []*domain.Task{},
		Meta:  meta{NextTaskID: 1},
	})
}

func findTask(data *storeData, id int) *domain.Task {
	for _, t := range data.Tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and rewrites
// the whole document on success. This is the process-wide serialization
// point for all mutations.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotInitialized
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if data.Tasks == nil {
		data.Tasks = []*domain.Task{}
	}
	if data.Meta.NextTaskID < 1 {
		data.Meta.NextTaskID = maxID(data.Tasks) + 1
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func maxID(tasks []*domain.Task) int {
	m := 0
	for _, t := range tasks {
		if t.ID > m {
			m = t.ID
		}
	}
	return m
}

// Ensure Store implements the repository ports.
var (
	_ domain.TaskRepository   = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
)
