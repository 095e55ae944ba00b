// Package store implements the task record persistence engine: discovery
// and decoding of task files under a storage root, filtering and lookup,
// sequential id assignment, and whole-file rewrite on mutation.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/crooy/mdtasks/internal/debug"
	"github.com/crooy/mdtasks/internal/frontmatter"
	"github.com/crooy/mdtasks/internal/section"
	"github.com/crooy/mdtasks/internal/task"
)

// now is stubbed in tests that assert date stamps.
var now = time.Now

// NotFoundError reports a lookup for an id the store does not contain.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with ID %q not found", e.ID)
}

// UnknownFieldError reports a SetField call with a field name the store
// does not know how to mutate. Nothing is written.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field: %s", e.Field)
}

// Store reads and rewrites task files under a fixed storage root. It holds
// no cached state: every operation re-scans storage, mutates in memory, and
// persists with a whole-file overwrite. There is no locking; concurrent
// processes may race, most visibly in NextID.
type Store struct {
	root string
	ext  string
}

// New returns a store over the given root directory, scanning files with
// the given extension (e.g. ".md").
func New(root, ext string) *Store {
	return &Store{root: root, ext: ext}
}

// Root returns the storage root directory.
func (s *Store) Root() string { return s.root }

// LoadAll recursively scans the storage root and decodes every task file.
// Files that fail to decode are silently excluded; a missing root yields an
// empty result. The result is sorted by id using lexicographic string
// ordering, which is why ids are fixed-width zero-padded.
func (s *Store) LoadAll() ([]*task.File, error) {
	var files []*task.File

	if _, err := os.Stat(s.root); os.IsNotExist(err) {
		return files, nil
	}

	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != s.ext {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read task file %s: %w", path, err)
		}

		t, body, err := frontmatter.Decode(string(raw))
		if err != nil {
			debug.Logf("skipping %s: %v", path, err)
			return nil
		}

		files = append(files, &task.File{Task: t, Path: path, Body: body})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Task.ID < files[j].Task.ID
	})
	return files, nil
}

// Find returns the task file with the given id.
func (s *Store) Find(id string) (*task.File, error) {
	files, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	for _, tf := range files {
		if tf.Task.ID == id {
			return tf, nil
		}
	}
	return nil, &NotFoundError{ID: id}
}

// NextID scans all existing ids, takes the numeric maximum, and returns the
// successor zero-padded to 3 digits. Non-numeric ids are ignored. Not safe
// under concurrent invocation; an accepted limitation of the single-user
// design.
func (s *Store) NextID() (string, error) {
	files, err := s.LoadAll()
	if err != nil {
		return "", err
	}

	max := 0
	for _, tf := range files {
		n, err := strconv.Atoi(tf.Task.ID)
		if err != nil || n < 0 {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("%03d", max+1), nil
}

// Persist re-renders the metadata block from the in-memory record,
// concatenates the body, and overwrites the file at its original path.
// No partial-write protection: task files are independently recoverable
// from source control.
func (s *Store) Persist(tf *task.File) error {
	content := frontmatter.Encode(&tf.Task) + tf.Body
	if err := os.WriteFile(tf.Path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write task file %s: %w", tf.Path, err)
	}
	return nil
}

// Create assigns the next sequential id, fills defaults, seeds the body,
// and writes a new task file named <id>-<slug><ext> under the storage root.
func (s *Store) Create(t task.Task, notes string) (*task.File, error) {
	id, err := s.NextID()
	if err != nil {
		return nil, err
	}
	t.ID = id
	if t.Title == "" {
		return nil, errors.New("task title must not be empty")
	}
	if t.Status == "" {
		t.Status = task.StatusPending
	}
	if t.Priority == "" {
		t.Priority = task.PriorityMedium
	}
	if t.Created == "" {
		t.Created = now().UTC().Format(task.DateFormat)
	}

	var body strings.Builder
	body.WriteString("# Task Details\n\n")
	if notes != "" {
		body.WriteString("## " + NotesHeading + "\n")
		body.WriteString(notes + "\n\n")
	}
	body.WriteString("## " + ChecklistHeading + "\n\n")

	if err := os.MkdirAll(s.root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create tasks directory: %w", err)
	}

	tf := &task.File{
		Task: t,
		Path: filepath.Join(s.root, id+"-"+task.Slugify(t.Title)+s.ext),
		Body: body.String(),
	}
	if err := s.Persist(tf); err != nil {
		return nil, err
	}
	return tf, nil
}

// SetField applies a single named-field mutation and persists. Tags are
// parsed by splitting the value on commas. An unknown field name aborts
// without writing.
func (s *Store) SetField(id, field, value string) (*task.File, error) {
	tf, err := s.Find(id)
	if err != nil {
		return nil, err
	}

	switch field {
	case "title":
		tf.Task.Title = value
	case "priority":
		tf.Task.Priority = value
	case "tags":
		parts := strings.Split(value, ",")
		tags := make([]string, 0, len(parts))
		for _, p := range parts {
			tags = append(tags, strings.TrimSpace(p))
		}
		tf.Task.Tags = tags
	case "due":
		tf.Task.Due = value
	default:
		return nil, &UnknownFieldError{Field: field}
	}

	if err := s.Persist(tf); err != nil {
		return nil, err
	}
	return tf, nil
}

// MarkStarted transitions a task to active, stamps the started date, and
// persists.
func (s *Store) MarkStarted(id string) (*task.File, error) {
	tf, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	tf.Task.Status = task.StatusActive
	tf.Task.Started = now().UTC().Format(task.DateFormat)
	if err := s.Persist(tf); err != nil {
		return nil, err
	}
	return tf, nil
}

// MarkDone transitions a task to done, stamps the completed date, marks
// every checklist item complete, and persists.
func (s *Store) MarkDone(id string) (*task.File, error) {
	tf, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	tf.Task.Status = task.StatusDone
	tf.Task.Completed = now().UTC().Format(task.DateFormat)
	tf.Body = CompleteAll(tf.Body)
	if err := s.Persist(tf); err != nil {
		return nil, err
	}
	return tf, nil
}

// AddNote inserts a note line into the task's Notes section, creating the
// section if absent, and persists.
func (s *Store) AddNote(id, note string) (*task.File, error) {
	tf, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	tf.Body = section.Insert(tf.Body, NotesHeading, note)
	if err := s.Persist(tf); err != nil {
		return nil, err
	}
	return tf, nil
}

// Remove deletes the task file from storage.
func (s *Store) Remove(tf *task.File) error {
	if err := os.Remove(tf.Path); err != nil {
		return fmt.Errorf("failed to delete task file %s: %w", tf.Path, err)
	}
	return nil
}
