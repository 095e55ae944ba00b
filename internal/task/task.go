// Package task defines the core task record and task file types shared
// across the store, codec, and git workflow layers.
package task

import (
	"strings"
	"unicode"
)

// Conventional status values. Status is deliberately an open string, not a
// closed enum: files written by hand (or by older versions) may carry values
// like "partial" or "blocked", and those must survive a load/persist cycle
// untouched.
const (
	StatusPending = "pending"
	StatusActive  = "active"
	StatusDone    = "done"
)

// Conventional priority values. Like status, priority is an open string.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// DateFormat is the layout used for the created/due/completed/started
// stamps this tool writes. Dates read from files are passed through
// verbatim and never validated against it.
const DateFormat = "2006-01-02"

// Task is the structured metadata of a single task file.
//
// ID and Title are mandatory; a record missing either is not a valid task.
// Everything else is optional and stored as-is.
type Task struct {
	ID        string
	Title     string
	Status    string
	Priority  string
	Tags      []string
	Project   string
	Created   string
	Due       string
	Completed string
	Started   string
}

// Valid reports whether the record has the mandatory fields.
func (t *Task) Valid() bool {
	return t.ID != "" && t.Title != ""
}

// File binds a task record to its on-disk location and free-form body.
// The body is everything after the front matter block, unparsed markdown.
// A File exclusively owns its in-memory record and body; mutations happen
// in memory and are persisted with a whole-file rewrite.
type File struct {
	Task Task
	Path string
	Body string
}

// Slugify derives a filename/branch-safe slug from a task title:
// lowercased, spaces joined with hyphens, everything that is not a letter,
// digit, or hyphen dropped.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case r == ' ':
			b.WriteByte('-')
		case r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
