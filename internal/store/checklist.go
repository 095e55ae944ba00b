package store

import (
	"strings"

	"github.com/crooy/mdtasks/internal/section"
	"github.com/crooy/mdtasks/internal/task"
)

// Section headings the task file format reserves by convention.
const (
	NotesHeading     = "Notes"
	ChecklistHeading = "Checklist"
)

// Checkbox markers for checklist lines.
const (
	incompleteMarker = "- [ ]"
	completeMarker   = "- [x]"
)

// ChecklistItem is a single checkbox line inside the Checklist section.
// Items have no identity beyond their position and text.
type ChecklistItem struct {
	Done bool
	Text string
}

// AddChecklistItem inserts an incomplete checkbox line into the task's
// Checklist section, creating the section if absent, and persists.
func (s *Store) AddChecklistItem(id, text string) (*task.File, error) {
	tf, err := s.Find(id)
	if err != nil {
		return nil, err
	}
	tf.Body = section.Insert(tf.Body, ChecklistHeading, incompleteMarker+" "+text)
	if err := s.Persist(tf); err != nil {
		return nil, err
	}
	return tf, nil
}

// ChecklistItems parses the checkbox lines of the task's Checklist section.
// Lines inside the section that don't match the checkbox pattern are
// ignored.
func (s *Store) ChecklistItems(id string) ([]ChecklistItem, error) {
	tf, err := s.Find(id)
	if err != nil {
		return nil, err
	}

	r, ok := section.Find(tf.Body, ChecklistHeading)
	if !ok {
		return nil, nil
	}

	var items []ChecklistItem
	lines := strings.Split(tf.Body, "\n")
	for i := r.Start + 1; i < r.End && i < len(lines); i++ {
		if item, ok := parseChecklistLine(lines[i]); ok {
			items = append(items, item)
		}
	}
	return items, nil
}

// CompleteAll rewrites every incomplete checkbox line inside the Checklist
// section to its complete form, leaving all other lines unchanged.
func CompleteAll(body string) string {
	return section.Transform(body, ChecklistHeading, func(line string) string {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, incompleteMarker) {
			return line
		}
		text := strings.TrimSpace(strings.TrimPrefix(trimmed, incompleteMarker))
		return completeMarker + " " + text
	})
}

// parseChecklistLine recognizes "- [ ] text", "- [x] text", and "- [X] text".
func parseChecklistLine(line string) (ChecklistItem, bool) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, incompleteMarker):
		return ChecklistItem{Text: strings.TrimSpace(strings.TrimPrefix(trimmed, incompleteMarker))}, true
	case strings.HasPrefix(trimmed, completeMarker):
		return ChecklistItem{Done: true, Text: strings.TrimSpace(strings.TrimPrefix(trimmed, completeMarker))}, true
	case strings.HasPrefix(trimmed, "- [X]"):
		return ChecklistItem{Done: true, Text: strings.TrimSpace(strings.TrimPrefix(trimmed, "- [X]"))}, true
	default:
		return ChecklistItem{}, false
	}
}
