package frontmatter

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/crooy/mdtasks/internal/task"
)

func TestDecodeBasic(t *testing.T) {
	raw := `---
id: 001
title: "Fix login bug"
status: pending
priority: high
tags: ["auth", "bug"]
project: webapp
created: 2025-03-01
due: 2025-03-15
---

# Task Details

## Notes
Investigate session expiry.

## Checklist
- [ ] reproduce
`

	got, body, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	want := task.Task{
		ID:       "001",
		Title:    "Fix login bug",
		Status:   "pending",
		Priority: "high",
		Tags:     []string{"auth", "bug"},
		Project:  "webapp",
		Created:  "2025-03-01",
		Due:      "2025-03-15",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode() = %+v, want %+v", got, want)
	}

	if !strings.HasPrefix(body, "# Task Details\n") {
		t.Errorf("body should start with the markdown content, got %q", body[:30])
	}
	if strings.Contains(body, Delimiter) {
		t.Errorf("body should not contain the delimiter, got %q", body)
	}
}

func TestDecodePreservesZeroPadding(t *testing.T) {
	// Unquoted numeric ids must keep their textual form: lexicographic
	// ordering over the store depends on fixed-width ids.
	raw := "---\nid: 007\ntitle: \"x\"\n---\n\nbody\n"

	got, _, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if got.ID != "007" {
		t.Errorf("ID = %q, want 007", got.ID)
	}
}

func TestDecodeCoercesIntegerID(t *testing.T) {
	raw := "---\nid: 42\ntitle: \"x\"\n---\n\nbody\n"

	got, _, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if got.ID != "42" {
		t.Errorf("ID = %q, want 42", got.ID)
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	raw := "---\nid: 001\ntitle: \"x\"\nowner: alice\nestimate: 3\n---\n\nbody\n"

	got, _, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if got.ID != "001" || got.Title != "x" {
		t.Errorf("known fields not populated: %+v", got)
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"no block", "# just markdown\n"},
		{"unterminated block", "---\nid: 001\ntitle: \"x\"\n"},
		{"missing id", "---\ntitle: \"x\"\n---\n\nbody\n"},
		{"missing title", "---\nid: 001\n---\n\nbody\n"},
		{"empty file", ""},
		{"block is a list", "---\n- a\n- b\n---\n\nbody\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.raw)
			if !errors.Is(err, ErrInvalidRecord) {
				t.Errorf("Decode() error = %v, want ErrInvalidRecord", err)
			}
		})
	}
}

func TestEncodeFieldOrder(t *testing.T) {
	tk := task.Task{
		ID:        "012",
		Title:     "Ship it",
		Status:    "done",
		Priority:  "medium",
		Tags:      []string{"release"},
		Project:   "core",
		Created:   "2025-01-01",
		Due:       "2025-02-01",
		Completed: "2025-01-20",
		Started:   "2025-01-05",
	}

	want := `---
id: 012
title: "Ship it"
status: done
priority: medium
tags: ["release"]
project: core
created: 2025-01-01
due: 2025-02-01
completed: 2025-01-20
started: 2025-01-05
---

`
	if got := Encode(&tk); got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeOmitsAbsentFields(t *testing.T) {
	tk := task.Task{ID: "001", Title: "Minimal"}

	want := "---\nid: 001\ntitle: \"Minimal\"\n---\n\n"
	if got := Encode(&tk); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestEncodeMultiTag(t *testing.T) {
	tk := task.Task{ID: "001", Title: "x", Tags: []string{"a", "b", "c"}}

	got := Encode(&tk)
	if !strings.Contains(got, `tags: ["a", "b", "c"]`) {
		t.Errorf("Encode() tags line wrong:\n%s", got)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []task.Task{
		{ID: "001", Title: "Minimal"},
		{ID: "002", Title: "With status", Status: "active", Priority: "low"},
		{
			ID: "003", Title: "Everything", Status: "done", Priority: "high",
			Tags: []string{"a", "b"}, Project: "p",
			Created: "2025-01-01", Due: "2025-06-01",
			Completed: "2025-05-01", Started: "2025-02-01",
		},
		{ID: "004", Title: `Quotes "inside" the title`},
	}

	for _, tk := range tests {
		t.Run(tk.Title, func(t *testing.T) {
			body := "## Notes\nhello\n"
			raw := Encode(&tk) + body

			got, gotBody, err := Decode(raw)
			if err != nil {
				t.Fatalf("Decode(Encode()) failed: %v", err)
			}
			if !reflect.DeepEqual(got, tk) {
				t.Errorf("round trip = %+v, want %+v", got, tk)
			}
			if gotBody != body {
				t.Errorf("body round trip = %q, want %q", gotBody, body)
			}
		})
	}
}
