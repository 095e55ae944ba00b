// Package frontmatter encodes and decodes the delimited metadata block at
// the top of a task file.
//
// Decoding is tolerant: the block is parsed as YAML into a flat mapping,
// scalar values are taken as their literal text, and unknown keys are
// ignored. Encoding is deterministic: fields are re-rendered in a fixed
// order with fixed quoting so that every rewrite of a task file produces
// the same block for the same record.
package frontmatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/crooy/mdtasks/internal/task"
)

// Delimiter is the line that opens and closes the metadata block.
const Delimiter = "---"

// ErrInvalidRecord reports a file whose metadata block is missing, unparsable,
// or lacks the mandatory id/title fields. The store treats it as "skip this
// file", not as a fatal scan error.
var ErrInvalidRecord = errors.New("invalid task record")

// Decode splits raw file content into a task record and the free-form body
// following the metadata block.
//
// The block must start on the first line. Content between the delimiters is
// parsed as a flat key/value mapping. Scalars keep their literal text, so a
// numeric id like 007 stays "007" and date strings pass through untouched.
// A single leading newline after the closing delimiter is consumed so that
// Encode+body round-trips byte for byte.
func Decode(raw string) (task.Task, string, error) {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != Delimiter {
		return task.Task{}, "", fmt.Errorf("%w: no metadata block", ErrInvalidRecord)
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == Delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return task.Task{}, "", fmt.Errorf("%w: unterminated metadata block", ErrInvalidRecord)
	}

	block := strings.Join(lines[1:end], "\n")
	body := strings.Join(lines[end+1:], "\n")
	body = strings.TrimPrefix(body, "\n")

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return task.Task{}, "", fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	t, err := fromDocument(&doc)
	if err != nil {
		return task.Task{}, "", err
	}
	if !t.Valid() {
		return task.Task{}, "", fmt.Errorf("%w: missing id or title", ErrInvalidRecord)
	}
	return t, body, nil
}

// fromDocument populates a task record from the parsed block. Unknown keys
// are ignored; known keys with unusable node kinds are ignored too, matching
// the skip-don't-abort decode policy.
func fromDocument(doc *yaml.Node) (task.Task, error) {
	var t task.Task

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return t, fmt.Errorf("%w: empty metadata block", ErrInvalidRecord)
	}
	mapping := doc.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return t, fmt.Errorf("%w: metadata block is not a key/value mapping", ErrInvalidRecord)
	}

	// Mapping content alternates key node, value node.
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key := mapping.Content[i].Value
		value := mapping.Content[i+1]

		switch key {
		case "id":
			t.ID = scalarText(value)
		case "title":
			t.Title = scalarText(value)
		case "status":
			t.Status = scalarText(value)
		case "priority":
			t.Priority = scalarText(value)
		case "tags":
			if value.Kind != yaml.SequenceNode {
				continue
			}
			tags := make([]string, 0, len(value.Content))
			for _, item := range value.Content {
				if s := scalarText(item); s != "" {
					tags = append(tags, s)
				}
			}
			t.Tags = tags
		case "project":
			t.Project = scalarText(value)
		case "created":
			t.Created = scalarText(value)
		case "due":
			t.Due = scalarText(value)
		case "completed":
			t.Completed = scalarText(value)
		case "started":
			t.Started = scalarText(value)
		}
	}
	return t, nil
}

// scalarText returns the literal text of a scalar node, with quoting already
// removed by the parser. Non-scalar nodes yield "".
func scalarText(n *yaml.Node) string {
	if n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

// Encode renders the metadata block for a record, delimiters included,
// followed by a single blank line. Fields appear in a fixed order and only
// when present; the title is always quoted, tags are rendered as a bracketed
// comma-separated quoted list.
func Encode(t *task.Task) string {
	var b strings.Builder
	b.WriteString(Delimiter + "\n")
	fmt.Fprintf(&b, "id: %s\n", t.ID)
	fmt.Fprintf(&b, "title: %s\n", strconv.Quote(t.Title))
	writeScalar(&b, "status", t.Status)
	writeScalar(&b, "priority", t.Priority)
	if t.Tags != nil {
		quoted := make([]string, len(t.Tags))
		for i, tag := range t.Tags {
			quoted[i] = strconv.Quote(tag)
		}
		fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(quoted, ", "))
	}
	writeScalar(&b, "project", t.Project)
	writeScalar(&b, "created", t.Created)
	writeScalar(&b, "due", t.Due)
	writeScalar(&b, "completed", t.Completed)
	writeScalar(&b, "started", t.Started)
	b.WriteString(Delimiter + "\n\n")
	return b.String()
}

func writeScalar(b *strings.Builder, key, value string) {
	if value != "" {
		fmt.Fprintf(b, "%s: %s\n", key, value)
	}
}
