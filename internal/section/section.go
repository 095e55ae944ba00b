// Package section locates and edits named second-level markdown sections
// inside a task file body without disturbing unrelated text.
//
// A section opens at a line whose trimmed text starts with "## <heading>"
// and runs until the next "##"-level heading or the end of the body.
// Only exact "##"-level headings terminate a section; "###" and deeper
// headings belong to the section.
package section

import "strings"

// Range is a half-open line range [Start, End) over the body's lines.
// Start is the heading line itself; End is the index of the line that
// closes the section (the next "##" heading, or one past the last line).
type Range struct {
	Start int
	End   int
}

func isHeading(line, heading string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "## "+heading)
}

func closesSection(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "##") && !strings.HasPrefix(trimmed, "###")
}

// Find returns the line range of the named section, or false if the body
// has no such section.
func Find(body, heading string) (Range, bool) {
	lines := splitLines(body)
	for i, line := range lines {
		if !isHeading(line, heading) {
			continue
		}
		end := len(lines)
		for j := i + 1; j < len(lines); j++ {
			if closesSection(lines[j]) {
				end = j
				break
			}
		}
		return Range{Start: i, End: end}, true
	}
	return Range{}, false
}

// Insert adds a line inside the named section: after the first blank line
// in the section if one exists, otherwise immediately before the section's
// end boundary. If the section is absent, a new section heading plus the
// line are appended at the end of the body.
func Insert(body, heading, line string) string {
	r, ok := Find(body, heading)
	if !ok {
		out := body
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return out + "\n## " + heading + "\n" + line + "\n"
	}

	lines := splitLines(body)
	at := r.End
	for i := r.Start + 1; i < r.End; i++ {
		if strings.TrimSpace(lines[i]) == "" {
			at = i + 1
			break
		}
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, line)
	out = append(out, lines[at:]...)
	return joinLines(out, body)
}

// Transform applies fn to every line strictly inside the named section,
// heading excluded, and leaves all other lines untouched. A body without
// the section is returned unchanged.
func Transform(body, heading string, fn func(string) string) string {
	r, ok := Find(body, heading)
	if !ok {
		return body
	}

	lines := splitLines(body)
	for i := r.Start + 1; i < r.End; i++ {
		lines[i] = fn(lines[i])
	}
	return joinLines(lines, body)
}

// splitLines splits a body into lines without a phantom trailing element
// for the final newline.
func splitLines(body string) []string {
	if body == "" {
		return nil
	}
	lines := strings.Split(body, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// joinLines reassembles lines, restoring the original body's trailing
// newline convention.
func joinLines(lines []string, original string) string {
	out := strings.Join(lines, "\n")
	if strings.HasSuffix(original, "\n") {
		out += "\n"
	}
	return out
}
