package section

import (
	"strings"
	"testing"
)

const sampleBody = `# Task Details

## Notes
Some context here.

### Background
Deeper heading stays inside Notes.

## Checklist
- [ ] first
- [x] second

## References
- link one
`

func TestFind(t *testing.T) {
	tests := []struct {
		heading   string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		{"Notes", 2, 8, true},
		{"Checklist", 8, 12, true},
		{"References", 12, 14, true},
		{"Missing", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			r, ok := Find(sampleBody, tt.heading)
			if ok != tt.wantOK {
				t.Fatalf("Find(%q) ok = %v, want %v", tt.heading, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if r.Start != tt.wantStart || r.End != tt.wantEnd {
				t.Errorf("Find(%q) = [%d, %d), want [%d, %d)",
					tt.heading, r.Start, r.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestFindSubHeadingDoesNotClose(t *testing.T) {
	r, ok := Find(sampleBody, "Notes")
	if !ok {
		t.Fatal("Notes section not found")
	}

	lines := strings.Split(sampleBody, "\n")
	section := strings.Join(lines[r.Start:r.End], "\n")
	if !strings.Contains(section, "### Background") {
		t.Errorf("### sub-heading should stay inside the section, got:\n%s", section)
	}
	if strings.Contains(section, "## Checklist") {
		t.Errorf("next ## heading should close the section, got:\n%s", section)
	}
}

func TestFindDeepHeadingDoesNotClose(t *testing.T) {
	body := "## Notes\nabove\n#### Deep\nbelow\n## Checklist\n- [ ] item\n"

	r, ok := Find(body, "Notes")
	if !ok {
		t.Fatal("Notes section not found")
	}
	// "####" carries the "###" prefix, so it stays inside like any deeper
	// heading; only an exact "##"-level line closes the section.
	if r.Start != 0 || r.End != 4 {
		t.Errorf("Find(Notes) = [%d, %d), want [0, 4)", r.Start, r.End)
	}

	lines := strings.Split(body, "\n")
	section := strings.Join(lines[r.Start:r.End], "\n")
	if !strings.Contains(section, "#### Deep") || !strings.Contains(section, "below") {
		t.Errorf("#### heading should stay inside the section, got:\n%s", section)
	}
}

func TestTransformSpansDeepHeading(t *testing.T) {
	upper := func(line string) string { return strings.ToUpper(line) }

	got := Transform("## Notes\nabc\n#### deep\ndef\n## Checklist\nghi\n", "Notes", upper)
	want := "## Notes\nABC\n#### DEEP\nDEF\n## Checklist\nghi\n"
	if got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestInsertAfterBlankLine(t *testing.T) {
	body := "## Checklist\n\n## Next\nother\n"

	got := Insert(body, "Checklist", "- [ ] new item")
	want := "## Checklist\n\n- [ ] new item\n## Next\nother\n"
	if got != want {
		t.Errorf("Insert() = %q, want %q", got, want)
	}
}

func TestInsertBeforeBoundaryWhenNoBlank(t *testing.T) {
	body := "## Checklist\n- [ ] first\n## Next\nother\n"

	got := Insert(body, "Checklist", "- [ ] new item")
	want := "## Checklist\n- [ ] first\n- [ ] new item\n## Next\nother\n"
	if got != want {
		t.Errorf("Insert() = %q, want %q", got, want)
	}
}

func TestInsertAtEndOfBody(t *testing.T) {
	body := "# Task Details\n\n## Checklist\n"

	got := Insert(body, "Checklist", "- [ ] only item")
	want := "# Task Details\n\n## Checklist\n- [ ] only item\n"
	if got != want {
		t.Errorf("Insert() = %q, want %q", got, want)
	}
}

func TestInsertCreatesAbsentSection(t *testing.T) {
	body := "# Task Details\n\n## Notes\nhello\n"

	got := Insert(body, "Checklist", "- [ ] only item")
	want := "# Task Details\n\n## Notes\nhello\n\n## Checklist\n- [ ] only item\n"
	if got != want {
		t.Errorf("Insert() = %q, want %q", got, want)
	}
}

func TestInsertIntoEmptyBody(t *testing.T) {
	got := Insert("", "Notes", "a note")
	want := "\n## Notes\na note\n"
	if got != want {
		t.Errorf("Insert() = %q, want %q", got, want)
	}
}

func TestTransformOnlyInsideSection(t *testing.T) {
	upper := func(line string) string { return strings.ToUpper(line) }

	got := Transform("## Notes\nabc\n\n## Checklist\ndef\n", "Checklist", upper)
	want := "## Notes\nabc\n\n## Checklist\nDEF\n"
	if got != want {
		t.Errorf("Transform() = %q, want %q", got, want)
	}
}

func TestTransformLeavesHeadingAlone(t *testing.T) {
	count := 0
	Transform("## Checklist\n- [ ] a\n- [ ] b\n", "Checklist", func(line string) string {
		count++
		return line
	})
	if count != 2 {
		t.Errorf("mapper ran %d times, want 2 (heading excluded)", count)
	}
}

func TestTransformMissingSection(t *testing.T) {
	body := "## Notes\nabc\n"
	got := Transform(body, "Checklist", strings.ToUpper)
	if got != body {
		t.Errorf("Transform() on missing section = %q, want unchanged", got)
	}
}
