package repo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkordes/trip-journal/internal/domain"
)

// NotesHeader marks the section of the notes document that holds learned
// preferences. It is written once, before the first entry's section.
const NotesHeader = "## Learned Preferences"

// NotesRepo appends a human-readable preference summary per entry to a
// markdown document.
type NotesRepo interface {
	// Append writes the summary section for entry to the end of the document.
	// Prior content is never rewritten.
	Append(ctx context.Context, entry domain.Entry) error
}

// markdownNotesRepo appends to a markdown file on disk.
type markdownNotesRepo struct {
	path string
	loc  *time.Location

	mu sync.Mutex
}

// NewNotesRepo constructs a NotesRepo writing to the markdown file at path.
// Section dates are rendered in loc; nil means time.Local.
func NewNotesRepo(path string, loc *time.Location) NotesRepo {
	if loc == nil {
		loc = time.Local
	}
	return &markdownNotesRepo{path: path, loc: loc}
}

// Append writes the header (if the document lacks it) and the entry section
// in a single append.
func (r *markdownNotesRepo) Append(_ context.Context, entry domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := os.ReadFile(r.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("repo.NotesRepo.Append: %w", err)
	}

	var buf bytes.Buffer
	if !bytes.Contains(existing, []byte(NotesHeader)) {
		buf.WriteString("\n\n" + NotesHeader + "\n")
	}
	buf.WriteString(FormatNotesSection(entry, r.loc))

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("repo.NotesRepo.Append: %w", err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("repo.NotesRepo.Append: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("repo.NotesRepo.Append: %w", err)
	}
	return nil
}

// FormatNotesSection renders the markdown section for one entry:
//
//	### 1/14/2026
//	- **Enjoyed**: food, cultural sites
//	- **Avoided**: crowds
//	- **Onsen**: outdoor bath at the ryokan
//	- **Mobility Notes**: stairs were difficult
//
// Bullets whose source field is empty are omitted. The onsen bullet also
// requires OnsenVisit.
func FormatNotesSection(entry domain.Entry, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n### %s\n", entry.Date.In(loc).Format("1/2/2006"))

	if len(entry.Liked) > 0 {
		fmt.Fprintf(&b, "- **Enjoyed**: %s\n", strings.Join(entry.Liked, ", "))
	}
	if len(entry.Disliked) > 0 {
		fmt.Fprintf(&b, "- **Avoided**: %s\n", strings.Join(entry.Disliked, ", "))
	}
	if details := strings.TrimSpace(entry.OnsenDetails); entry.OnsenVisit && details != "" {
		fmt.Fprintf(&b, "- **Onsen**: %s\n", details)
	}
	if entry.WalkingNotes != "" {
		fmt.Fprintf(&b, "- **Mobility Notes**: %s\n", entry.WalkingNotes)
	}
	return b.String()
}
