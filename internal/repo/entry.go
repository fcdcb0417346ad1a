// Package repo contains all persistence logic for the Trip Journal API.
// Each resource has its own file with an interface and a file-backed implementation.
// No business logic lives here, only file I/O and encoding.
package repo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/pkordes/trip-journal/internal/domain"
)

// EntryRepo defines the persistence operations for journal entries.
// The service layer depends on this interface, not the concrete file implementation,
// which allows the service to be unit-tested with a mock.
type EntryRepo interface {
	// Load reads the journal file into memory, replacing anything held before.
	// A missing file yields an empty journal and no error. A file that cannot be
	// read or decoded also yields an empty journal; the error is returned so the
	// caller can log it, but the repo stays usable.
	Load(ctx context.Context) error

	// Append assigns the entry an ID, adds it to the end of the journal and
	// rewrites the whole file. The persisted entry is returned.
	// Returns an error wrapping domain.ErrStorage if the file could not be written;
	// the in-memory journal is unchanged in that case.
	Append(ctx context.Context, entry domain.Entry) (domain.Entry, error)

	// All returns every entry, oldest first. Never nil.
	All(ctx context.Context) ([]domain.Entry, error)

	// Latest returns the most recent entry, or false when the journal is empty.
	Latest(ctx context.Context) (domain.Entry, bool, error)
}

// fileEntryRepo keeps the journal in memory and mirrors it to a single JSON
// array on disk. mu serialises the read-modify-write cycle of Append.
type fileEntryRepo struct {
	path string

	mu      sync.RWMutex
	entries []domain.Entry
}

// NewEntryRepo constructs an EntryRepo backed by the JSON file at path.
// The journal starts empty; call Load to read existing entries.
func NewEntryRepo(path string) EntryRepo {
	return &fileEntryRepo{path: path, entries: []domain.Entry{}}
}

// Load reads the journal file into memory.
func (r *fileEntryRepo) Load(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = []domain.Entry{}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("repo.EntryRepo.Load: %w", err)
	}

	var entries []domain.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("repo.EntryRepo.Load: decode %s: %w", r.path, err)
	}
	for i := range entries {
		normalizeLists(&entries[i])
	}
	r.entries = entries
	return nil
}

// Append adds the entry and persists the full journal before returning.
func (r *fileEntryRepo) Append(_ context.Context, entry domain.Entry) (domain.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}
	entry.ID = r.nextID(entry.Date)
	normalizeLists(&entry)

	next := make([]domain.Entry, len(r.entries), len(r.entries)+1)
	copy(next, r.entries)
	next = append(next, entry)

	if err := r.save(next); err != nil {
		return domain.Entry{}, fmt.Errorf("repo.EntryRepo.Append: %w: %w", domain.ErrStorage, err)
	}
	r.entries = next
	return entry, nil
}

// All returns a copy of the journal so callers cannot mutate stored entries.
func (r *fileEntryRepo) All(_ context.Context) ([]domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Entry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}

// Latest returns the last entry appended.
func (r *fileEntryRepo) Latest(_ context.Context) (domain.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.entries) == 0 {
		return domain.Entry{}, false, nil
	}
	return r.entries[len(r.entries)-1], true, nil
}

// nextID derives the ID from the entry's timestamp in milliseconds, bumped past
// the previous ID so IDs stay strictly increasing even for same-millisecond
// submissions or a clock that moved backwards.
// Caller must hold r.mu.
func (r *fileEntryRepo) nextID(at time.Time) int64 {
	id := at.UnixMilli()
	if n := len(r.entries); n > 0 && id <= r.entries[n-1].ID {
		id = r.entries[n-1].ID + 1
	}
	return id
}

// save writes entries to a uniquely named temp file in the target directory,
// syncs it and renames it over the journal so readers never see a torn file.
func (r *fileEntryRepo) save(entries []domain.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmpFile := r.path + "." + uuid.NewString() + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, r.path); err != nil {
		os.Remove(tmpFile)
		return err
	}
	return nil
}

// normalizeLists replaces nil list fields with empty slices so they encode as [].
func normalizeLists(e *domain.Entry) {
	if e.Liked == nil {
		e.Liked = []string{}
	}
	if e.Disliked == nil {
		e.Disliked = []string{}
	}
}
