package service_test

import (
	"context"

	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/repo"
)

// mockEntryRepo is a hand-written test double for repo.EntryRepo.
// Each method is a function field; set only the ones your test needs.
type mockEntryRepo struct {
	load   func(ctx context.Context) error
	append func(ctx context.Context, e domain.Entry) (domain.Entry, error)
	all    func(ctx context.Context) ([]domain.Entry, error)
	latest func(ctx context.Context) (domain.Entry, bool, error)
}

func (m *mockEntryRepo) Load(ctx context.Context) error { return m.load(ctx) }
func (m *mockEntryRepo) Append(ctx context.Context, e domain.Entry) (domain.Entry, error) {
	return m.append(ctx, e)
}
func (m *mockEntryRepo) All(ctx context.Context) ([]domain.Entry, error) { return m.all(ctx) }
func (m *mockEntryRepo) Latest(ctx context.Context) (domain.Entry, bool, error) {
	return m.latest(ctx)
}

// compile-time check: mockEntryRepo must satisfy repo.EntryRepo.
var _ repo.EntryRepo = (*mockEntryRepo)(nil)

// memoryRepo returns a mockEntryRepo that keeps appended entries in a slice,
// assigning sequential IDs. Useful when a test cares about flow, not storage.
func memoryRepo(seed ...domain.Entry) *mockEntryRepo {
	entries := append([]domain.Entry{}, seed...)
	return &mockEntryRepo{
		append: func(_ context.Context, e domain.Entry) (domain.Entry, error) {
			e.ID = int64(len(entries) + 1)
			entries = append(entries, e)
			return e, nil
		},
		all: func(_ context.Context) ([]domain.Entry, error) {
			return append([]domain.Entry{}, entries...), nil
		},
		latest: func(_ context.Context) (domain.Entry, bool, error) {
			if len(entries) == 0 {
				return domain.Entry{}, false, nil
			}
			return entries[len(entries)-1], true, nil
		},
	}
}

// mockNotesRepo is a hand-written test double for repo.NotesRepo.
type mockNotesRepo struct {
	appendFn func(ctx context.Context, e domain.Entry) error
	calls    int
}

func (m *mockNotesRepo) Append(ctx context.Context, e domain.Entry) error {
	m.calls++
	if m.appendFn == nil {
		return nil
	}
	return m.appendFn(ctx, e)
}

var _ repo.NotesRepo = (*mockNotesRepo)(nil)
