// Package service contains the business logic for the Trip Journal API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No file I/O lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gookit/validate"

	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/repo"
)

// EntryService implements business logic for journal entries: submission,
// listing, suggestions and trip progress.
type EntryService struct {
	entries repo.EntryRepo
	notes   repo.NotesRepo
	window  domain.TripWindow
	now     func() time.Time
	log     *slog.Logger
}

// NewEntryService constructs an EntryService.
// notes may be nil to disable the preference notes document.
// now may be nil to use time.Now.
func NewEntryService(entries repo.EntryRepo, notes repo.NotesRepo, window domain.TripWindow, log *slog.Logger, now func() time.Time) *EntryService {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	return &EntryService{entries: entries, notes: notes, window: window, now: now, log: log}
}

// Create validates and persists a new entry, records it in the preference
// notes, and returns it with suggestions computed over the updated journal.
// Returns domain.ErrValidation if required fields are missing or the rating
// is out of range. A notes failure is logged and does not fail the call.
func (s *EntryService) Create(ctx context.Context, in domain.EntryInput) (domain.Entry, []string, error) {
	entry := normalizeInput(in)
	if err := validateEntry(entry); err != nil {
		return domain.Entry{}, nil, err
	}
	entry.Date = s.now().UTC()

	created, err := s.entries.Append(ctx, entry)
	if err != nil {
		return domain.Entry{}, nil, fmt.Errorf("service.EntryService.Create: %w", err)
	}

	if s.notes != nil {
		if err := s.notes.Append(ctx, created); err != nil {
			s.log.ErrorContext(ctx, "failed to update preference notes",
				"entry_id", created.ID,
				"error", err,
			)
		}
	}

	history, err := s.entries.All(ctx)
	if err != nil {
		return domain.Entry{}, nil, fmt.Errorf("service.EntryService.Create: %w", err)
	}
	return created, Suggest(history, created), nil
}

// List returns every entry, oldest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *EntryService) List(ctx context.Context) ([]domain.Entry, error) {
	entries, err := s.entries.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.List: %w", err)
	}
	if entries == nil {
		return []domain.Entry{}, nil
	}
	return entries, nil
}

// Suggestions recomputes suggestions against the latest entry.
// An empty journal yields an empty, non-nil list.
func (s *EntryService) Suggestions(ctx context.Context) ([]string, error) {
	latest, ok, err := s.entries.Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.Suggestions: %w", err)
	}
	if !ok {
		return []string{}, nil
	}
	history, err := s.entries.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.EntryService.Suggestions: %w", err)
	}
	return Suggest(history, latest), nil
}

// Progress returns the trip counters as of now.
func (s *EntryService) Progress(ctx context.Context) (domain.Progress, error) {
	entries, err := s.entries.All(ctx)
	if err != nil {
		return domain.Progress{}, fmt.Errorf("service.EntryService.Progress: %w", err)
	}
	return ComputeProgress(s.window, s.now(), len(entries)), nil
}

// Window returns the trip window the service counts progress against.
func (s *EntryService) Window() domain.TripWindow {
	return s.window
}

// Preferences tallies liked and disliked items across the journal.
func (s *EntryService) Preferences(ctx context.Context) (domain.Preferences, error) {
	entries, err := s.entries.All(ctx)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("service.EntryService.Preferences: %w", err)
	}
	return TallyPreferences(entries), nil
}

// Count returns the number of logged entries. Errors count as zero; it exists
// for gauges that cannot report failures.
func (s *EntryService) Count() int {
	entries, err := s.entries.All(context.Background())
	if err != nil {
		return 0
	}
	return len(entries)
}

// entryForm mirrors the validated fields of a submission.
type entryForm struct {
	Location      string `validate:"required" message:"required:location is required"`
	Activities    string `validate:"required" message:"required:activities is required"`
	OverallRating string `validate:"in:1,2,3,4,5" message:"in:overallRating must be between 1 and 5"`
}

// validateEntry enforces the submission rules:
//   - Location and Activities must be non-empty (whitespace-only is rejected).
//   - OverallRating, if set, must be one of "1".."5".
func validateEntry(e domain.Entry) error {
	v := validate.Struct(&entryForm{
		Location:      e.Location,
		Activities:    e.Activities,
		OverallRating: e.OverallRating,
	})
	if !v.Validate() {
		return fmt.Errorf("%w: %s", domain.ErrValidation, v.Errors.One())
	}
	return nil
}

// normalizeInput trims free-text fields and cleans the preference lists.
// Onsen details are dropped when no onsen was visited.
func normalizeInput(in domain.EntryInput) domain.Entry {
	e := domain.Entry{
		Location:      strings.TrimSpace(in.Location),
		Activities:    strings.TrimSpace(in.Activities),
		Liked:         domain.CleanList(in.Liked),
		Disliked:      domain.CleanList(in.Disliked),
		OnsenVisit:    in.OnsenVisit,
		WalkingNotes:  strings.TrimSpace(in.WalkingNotes),
		OverallRating: strings.TrimSpace(in.OverallRating),
	}
	if e.OnsenVisit {
		e.OnsenDetails = strings.TrimSpace(in.OnsenDetails)
	}
	return e
}
