package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-journal/internal/domain"
	"github.com/pkordes/trip-journal/internal/repo"
)

// ExportService assembles a flat export of every journal entry.
type ExportService struct {
	entries repo.EntryRepo
	window  domain.TripWindow
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(entries repo.EntryRepo, window domain.TripWindow) *ExportService {
	return &ExportService{entries: entries, window: window}
}

// Export returns one ExportRow per entry, oldest first.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	entries, err := s.entries.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := make([]domain.ExportRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, domain.ExportRow{
			ID:            e.ID,
			Date:          e.Date,
			TripDay:       TripDay(s.window, e.Date),
			Location:      e.Location,
			Activities:    e.Activities,
			Liked:         e.Liked,
			Disliked:      e.Disliked,
			OnsenVisit:    e.OnsenVisit,
			OnsenDetails:  e.OnsenDetails,
			WalkingNotes:  e.WalkingNotes,
			OverallRating: e.OverallRating,
		})
	}
	return rows, nil
}
