package domain

import "time"

// ExportRow is a single row in the full-data export: one row per entry,
// with list fields flattened for tabular output.
//
// Liked and Disliked keep their submission order.
// Callers that need a joined string (e.g. CSV) should join with "|".
type ExportRow struct {
	ID            int64
	Date          time.Time
	TripDay       int // 1-based day of the trip the entry was logged on; 0 before the trip
	Location      string
	Activities    string
	Liked         []string
	Disliked      []string
	OnsenVisit    bool
	OnsenDetails  string
	WalkingNotes  string
	OverallRating string
}
