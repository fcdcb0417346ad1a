package domain

import "time"

// TripWindow is the fixed date range of the whole trip.
// It is set once at startup and never changes while the server runs.
type TripWindow struct {
	Start time.Time
	End   time.Time
}

// DefaultTripWindow is the trip the journal was built for: 12–20 January 2026.
var DefaultTripWindow = TripWindow{
	Start: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC),
}

// Progress summarises how far into the trip we are.
type Progress struct {
	TotalDays     int `json:"totalDays"`
	DaysElapsed   int `json:"daysElapsed"`
	DaysRemaining int `json:"daysRemaining"`
	EntriesLogged int `json:"entriesLogged"`
}
