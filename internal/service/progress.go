package service

import (
	"math"
	"time"

	"github.com/pkordes/trip-journal/internal/domain"
)

const day = 24 * time.Hour

// ComputeProgress returns the trip counters for the given moment.
//
// Days are counted as ceil(elapsed / 24h) from the trip start instant, so the
// start instant itself is day 0 and any time later that day is day 1.
// Before the trip starts DaysElapsed is 0, never negative.
func ComputeProgress(window domain.TripWindow, now time.Time, entries int) domain.Progress {
	total := ceilDays(window.End.Sub(window.Start))
	elapsed := max(0, ceilDays(now.Sub(window.Start)))
	return domain.Progress{
		TotalDays:     total,
		DaysElapsed:   elapsed,
		DaysRemaining: max(0, total-elapsed),
		EntriesLogged: entries,
	}
}

// TripDay returns the 1-based trip day that t falls on, or 0 before the trip.
func TripDay(window domain.TripWindow, t time.Time) int {
	if t.Before(window.Start) {
		return 0
	}
	return int(t.Sub(window.Start)/day) + 1
}

func ceilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(day)))
}
