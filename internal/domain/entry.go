// Package domain contains the core data types for the Trip Journal application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import (
	"strings"
	"time"
)

// Entry is one daily journal record. Entries are created once and never
// edited or deleted; the store keeps them in submission order.
type Entry struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
	Activities    string    `json:"activities"`
	Liked         []string  `json:"liked"`
	Disliked      []string  `json:"disliked"`
	OnsenVisit    bool      `json:"onsenVisit"`
	OnsenDetails  string    `json:"onsenDetails"`
	WalkingNotes  string    `json:"walkingNotes"`
	OverallRating string    `json:"overallRating"` // "1".."5", empty when not rated
}

// EntryInput carries the user-supplied fields of a submission.
// ID and Date are assigned by the server.
type EntryInput struct {
	Location      string
	Activities    string
	Liked         []string
	Disliked      []string
	OnsenVisit    bool
	OnsenDetails  string
	WalkingNotes  string
	OverallRating string
}

// SplitList parses a comma-separated string into trimmed, non-empty items.
// It always returns a non-nil slice so the JSON form is [] rather than null.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// CleanList trims every item and drops the empty ones.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		if t := strings.TrimSpace(it); t != "" {
			out = append(out, t)
		}
	}
	return out
}
