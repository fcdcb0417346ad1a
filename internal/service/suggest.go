package service

import (
	"slices"
	"strings"

	"github.com/pkordes/trip-journal/internal/domain"
)

// Suggestion messages, in the order the rules that emit them are evaluated.
const (
	SuggestOnsenRoutine    = "Continue daily onsen tradition - look for hotels with on-site facilities"
	SuggestLimitWalking    = "Prioritize taxi transportation and venues with minimal walking"
	SuggestCulturalSites   = "Look for accessible temples or cultural centers with minimal walking"
	SuggestFoodNearby      = "Research restaurants near your accommodation to reduce travel time"
	SuggestTokyoDining     = "Consider department store restaurant floors (depachika) for easy dining options"
	SuggestHokkaidoWeather = "Check weather conditions for skiing and have indoor backup activities ready"
)

// walkingTroubleWords mark a walking note as reporting pain or difficulty.
var walkingTroubleWords = []string{"painful", "difficult"}

// rule is one row of the suggestion table. Each rule contributes at most one
// message; rules do not see each other's results.
type rule struct {
	name    string
	applies func(history []domain.Entry, newest domain.Entry) bool
	message string
}

// rules is evaluated top to bottom; table order is output order.
var rules = []rule{
	{
		name: "onsen-routine",
		applies: func(history []domain.Entry, _ domain.Entry) bool {
			for _, e := range history {
				if !e.OnsenVisit {
					return false
				}
			}
			return true
		},
		message: SuggestOnsenRoutine,
	},
	{
		name: "limit-walking",
		applies: func(history []domain.Entry, _ domain.Entry) bool {
			return slices.ContainsFunc(history, func(e domain.Entry) bool {
				notes := strings.ToLower(e.WalkingNotes)
				return slices.ContainsFunc(walkingTroubleWords, func(w string) bool {
					return strings.Contains(notes, w)
				})
			})
		},
		message: SuggestLimitWalking,
	},
	{
		name: "cultural-sites",
		applies: func(history []domain.Entry, _ domain.Entry) bool {
			return likedAnywhere(history, "cultural-sites")
		},
		message: SuggestCulturalSites,
	},
	{
		name: "food-nearby",
		applies: func(history []domain.Entry, _ domain.Entry) bool {
			return likedAnywhere(history, "food")
		},
		message: SuggestFoodNearby,
	},
	{
		name: "tokyo-dining",
		applies: func(_ []domain.Entry, newest domain.Entry) bool {
			return locationMentions(newest, "tokyo")
		},
		message: SuggestTokyoDining,
	},
	{
		name: "hokkaido-weather",
		applies: func(_ []domain.Entry, newest domain.Entry) bool {
			return locationMentions(newest, "hokkaido", "rusutsu")
		},
		message: SuggestHokkaidoWeather,
	},
}

// Suggest returns next-day suggestions for the journal history, where newest
// is the entry just logged (normally also the last element of history).
// The result depends only on its arguments and is never nil.
func Suggest(history []domain.Entry, newest domain.Entry) []string {
	out := []string{}
	for _, r := range rules {
		if r.applies(history, newest) {
			out = append(out, r.message)
		}
	}
	return out
}

// likedAnywhere reports whether any entry liked an item with the given slug.
func likedAnywhere(history []domain.Entry, slug string) bool {
	for _, e := range history {
		for _, item := range e.Liked {
			if Slugify(item) == slug {
				return true
			}
		}
	}
	return false
}

// locationMentions reports whether the entry's location contains any of the
// given lowercase place names.
func locationMentions(e domain.Entry, places ...string) bool {
	loc := strings.ToLower(e.Location)
	for _, p := range places {
		if strings.Contains(loc, p) {
			return true
		}
	}
	return false
}
