package service

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"github.com/pkordes/trip-journal/internal/domain"
)

// Slugify normalises a liked/disliked item for comparison:
// lowercase, with every run of non-alphanumeric characters replaced by one
// hyphen and leading/trailing hyphens removed.
// "Cultural Sites", " cultural  sites " and "cultural-sites" all yield
// "cultural-sites".
func Slugify(name string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// TallyPreferences counts how often each liked and disliked item appears
// across history. Items are grouped by slug and sorted by count descending,
// then slug ascending. Both slices are non-nil.
func TallyPreferences(history []domain.Entry) domain.Preferences {
	return domain.Preferences{
		Liked:    tally(history, func(e domain.Entry) []string { return e.Liked }),
		Disliked: tally(history, func(e domain.Entry) []string { return e.Disliked }),
	}
}

func tally(history []domain.Entry, items func(domain.Entry) []string) []domain.Preference {
	index := map[string]int{}
	out := []domain.Preference{}
	for _, e := range history {
		for _, name := range items(e) {
			slug := Slugify(name)
			if slug == "" {
				continue
			}
			if i, ok := index[slug]; ok {
				out[i].Count++
				continue
			}
			index[slug] = len(out)
			out = append(out, domain.Preference{Name: strings.TrimSpace(name), Slug: slug, Count: 1})
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Preference) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Slug, b.Slug)
	})
	return out
}
