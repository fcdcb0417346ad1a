package domain

// Preference is a liked or disliked item tallied across the whole journal.
// Identity is determined by Slug, which is always lowercase and hyphenated.
// Name preserves the casing of the first entry that mentioned the item.
type Preference struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

// Preferences groups the liked and disliked tallies, most frequent first.
type Preferences struct {
	Liked    []Preference `json:"liked"`
	Disliked []Preference `json:"disliked"`
}
