package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-journal/internal/domain"
)

// CreateEntryRequest is the body of POST /api/entries.
// Liked and Disliked accept a comma-joined string or a JSON array;
// OnsenVisit accepts a boolean or a checkbox-style string ("on").
type CreateEntryRequest struct {
	Location      string   `json:"location"`
	Activities    string   `json:"activities"`
	Liked         listText `json:"liked"`
	Disliked      listText `json:"disliked"`
	OnsenVisit    formBool `json:"onsenVisit"`
	OnsenDetails  string   `json:"onsenDetails"`
	WalkingNotes  string   `json:"walkingNotes"`
	OverallRating string   `json:"overallRating"`
}

// CreateEntryResponse is the success envelope of POST /api/entries.
type CreateEntryResponse struct {
	Success     bool         `json:"success"`
	Entry       domain.Entry `json:"entry"`
	Suggestions []string     `json:"suggestions"`
}

// ProgressResponse is the body of GET /api/progress.
type ProgressResponse struct {
	domain.Progress
	TripStart openapi_types.Date `json:"tripStart"`
	TripEnd   openapi_types.Date `json:"tripEnd"`
}

// ListEntries handles GET /api/entries.
func (s *Server) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.entries.List(r.Context())
	if err != nil {
		s.internalError(w, r, err, "failed to load entries")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// CreateEntry handles POST /api/entries.
func (s *Server) CreateEntry(w http.ResponseWriter, r *http.Request) {
	// Read the whole body first: the JSON decoder does not surface
	// *http.MaxBytesError from the underlying reader.
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, tooLargeBody())
			return
		}
		writeJSON(w, http.StatusBadRequest, requestBody("could not read request body"))
		return
	}

	var body CreateEntryRequest
	if err := json.Unmarshal(raw, &body); err != nil {
		writeJSON(w, http.StatusBadRequest, requestBody("request body must be a JSON object"))
		return
	}

	entry, suggestions, err := s.entries.Create(r.Context(), requestToInput(body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		s.internalError(w, r, err, "failed to save entry")
		return
	}

	writeJSON(w, http.StatusCreated, CreateEntryResponse{
		Success:     true,
		Entry:       entry,
		Suggestions: suggestions,
	})
}

// GetSuggestions handles GET /api/suggestions.
func (s *Server) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	suggestions, err := s.entries.Suggestions(r.Context())
	if err != nil {
		s.internalError(w, r, err, "failed to compute suggestions")
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, suggestions)
}

// GetProgress handles GET /api/progress.
func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := s.entries.Progress(r.Context())
	if err != nil {
		s.internalError(w, r, err, "failed to compute progress")
		return
	}
	window := s.entries.Window()
	writeJSON(w, http.StatusOK, ProgressResponse{
		Progress:  progress,
		TripStart: openapi_types.Date{Time: window.Start},
		TripEnd:   openapi_types.Date{Time: window.End},
	})
}

// GetPreferences handles GET /api/preferences.
func (s *Server) GetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := s.entries.Preferences(r.Context())
	if err != nil {
		s.internalError(w, r, err, "failed to load preferences")
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// internalError logs err and writes a generic 500 envelope.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	s.log.ErrorContext(r.Context(), message, "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, internalBody(message))
}

// --- mapping helpers --------------------------------------------------------

// requestToInput converts a CreateEntryRequest body into a domain.EntryInput.
func requestToInput(body CreateEntryRequest) domain.EntryInput {
	return domain.EntryInput{
		Location:      body.Location,
		Activities:    body.Activities,
		Liked:         []string(body.Liked),
		Disliked:      []string(body.Disliked),
		OnsenVisit:    bool(body.OnsenVisit),
		OnsenDetails:  body.OnsenDetails,
		WalkingNotes:  body.WalkingNotes,
		OverallRating: body.OverallRating,
	}
}

// listText decodes either "a, b" or ["a", "b"] into a list of items.
type listText []string

func (l *listText) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = listText{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*l = listText(domain.SplitList(s))
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected a comma-separated string or an array of strings")
	}
	*l = listText(domain.CleanList(items))
	return nil
}

// formBool decodes a JSON boolean, or the string an HTML checkbox submits.
type formBool bool

func (b *formBool) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = false
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = formBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a boolean")
	}
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "yes", "1":
		*b = true
	case "", "off", "false", "no", "0":
		*b = false
	default:
		return fmt.Errorf("expected a boolean, got %q", s)
	}
	return nil
}
