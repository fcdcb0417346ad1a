// export.go implements GET /api/export.
// Returns every journal entry as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/trip-journal/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"id", "date", "trip_day", "location", "activities",
	"liked", "disliked", "onsen_visit", "onsen_details",
	"walking_notes", "overall_rating",
}

// ExportRow is one row of the JSON export.
type ExportRow struct {
	ID            int64     `json:"id"`
	Date          time.Time `json:"date"`
	TripDay       int       `json:"tripDay"`
	Location      string    `json:"location"`
	Activities    string    `json:"activities"`
	Liked         []string  `json:"liked"`
	Disliked      []string  `json:"disliked"`
	OnsenVisit    bool      `json:"onsenVisit"`
	OnsenDetails  string    `json:"onsenDetails,omitempty"`
	WalkingNotes  string    `json:"walkingNotes,omitempty"`
	OverallRating string    `json:"overallRating,omitempty"`
}

// GetExport handles GET /api/export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "csv" && format != "json" {
		writeJSON(w, http.StatusBadRequest, requestBody("format must be csv or json"))
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.internalError(w, r, err, "failed to export entries")
		return
	}

	if format == "csv" {
		writeCSV(w, rows)
		return
	}
	out := make([]ExportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, ExportRow(row))
	}
	writeJSON(w, http.StatusOK, out)
}

// writeCSV encodes rows as CSV with an attachment disposition.
// List fields within a row are pipe-separated ("|") to keep each entry on a
// single CSV line.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(rowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trip-journal.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// rowToCSVRecord encodes an export row as a flat string slice.
func rowToCSVRecord(r domain.ExportRow) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Date.UTC().Format(time.RFC3339),
		strconv.Itoa(r.TripDay),
		r.Location,
		r.Activities,
		strings.Join(r.Liked, "|"),
		strings.Join(r.Disliked, "|"),
		strconv.FormatBool(r.OnsenVisit),
		r.OnsenDetails,
		r.WalkingNotes,
		r.OverallRating,
	}
}
