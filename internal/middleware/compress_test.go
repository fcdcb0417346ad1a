package middleware_test

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-journal/internal/middleware"
)

// textHandler writes body as JSON-typed text.
func textHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})
}

// TestCompressHandler_gzipsLargeBodies verifies that a response above the
// minimum size is gzipped for a client that accepts it, and decodes intact.
func TestCompressHandler_gzipsLargeBodies(t *testing.T) {
	mw, err := middleware.NewCompressHandler(256)
	require.NoError(t, err)
	body := "[" + strings.Repeat(`"Research restaurants near your accommodation",`, 40) + `""]`
	h := mw(textHandler(body))

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	got, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, body, string(got))
}

// TestCompressHandler_skipsSmallBodies verifies that short responses are sent as-is.
func TestCompressHandler_skipsSmallBodies(t *testing.T) {
	mw, err := middleware.NewCompressHandler(256)
	require.NoError(t, err)
	h := mw(textHandler("[]"))

	req := httptest.NewRequest(http.MethodGet, "/api/suggestions", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "[]", rec.Body.String())
}

// TestCompressHandler_respectsAcceptEncoding verifies clients that do not
// accept gzip get the plain body.
func TestCompressHandler_respectsAcceptEncoding(t *testing.T) {
	mw, err := middleware.NewCompressHandler(16)
	require.NoError(t, err)
	body := strings.Repeat("x", 512)
	h := mw(textHandler(body))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/entries", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, body, rec.Body.String())
}
