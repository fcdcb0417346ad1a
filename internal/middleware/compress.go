package middleware

import (
	"fmt"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// NewCompressHandler returns a middleware that gzips responses for clients
// sending Accept-Encoding: gzip. Bodies shorter than minSize bytes are sent
// uncompressed.
func NewCompressHandler(minSize int) (func(http.Handler) http.Handler, error) {
	wrap, err := gzhttp.NewWrapper(gzhttp.MinSize(minSize))
	if err != nil {
		return nil, fmt.Errorf("middleware.NewCompressHandler: %w", err)
	}
	return func(next http.Handler) http.Handler {
		return wrap(next)
	}, nil
}
