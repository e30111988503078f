package middleware

import (
	"io"
	"net/http"
)

// MaxRequestDrainBytes bounds how much of an unread request body is discarded
// after the handler returns. A longer body is closed without reading the rest.
const MaxRequestDrainBytes = 64 << 10

func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body == nil {
				return
			}
			_, _ = io.CopyN(io.Discard, r.Body, MaxRequestDrainBytes)
			_ = r.Body.Close()
		})
	}
}
