package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

var corsAllowedHeaders = []string{
	"Accept",
	"Content-Type",
	"Content-Length",
	"Accept-Encoding",
	"Authorization",
	AuthTokenHeader,
	MCPSecretHeader,
	"MCP-Protocol-Version",
	"MCP-Session-Id",
}

// Cors answers preflight requests and sets the CORS headers for the given
// origins. An empty list allows any origin.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: corsAllowedHeaders,
		ExposedHeaders: []string{"MCP-Session-Id", "X-RateLimit-Remaining"},
	})
	return c.Handler
}
