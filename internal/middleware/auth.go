package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/yorgoszy/code-sneak-peek-sub012/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const (
	AuthTokenHeader = "X-TRAINING-TOKEN"
	// MCP clients are configured with a static header; accept it on /mcp only.
	MCPSecretHeader = "X-MCP-Secret"
)

type AuthMiddlewareHandler struct {
	apiSecret    string
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(apiSecret string) *AuthMiddlewareHandler {
	if apiSecret == "" {
		log.Warnln("api secret not set, all protected routes will answer 401")
	}
	return &AuthMiddlewareHandler{
		apiSecret: apiSecret,
		allowedPaths: map[string]bool{
			"/":       true,
			"/health": true,
		},
	}
}

func (h *AuthMiddlewareHandler) tokenValid(token string) bool {
	if h.apiSecret == "" || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.apiSecret)) == 1
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(AuthTokenHeader)
			if authToken == "" && strings.HasPrefix(r.URL.Path, "/mcp") {
				authToken = r.Header.Get(MCPSecretHeader)
			}

			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !h.tokenValid(authToken) {
				log.Warnf("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
