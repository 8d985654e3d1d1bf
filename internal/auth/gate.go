package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	apperrors "jumatrek/pkg/errors"
	httputil "jumatrek/pkg/http"
	"jumatrek/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

const (
	AdminKeyHeader = "X-Admin-Key"
	bearerPrefix   = "Bearer "
)

type contextKey struct{}

// Gate guards admin routes. With no key and no token issuer it is open and
// admits every request.
type Gate struct {
	apiKey string
	tokens *TokenIssuer
	log    *logger.Logger
}

func NewGate(apiKey string, tokens *TokenIssuer, log *logger.Logger) *Gate {
	return &Gate{apiKey: apiKey, tokens: tokens, log: log}
}

func (g *Gate) Open() bool {
	return g.apiKey == "" && g.tokens == nil
}

// Authorize returns the verified claims for bearer tokens, nil claims for the
// shared key or open mode, and Unauthorized otherwise.
func (g *Gate) Authorize(r *http.Request) (*Claims, error) {
	if g.Open() {
		return nil, nil
	}

	if key := r.Header.Get(AdminKeyHeader); key != "" && g.matchesKey(key) {
		return nil, nil
	}

	if raw, ok := bearerToken(r); ok {
		if g.matchesKey(raw) {
			return nil, nil
		}
		if g.tokens != nil {
			claims, err := g.tokens.Verify(raw)
			if err == nil {
				return claims, nil
			}
			g.log.Debug("Rejected bearer token", "error", err)
		}
	}

	return nil, apperrors.Unauthorized("Unauthorized")
}

func (g *Gate) matchesKey(candidate string) bool {
	if g.apiKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(g.apiKey)) == 1
}

// Require wraps an admin-only route.
func (g *Gate) Require(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := g.Authorize(r)
		if err != nil {
			g.log.Warn("Admin access denied",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
			)
			httputil.WriteError(w, err)
			return
		}
		if claims != nil {
			r = r.WithContext(context.WithValue(r.Context(), contextKey{}, claims))
		}
		next(w, r, ps)
	}
}

// ClaimsFromContext returns the token claims of the caller, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(contextKey{}).(*Claims)
	return claims, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(bearerPrefix):]), true
}
