package common

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/declared-as-ala/pricewatch-admin-api/internal/auth"
)

type contextKey string

const principalKey contextKey = "principal"

// ContextWithPrincipal stores the authorized principal on the request
// context.
func ContextWithPrincipal(ctx context.Context, principal auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFromContext returns the authorized principal, if any.
func PrincipalFromContext(ctx context.Context) (auth.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(auth.Principal)
	return principal, ok
}

// BearerToken extracts the bearer token from the Authorization header,
// or "" when none is present.
func BearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

// RequireAdmin gates a route subtree on an authorized session. The
// four session states map to distinct responses: settling must not be
// mistaken for a verdict, so it returns 503 and the client retries;
// unauthorized carries the redirect target for the dedicated
// unauthorized view.
func RequireAdmin(log *logrus.Logger, gate *auth.Gate, unauthorizedPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := gate.Resolve(r.Context(), BearerToken(r))
			switch session.State {
			case auth.StateAuthorized:
				ctx := ContextWithPrincipal(r.Context(), session.Principal)
				next.ServeHTTP(w, r.WithContext(ctx))
			case auth.StateAnonymous:
				WriteError(log, w, http.StatusUnauthorized, "authentication required")
			case auth.StateSettling:
				log.WithField("principal", session.Principal.ID).
					Warn("allow-list lookup unresolved, refusing to decide")
				WriteError(log, w, http.StatusServiceUnavailable, "authorization could not be verified, retry")
			default:
				log.WithFields(logrus.Fields{
					"principal": session.Principal.ID,
					"state":     session.State.String(),
				}).Info("admin access refused")
				WriteJSON(log, w, http.StatusForbidden, map[string]string{
					"error":    "not authorized for the admin dashboard",
					"redirect": unauthorizedPath,
				})
			}
		})
	}
}
