package middleware

import (
	"context"
	"net/http"

	"github.com/mcoot/moviecat/internal/api/apierr"
	"github.com/mcoot/moviecat/internal/model"
)

type contextKey string

const identityContextKey contextKey = "identity"

// SessionSource reports the active session
type SessionSource interface {
	Current() model.Session
}

// RequireSession rejects requests made while no identity is logged in
func RequireSession(sessions SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := sessions.Current()
			if _, ok := session.ActiveIdentityID(); !ok {
				apierr.WriteError(w, model.ErrNotAuthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), identityContextKey, session.Identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity retrieves the identity captured by RequireSession
func GetIdentity(ctx context.Context) *model.Identity {
	identity, _ := ctx.Value(identityContextKey).(*model.Identity)
	return identity
}

// MustGetIdentity retrieves the identity from context or panics
func MustGetIdentity(ctx context.Context) *model.Identity {
	identity := GetIdentity(ctx)
	if identity == nil {
		panic("identity not found in context - RequireSession middleware not applied?")
	}
	return identity
}
