package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/GagstyCommunity/Minutely.xyz/internal/auth"
	model "github.com/GagstyCommunity/Minutely.xyz/internal/models"
	"github.com/GagstyCommunity/Minutely.xyz/internal/store"
	"github.com/GagstyCommunity/Minutely.xyz/internal/utils"
)

type contextKey string

const userContextKey = contextKey("user")

// Auth resolves Authorization bearer tokens to users via the session manager
// and the store.
type Auth struct {
	sessions *auth.Sessions
	store    store.Store
}

func NewAuth(sessions *auth.Sessions, st store.Store) *Auth {
	return &Auth{sessions: sessions, store: st}
}

// Optional injects the user into the request context when a valid token is
// present, and passes through untouched otherwise.
func (a *Auth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, err := a.resolve(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), userContextKey, *user))
		}
		next.ServeHTTP(w, r)
	})
}

// Require rejects the request with 401 before any handler (or storage) runs
// unless a valid session is attached.
func (a *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := a.resolve(r)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), userContextKey, *user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) resolve(r *http.Request) (*model.User, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return nil, errors.New("missing authorization token")
	}

	userID, ok := a.sessions.UserID(token)
	if !ok {
		return nil, errors.New("invalid or expired token")
	}

	return a.store.GetUser(r.Context(), userID)
}

// UserFromContext returns the authenticated user attached by Optional or
// Require, if any.
func UserFromContext(r *http.Request) (model.User, bool) {
	user, ok := r.Context().Value(userContextKey).(model.User)
	return user, ok
}
