package middleware

import (
	"context"
	"net/http"

	"github.com/mrunankdekhane/task-manager/internal/app/service"
)

type contextKey string

const userIDCtxKey contextKey = "userID"

// RequireSession is the access guard for protected routes: it resolves
// the session cookie to a user ID and stores it in the request context.
// Unauthenticated callers are redirected to the login page. The guard is
// a pure gate; it performs no writes beyond the session lookup.
func RequireSession(sessions *service.SessionManager, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			userID, err := sessions.Resolve(r.Context(), cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), userIDCtxKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user's ID set by RequireSession.
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(string)
	return userID, ok
}
