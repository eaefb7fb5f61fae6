package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/earntrack/internal/server/models"
)

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// Authenticator resolves a bearer token to the user it identifies.
// *services.UserService implements it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// RequireAuth is the authentication gate every protected route passes
// through: it extracts the bearer token, resolves it to a user, and stores
// the user in the request context. Requests without a valid token are
// rejected with 401 before reaching the handler.
func RequireAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || token == "" {
				RespondWithError(w, http.StatusUnauthorized, "Invalid authentication credentials")
				return
			}

			user, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				RespondWithError(w, http.StatusUnauthorized, "Invalid authentication credentials")
				return
			}

			ctx := context.WithValue(r.Context(), currentUserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(currentUserKey).(*models.User)
	return u, ok
}

// SetHeader is a middleware that sets a response header on every request.
func SetHeader(key, value string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(key, value)
			next.ServeHTTP(w, r)
		})
	}
}
