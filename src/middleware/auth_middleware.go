package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"finance-tracker-server/src/services"
)

type contextKey string

const (
	userIDKey   contextKey = "user_id"
	usernameKey contextKey = "username"
)

// Authenticator rejects requests that lack a valid bearer token and stashes
// the resolved user id and username in the request context. Token failures
// never reach business logic.
func Authenticator(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "missing token")
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			user, err := auth.ResolveToken(r.Context(), tokenString)
			if err != nil {
				log.Printf("ERROR: Rejected request to %s with invalid token: %v", r.URL.Path, err)
				unauthorized(w, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, user.ID)
			ctx = context.WithValue(ctx, usernameKey, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// UserID returns the authenticated user's id from the request context. It is
// only meaningful behind the Authenticator middleware.
func UserID(ctx context.Context) int64 {
	id, _ := ctx.Value(userIDKey).(int64)
	return id
}

func Username(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}
