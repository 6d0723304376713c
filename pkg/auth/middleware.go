package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/onewin/pkg/utils"
)

type ContextKey string

const UserIDKey ContextKey = "userID"

type TokenValidator interface {
	ValidateToken(tokenString string) (*Claims, error)
}

// Middleware resolves the bearer token to an account id stored under UserIDKey.
func Middleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := validator.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func UserID(ctx context.Context) string {
	id, _ := ctx.Value(UserIDKey).(string)
	return id
}
