package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"agri-advice/internal/infra/logger"
)

type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware verifies the Bearer token and stores the caller's identity
// in the request context. Token issuance happens elsewhere; this only checks.
func AuthMiddleware(log *logger.Logger, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if header == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeAuthError(w, http.StatusUnauthorized, "Access denied. No token provided.")
				return
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))
			if err != nil || !token.Valid {
				log.Warn(fmt.Sprintf("Rejected token: %v", err))
				writeAuthError(w, http.StatusForbidden, "Invalid token.")
				return
			}

			identity, _ := claims["id"].(string)
			if identity == "" {
				writeAuthError(w, http.StatusForbidden, "Invalid token.")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Identity returns the authenticated user id stored by AuthMiddleware.
func Identity(ctx context.Context) string {
	identity, _ := ctx.Value(identityKey).(string)
	return identity
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
