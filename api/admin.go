package api

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// AdminMiddleware guards the maintenance routes with a signed admin JWT.
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		claims, err := parseAdminToken(r)
		if err != nil {
			zap.S().Errorw("admin auth rejected",
				"url", r.URL,
				"error", err)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		if sub, _ := claims["sub"].(string); sub != "" {
			r = r.WithContext(WithUserID(r.Context(), sub))
		}
		next.ServeHTTP(w, r)
	})
}

func parseAdminToken(r *http.Request) (jwt.MapClaims, error) {
	header := r.Header.Get("Authorization")
	parts := strings.Split(header, "Bearer ")
	if len(parts) < 2 || parts[1] == "" {
		return nil, fmt.Errorf("missing bearer token")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	token, err := jwt.Parse(parts[1], func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected claims type")
	}
	if scope, _ := claims["scope"].(string); scope != "admin" {
		return nil, fmt.Errorf("missing admin scope")
	}
	return claims, nil
}
