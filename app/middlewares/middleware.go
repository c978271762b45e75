package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopmitra/shopmitra/app/helpers"
	"github.com/unrolled/render"
)

// AuthMiddleware resolves the current user from the Authorization header.
// Absent or invalid tokens are rejected with 401 before any handler runs.
func AuthMiddleware(jwtSecret string, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, errors.New("unexpected token signing method")
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !token.Valid {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid or expired token"})
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token claims"})
				return
			}
			userID, _ := claims["user_id"].(string)
			role, _ := claims["role"].(string)
			if userID == "" {
				_ = rnd.JSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid token claims"})
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyUserID, userID)
			ctx = context.WithValue(ctx, helpers.ContextKeyRole, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUserID returns the authenticated user id stored by AuthMiddleware.
func CurrentUserID(ctx context.Context) string {
	if id, ok := ctx.Value(helpers.ContextKeyUserID).(string); ok {
		return id
	}
	return ""
}

func CurrentRole(ctx context.Context) string {
	if role, ok := ctx.Value(helpers.ContextKeyRole).(string); ok {
		return role
	}
	return ""
}
