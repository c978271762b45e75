package middlewares

import (
	"net/http"

	"github.com/shopmitra/shopmitra/app/models"
	"github.com/unrolled/render"
)

// AdminMiddleware must run after AuthMiddleware.
func AdminMiddleware(rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if CurrentRole(r.Context()) != models.RoleAdmin {
				_ = rnd.JSON(w, http.StatusForbidden, map[string]string{"error": "admin access required"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
