package middlewares

import (
	"net/http"

	"github.com/c14220110/clinic-portal/internal/common/guard"
	"github.com/labstack/echo/v4"
)

// RequireRole menyempitkan akses di dalam grup yang sudah dijaga RouteGuard.
// Role di luar daftar diarahkan ke halaman login, sama seperti guard utama.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil || !guard.RoleAllowed(sess.User.Role, roles) {
				return c.Redirect(http.StatusFound, guard.LoginPath)
			}
			return next(c)
		}
	}
}
