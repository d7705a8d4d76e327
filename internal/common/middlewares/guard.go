package middlewares

import (
	"net/http"

	"github.com/c14220110/clinic-portal/internal/common/guard"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RouteGuard hanya meneruskan request bila sesi di local storage punya role
// yang diizinkan. Selain itu redirect 302 ke halaman login.
func RouteGuard(logger *zap.Logger, allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Get(ContextKeyStorage) == nil {
				return c.Redirect(http.StatusFound, guard.LoginPath)
			}
			d := guard.Check(c.Request().Context(), Storage(c), allowedRoles)
			if !d.Allowed {
				logger.Info("route guard redirect",
					zap.String("path", c.Request().URL.Path),
					zap.String("reason", string(d.Reason)),
				)
				return c.Redirect(http.StatusFound, d.Redirect)
			}
			c.Set(ContextKeySession, d.Session)
			return next(c)
		}
	}
}
