package middlewares

import (
	"github.com/c14220110/clinic-portal/internal/common/layout"
	"github.com/labstack/echo/v4"
)

// Shell layout area untuk sesi request ini.
func Shell(c echo.Context, area layout.Area) layout.Shell {
	sess := CurrentSession(c)
	if sess == nil {
		return layout.Shell{Area: area}
	}
	return layout.For(area, sess.User)
}
