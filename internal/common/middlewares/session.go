package middlewares

import (
	"net/http"
	"time"

	"github.com/c14220110/clinic-portal/internal/common/session"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CookieName cookie yang mengikat browser ke namespace local storage.
const CookieName = "portal_sid"

// Definisikan key untuk echo context
const (
	ContextKeyStorage = "local_storage"
	ContextKeySession = "session"
)

type SessionConfig struct {
	Store  session.Store
	TTL    time.Duration
	Secure bool
}

// Session memasang LocalStorage milik browser ke context. Cookie yang tidak
// ada atau bukan UUID diganti dengan yang baru.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := ""
			if cookie, err := c.Cookie(CookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sid = cookie.Value
				}
			}
			if sid == "" {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    sid,
					Path:     "/",
					MaxAge:   int(cfg.TTL.Seconds()),
					HttpOnly: true,
					Secure:   cfg.Secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			c.Set(ContextKeyStorage, session.NewLocalStorage(cfg.Store, session.NamespaceFor(sid)))
			return next(c)
		}
	}
}

// Storage LocalStorage milik request ini.
func Storage(c echo.Context) session.LocalStorage {
	ls, _ := c.Get(ContextKeyStorage).(session.LocalStorage)
	return ls
}

// SessionContext session.Context untuk request ini.
func SessionContext(c echo.Context) *session.Context {
	return session.NewContext(Storage(c))
}

// CurrentSession sesi yang sudah lolos RouteGuard, nil bila belum.
func CurrentSession(c echo.Context) *session.Session {
	s, _ := c.Get(ContextKeySession).(*session.Session)
	return s
}
