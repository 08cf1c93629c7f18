package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	//匿名セッションのcookie名
	SessionCookieName = "vs_session"

	CtxSessionIDKey = "session_id" // string
)

// 匿名セッション用ミドルウェア。
// cookieが無ければUUIDを発行してセットする。ログインは要らない。
func Session() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ""

			if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
				sessionID = cookie.Value
			}

			if sessionID == "" {
				sessionID = uuid.NewString()

				c.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(365 * 24 * time.Hour),
				})
			}

			c.Set(CtxSessionIDKey, sessionID)
			return next(c)
		}
	}
}

// GetSessionID はcontextからセッションIDを取り出す。
func GetSessionID(c echo.Context) (string, bool) {
	v := c.Get(CtxSessionIDKey)
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
