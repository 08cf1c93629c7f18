package middleware

import (
	"errors"
	"net/http"
	"strings"

	"vapestore/internal/config"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	//年齢ゲート通過トークンのcookie名
	AgeGateCookieName = "vs_age_verified"

	CtxAgeVerifiedKey   = "age_verified"    // bool
	CtxAgeVerifiedAtKey = "age_verified_at" // int64 (unix)
)

// 年齢ゲート。チェックアウトと注文のルートに掛ける。
// 署名付きトークン（cookieまたはBearer）が無い・不正・期限切れなら403。
func AgeGate(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawToken := extractGateToken(c)
			if rawToken == "" {
				return c.JSON(http.StatusForbidden, errorJSON("age verification required"))
			}

			//JWTをパースして検証する
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.AgeGateSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusForbidden, errorJSON("age verification required"))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusForbidden, errorJSON("age verification required"))
			}

			verified, ok := claims["verified"].(bool)
			if !ok || !verified {
				return c.JSON(http.StatusForbidden, errorJSON("age verification required"))
			}

			//確認時刻を取り出す
			var verifiedAt int64
			if v, ok := claims["verified_at"].(float64); ok {
				verifiedAt = int64(v)
			}

			c.Set(CtxAgeVerifiedKey, true)
			c.Set(CtxAgeVerifiedAtKey, verifiedAt)

			return next(c)
		}
	}
}

// cookie優先、無ければAuthorization: Bearer
func extractGateToken(c echo.Context) string {
	if cookie, err := c.Cookie(AgeGateCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authz := c.Request().Header.Get("Authorization")
	if authz == "" {
		return ""
	}

	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func errorJSON(msg string) map[string]string {
	return map[string]string{"error": msg}
}
