package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vapestore/internal/config"
	"vapestore/internal/middleware"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func gateConfig() config.Config {
	return config.Config{AgeGateSecret: "test-secret", AgeGateTTL: time.Hour}
}

func signGateToken(t *testing.T, secret string, verified bool, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"verified":    verified,
		"verified_at": time.Now().Unix(),
		"sid":         "sess-1",
		"iat":         time.Now().Unix(),
		"exp":         exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func callWithGate(cfg config.Config, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.AgeGate(cfg)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	_ = h(c)
	return rec
}

func TestAgeGate_NoToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	rec := callWithGate(gateConfig(), req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "age verification required")
}

func TestAgeGate_ValidCookie(t *testing.T) {
	cfg := gateConfig()
	tok := signGateToken(t, cfg.AgeGateSecret, true, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AgeGateCookieName, Value: tok})

	rec := callWithGate(cfg, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAgeGate_ValidBearer(t *testing.T) {
	cfg := gateConfig()
	tok := signGateToken(t, cfg.AgeGateSecret, true, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.Header.Set("Authorization", "Bearer "+tok)

	rec := callWithGate(cfg, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAgeGate_ExpiredToken(t *testing.T) {
	cfg := gateConfig()
	tok := signGateToken(t, cfg.AgeGateSecret, true, time.Now().Add(-time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AgeGateCookieName, Value: tok})

	rec := callWithGate(cfg, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAgeGate_WrongSecret(t *testing.T) {
	cfg := gateConfig()
	tok := signGateToken(t, "other-secret", true, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AgeGateCookieName, Value: tok})

	rec := callWithGate(cfg, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAgeGate_VerifiedFalse(t *testing.T) {
	cfg := gateConfig()
	tok := signGateToken(t, cfg.AgeGateSecret, false, time.Now().Add(time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.AgeGateCookieName, Value: tok})

	rec := callWithGate(cfg, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSession_MintsCookieWhenAbsent(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got string
	h := middleware.Session()(func(c echo.Context) error {
		sid, ok := middleware.GetSessionID(c)
		assert.True(t, ok)
		got = sid
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))
	assert.NotEmpty(t, got)

	//レスポンスにSet-Cookieが付く
	found := false
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			found = true
			assert.Equal(t, got, ck.Value)
			assert.True(t, ck.HttpOnly)
		}
	}
	assert.True(t, found)
}

func TestSession_ReusesExistingCookie(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "existing-sid"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.Session()(func(c echo.Context) error {
		sid, ok := middleware.GetSessionID(c)
		assert.True(t, ok)
		assert.Equal(t, "existing-sid", sid)
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))
}
