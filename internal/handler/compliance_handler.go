package handler

import (
	"net/http"
	"strconv"
	"time"

	"vapestore/internal/domain/model"
	"vapestore/internal/middleware"
	"vapestore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /compliance のHTTP。年齢確認とコンプライアンス文面。
type ComplianceHandler struct {
	uc *usecase.ComplianceUsecase
}

// DI
func NewComplianceHandler(uc *usecase.ComplianceUsecase) *ComplianceHandler {
	return &ComplianceHandler{uc: uc}
}

type VerifyAgeRequest struct {
	BirthYear  int `json:"birth_year"`
	BirthMonth int `json:"birth_month"`
	BirthDay   int `json:"birth_day"`
}

type VerifyCheckboxRequest struct {
	Confirmed bool `json:"confirmed"`
}

type VerificationStatusResponse struct {
	IsVerified bool   `json:"is_verified"`
	Method     string `json:"method,omitempty"`
	VerifiedAt int64  `json:"verified_at,omitempty"`
}

func (h *ComplianceHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/compliance")

	g.POST("/verify-age", h.verifyAge)
	g.POST("/verify-checkbox", h.verifyCheckbox)
	g.GET("/status", h.status)
	g.GET("/content/:type", h.content)

	//照会用（規制対応）
	g.GET("/verifications", h.listVerifications)
}

func (h *ComplianceHandler) verifyAge(c echo.Context) error {
	var req VerifyAgeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.VerifyByBirthdate(c.Request().Context(), requestMeta(c), usecase.BirthdateInput{
		Year:  req.BirthYear,
		Month: req.BirthMonth,
		Day:   req.BirthDay,
	})
	if err != nil {
		return writeError(c, err)
	}

	setGateCookie(c, out)
	return c.JSON(http.StatusOK, out)
}

func (h *ComplianceHandler) verifyCheckbox(c echo.Context) error {
	var req VerifyCheckboxRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.VerifyByCheckbox(c.Request().Context(), requestMeta(c), req.Confirmed)
	if err != nil {
		return writeError(c, err)
	}

	setGateCookie(c, out)
	return c.JSON(http.StatusOK, out)
}

func (h *ComplianceHandler) status(c echo.Context) error {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		return c.JSON(http.StatusOK, VerificationStatusResponse{IsVerified: false})
	}

	rec, err := h.uc.LatestVerification(c.Request().Context(), sessionID)
	if err != nil {
		return writeError(c, err)
	}
	if rec == nil {
		return c.JSON(http.StatusOK, VerificationStatusResponse{IsVerified: false})
	}

	return c.JSON(http.StatusOK, VerificationStatusResponse{
		IsVerified: rec.IsVerified,
		Method:     string(rec.Method),
		VerifiedAt: rec.VerifiedAt.Unix(),
	})
}

func (h *ComplianceHandler) content(c echo.Context) error {
	out, err := h.uc.GetComplianceContent(model.ComplianceContentType(c.Param("type")))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ComplianceHandler) listVerifications(c echo.Context) error {
	in := usecase.ListVerificationsInput{
		SessionID: c.QueryParam("session_id"),
		Method:    c.QueryParam("method"),
	}

	if v := c.QueryParam("verified"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid verified"})
		}
		in.Verified = &b
	}

	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		in.Limit = n
	}

	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid offset"})
		}
		in.Offset = n
	}

	rows, err := h.uc.ListVerifications(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, rows)
}

// 監査レコードに残すリクエスト情報
func requestMeta(c echo.Context) usecase.RequestMeta {
	sessionID, _ := middleware.GetSessionID(c)

	return usecase.RequestMeta{
		SessionID: sessionID,
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
}

// 判定に成功したらゲート通過トークンをcookieにも入れる
func setGateCookie(c echo.Context, out usecase.VerificationOutput) {
	if !out.IsVerified || out.Token == "" {
		return
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AgeGateCookieName,
		Value:    out.Token,
		Path:     "/",
		Expires:  time.Unix(out.ExpiresAt, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
