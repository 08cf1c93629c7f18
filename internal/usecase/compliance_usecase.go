package usecase

import (
	"context"
	"log"
	"net/http"
	"time"

	"vapestore/internal/config"
	"vapestore/internal/domain/model"
	repo "vapestore/internal/repository"

	"github.com/golang-jwt/jwt/v4"
)

// 監査レコードの書き込みに使う上限時間。
// 書き込みが遅くても判定の応答を遅らせない。
const auditWriteTimeout = 2 * time.Second

// リクエスト由来のメタ情報（監査レコードに残す）
type RequestMeta struct {
	UserID    *int64
	SessionID string
	IPAddress string
	UserAgent string
}

// 生年月日の入力。範囲チェックのみ行い、
// 暦として成立しない組み合わせ（4/31など）はtime.Dateの繰り上げに任せる。
type BirthdateInput struct {
	Year  int
	Month int
	Day   int
}

type VerificationOutput struct {
	Success    bool   `json:"success"`
	IsVerified bool   `json:"is_verified"`
	Age        int    `json:"age,omitempty"`
	Token      string `json:"token"`
	ExpiresAt  int64  `json:"expires_at"`
}

type ComplianceUsecase struct {
	cfg        config.Config
	ageVerRepo repo.AgeVerificationRepository
	clock      Clock
}

// DI
func NewComplianceUsecase(cfg config.Config, ageVerRepo repo.AgeVerificationRepository, clock Clock) *ComplianceUsecase {
	return &ComplianceUsecase{
		cfg:        cfg,
		ageVerRepo: ageVerRepo,
		clock:      clock,
	}
}

// VerifyByBirthdate は生年月日から18歳以上かを判定する。
// 監査レコードは成功・失敗どちらでも書く。
func (u *ComplianceUsecase) VerifyByBirthdate(ctx context.Context, meta RequestMeta, in BirthdateInput) (VerificationOutput, error) {
	now := u.clock.Now()

	//範囲チェック（400）
	if in.Year < 1900 || in.Year > now.Year() {
		return VerificationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid year")
	}
	if in.Month < 1 || in.Month > 12 {
		return VerificationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid month")
	}
	if in.Day < 1 || in.Day > 31 {
		return VerificationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid day")
	}

	//4/31のような日付はtime.Dateが翌月に繰り上げる
	birth := time.Date(in.Year, time.Month(in.Month), in.Day, 0, 0, 0, 0, time.Local)

	//誕生日がまだ来ていなければ1引く（月→日の辞書式比較。2/29生まれも正しく扱える）
	age := now.Year() - birth.Year()
	if int(now.Month()) < int(birth.Month()) ||
		(int(now.Month()) == int(birth.Month()) && now.Day() < birth.Day()) {
		age--
	}

	isVerified := age >= 18

	//判定結果に関わらず監査レコードを残す
	u.recordAttempt(ctx, meta, model.VerificationMethodBirthdate, isVerified, now)

	if !isVerified {
		return VerificationOutput{}, NewHTTPError(http.StatusForbidden, "You must be 18 years or older to access this site")
	}

	token, expiresAt, err := u.issueGateToken(meta.SessionID, now)
	if err != nil {
		return VerificationOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return VerificationOutput{
		Success:    true,
		IsVerified: true,
		Age:        age,
		Token:      token,
		ExpiresAt:  expiresAt.Unix(),
	}, nil
}

// VerifyByCheckbox はチェックボックスによる自己申告。
// falseも監査レコードを残してから403にする（生年月日と同じ方針に揃える）。
func (u *ComplianceUsecase) VerifyByCheckbox(ctx context.Context, meta RequestMeta, confirmed bool) (VerificationOutput, error) {
	now := u.clock.Now()

	u.recordAttempt(ctx, meta, model.VerificationMethodCheckbox, confirmed, now)

	if !confirmed {
		return VerificationOutput{}, NewHTTPError(http.StatusForbidden, "You must confirm that you are 18 years or older")
	}

	token, expiresAt, err := u.issueGateToken(meta.SessionID, now)
	if err != nil {
		return VerificationOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return VerificationOutput{
		Success:    true,
		IsVerified: true,
		Token:      token,
		ExpiresAt:  expiresAt.Unix(),
	}, nil
}

// LatestVerification はセッションの最新の監査レコードを返す。無ければnil。
func (u *ComplianceUsecase) LatestVerification(ctx context.Context, sessionID string) (*model.AgeVerification, error) {
	if sessionID == "" {
		return nil, nil
	}

	v, err := u.ageVerRepo.LatestBySession(ctx, sessionID)
	if err == repo.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return &v, nil
}

// 監査レコード一覧の絞り込み入力
type ListVerificationsInput struct {
	SessionID string
	Method    string
	Verified  *bool
	Limit     int
	Offset    int
}

// ListVerifications は監査レコードを新しい順に返す。
// 規制対応の照会用で、公開画面からは使わない。
func (u *ComplianceUsecase) ListVerifications(ctx context.Context, in ListVerificationsInput) ([]model.AgeVerification, error) {
	f := repo.AgeVerificationFilter{
		IsVerified: in.Verified,
		Limit:      in.Limit,
		Offset:     in.Offset,
	}

	if in.SessionID != "" {
		f.SessionID = &in.SessionID
	}

	if in.Method != "" {
		m := model.VerificationMethod(in.Method)
		if m != model.VerificationMethodBirthdate && m != model.VerificationMethodCheckbox {
			return nil, NewHTTPError(http.StatusBadRequest, "invalid method")
		}
		f.Method = &m
	}

	rows, err := u.ageVerRepo.List(ctx, f)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rows, nil
}

type ComplianceContentOutput struct {
	Type    model.ComplianceContentType `json:"type"`
	Content string                      `json:"content"`
}

// GetComplianceContent は定型文を返す。未知の種類は400。
func (u *ComplianceUsecase) GetComplianceContent(contentType model.ComplianceContentType) (ComplianceContentOutput, error) {
	content, ok := model.ComplianceContent(contentType)
	if !ok {
		return ComplianceContentOutput{}, NewHTTPError(http.StatusBadRequest, "invalid content type")
	}

	return ComplianceContentOutput{
		Type:    contentType,
		Content: content,
	}, nil
}

// recordAttempt は監査レコードを書く。
// 失敗してもログに残して握りつぶす（判定を止めない）。
func (u *ComplianceUsecase) recordAttempt(ctx context.Context, meta RequestMeta, method model.VerificationMethod, isVerified bool, at time.Time) {
	//リクエストのキャンセルに巻き込まれないよう切り離す
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), auditWriteTimeout)
	defer cancel()

	err := u.ageVerRepo.Create(wctx, model.AgeVerification{
		UserID:     meta.UserID,
		SessionID:  meta.SessionID,
		Method:     method,
		VerifiedAt: at,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		IsVerified: isVerified,
		CreatedAt:  at,
	})
	if err != nil {
		log.Printf("[compliance] failed to record age verification: %v", err)
	}
}

// 年齢ゲート通過トークンを発行（HS256）。
// 期限はconfigで決める（再確認ポリシー）。
func (u *ComplianceUsecase) issueGateToken(sessionID string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(u.cfg.AgeGateTTL)

	claims := jwt.MapClaims{
		"verified":    true,
		"verified_at": now.Unix(),
		"sid":         sessionID,
		"iat":         now.Unix(),
		"exp":         expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(u.cfg.AgeGateSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
