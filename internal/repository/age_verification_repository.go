package repository

import (
	"context"
	"time"

	"vapestore/internal/domain/model"
)

// 監査レコードの絞り込み条件
type AgeVerificationFilter struct {
	UserID       *int64
	SessionID    *string
	Method       *model.VerificationMethod
	IsVerified   *bool
	VerifiedFrom *time.Time
	VerifiedTo   *time.Time
	Limit        int
	Offset       int
}

// 年齢確認の監査レコードは追記専用。更新・削除のメソッドは持たせない。
type AgeVerificationRepository interface {
	Create(ctx context.Context, v model.AgeVerification) error

	//セッションの最新1件。無ければErrNotFound
	LatestBySession(ctx context.Context, sessionID string) (model.AgeVerification, error)

	List(ctx context.Context, f AgeVerificationFilter) ([]model.AgeVerification, error)
}
