package repository

import (
	"context"

	"vapestore/internal/domain/model"
)

// チェックアウト下書きの保存・取得。セッションにつき1件。
type CheckoutRepository interface {
	//無ければStep1の空下書きを作って返す
	GetOrCreateBySession(ctx context.Context, sessionID string) (model.CheckoutSession, error)

	FindBySession(ctx context.Context, sessionID string) (model.CheckoutSession, error)

	Save(ctx context.Context, cs model.CheckoutSession) error

	//注文確定後に下書きを破棄する
	DeleteBySession(ctx context.Context, sessionID string) error
}
