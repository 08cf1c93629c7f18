package repository

import (
	"context"

	"vapestore/internal/domain/model"
)

type CartRepository interface {
	GetOrCreateActiveBySession(ctx context.Context, sessionID string) (model.Cart, error)
	FindActiveBySession(ctx context.Context, sessionID string) (model.Cart, error)
	UpdateStatus(ctx context.Context, cartID int64, status model.CartStatus) error
	//明細を全削除
	Clear(ctx context.Context, cartID int64) error
}
