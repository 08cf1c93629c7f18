package repository

import (
	"context"

	"vapestore/internal/domain/model"
)

type CartItemRepository interface {
	ListByCartID(ctx context.Context, cartID int64) ([]model.CartItem, error)
	//同一商品は数量加算
	UpsertAdd(ctx context.Context, cartID int64, productID int64, addQty int64, unitPriceSnapshot int64) error
	//数量を上書き
	SetQuantity(ctx context.Context, cartID int64, productID int64, qty int64) error
	DeleteByProduct(ctx context.Context, cartID int64, productID int64) error
}
