package repository

import (
	"context"
	"errors"

	"vapestore/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カタログの絞り込み条件
type ProductListQuery struct {
	Brand           string
	Flavor          string
	NicotineContent string
	Category        string
	MinPrice        *int64
	MaxPrice        *int64
	Limit           int
	Offset          int
}

// 商品の取得だけを約束。カタログの管理（登録・更新）はスコープ外。
type ProductRepository interface {
	//公開中（is_active=true）の商品を絞り込み付きで返す
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)

	FindByID(ctx context.Context, id int64) (model.Product, error)

	//商品名・説明の部分一致検索
	Search(ctx context.Context, query string) ([]model.Product, error)
}
