package repository

import (
	"context"

	"vapestore/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
	FindByNumber(ctx context.Context, orderNumber string) (model.Order, error)
	ListBySession(ctx context.Context, sessionID string, limit int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, orderID int64, status model.PaymentStatus) error
}
