package model

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
	OrderStatusRefunded   OrderStatus = "REFUNDED"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// ステータス遷移表。
// PENDING → PROCESSING → SHIPPED → DELIVERED の一本道＋
// 途中分岐のCANCELLED / REFUNDED。
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusRefunded},
	OrderStatusDelivered:  {OrderStatusRefunded},
	OrderStatusCancelled:  {},
	OrderStatusRefunded:   {},
}

// CanTransition は from から to への遷移が許されるかを返す。
func CanTransition(from OrderStatus, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// 注文。金額はすべてセント。
// Total = Subtotal + Tax + ShippingCost を必ず満たす。
// ShippingAddressJSON は確定時点の住所スナップショット（後から書き換えない）。
type Order struct {
	ID                  int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber         string        `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_number"`
	SessionID           string        `gorm:"type:varchar(64);not null;index" json:"-"`
	Status              OrderStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Subtotal            int64         `gorm:"not null" json:"subtotal"`
	Tax                 int64         `gorm:"not null" json:"tax"`
	ShippingCost        int64         `gorm:"not null" json:"shipping_cost"`
	Total               int64         `gorm:"not null" json:"total"`
	ShippingAddressJSON string        `gorm:"type:text;not null" json:"-"`
	PaymentMethod       string        `gorm:"type:varchar(50)" json:"payment_method"`
	PaymentStatus       PaymentStatus `gorm:"type:varchar(20);not null" json:"payment_status"`
	Notes               string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt           time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
