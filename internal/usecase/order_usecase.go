package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"vapestore/internal/domain/model"
	repo "vapestore/internal/repository"
)

type OrderUsecase struct {
	tx         repo.TransactionManager
	authorizer PaymentAuthorizer
	idGen      IDGenerator
	clock      Clock
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	authorizer PaymentAuthorizer,
	idGen IDGenerator,
	clock Clock,
) *OrderUsecase {
	return &OrderUsecase{
		tx:         tx,
		authorizer: authorizer,
		idGen:      idGen,
		clock:      clock,
	}
}

type PlaceOrderInput struct {
	Checkout      model.CheckoutSession
	PaymentMethod string
}

type OrderItemOutput struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type OrderOutput struct {
	OrderNumber   string                `json:"order_number"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"payment_status"`
	Subtotal      int64                 `json:"subtotal"`
	Tax           int64                 `json:"tax"`
	ShippingCost  int64                 `json:"shipping_cost"`
	Total         int64                 `json:"total"`
	TotalDisplay  string                `json:"total_display"`
	Address       model.ShippingAddress `json:"shipping_address"`
	Items         []OrderItemOutput     `json:"items"`
	CreatedAt     time.Time             `json:"created_at"`
}

// PlaceOrder はカートと下書きから注文を作る。
// 明細の単価はこの時点でスナップショットし、以後カタログ価格が変わっても追わない。
// 注文は絶対に黙って失うわけにはいかないので、保存エラーはそのまま呼び出し元へ返す。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, sessionID string, in PlaceOrderInput) (OrderOutput, error) {
	if sessionID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "missing session")
	}

	var out OrderOutput

	//注文処理はトランザクション
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//ACTIVEカート取得
		cart, err := r.Carts().FindActiveBySession(ctx, sessionID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カート明細取得
		cartItems, err := r.CartItems().ListByCartID(ctx, cart.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(cartItems) == 0 {
			return NewHTTPError(http.StatusBadRequest, "cart empty")
		}

		now := u.clock.Now()

		//スナップショット
		orderItems := make([]model.OrderItem, 0, len(cartItems))
		var subtotal int64 = 0

		for _, ci := range cartItems {
			p, err := r.Products().FindByID(ctx, ci.ProductID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "invalid product")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if !p.IsActive {
				return NewHTTPError(http.StatusBadRequest, "invalid product")
			}

			orderItems = append(orderItems, model.OrderItem{
				ProductID:           ci.ProductID,
				ProductNameSnapshot: p.Name,
				UnitPriceSnapshot:   ci.UnitPriceSnapshot,
				Quantity:            ci.Quantity,
				CreatedAt:           now,
			})

			subtotal += ci.UnitPriceSnapshot * ci.Quantity
		}

		shippingCost := model.ShippingCostFor(in.Checkout.ShippingMethod)

		//税額プレースホルダ（常に0）。Total = Subtotal + Tax + ShippingCost
		var tax int64 = 0
		total := subtotal + tax + shippingCost

		//住所は確定時点のスナップショットをJSONで残す
		addr := in.Checkout.Address()
		addrJSON, err := json.Marshal(addr)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "internal error")
		}

		order := model.Order{
			OrderNumber:         u.newOrderNumber(now),
			SessionID:           sessionID,
			Status:              model.OrderStatusPending,
			Subtotal:            subtotal,
			Tax:                 tax,
			ShippingCost:        shippingCost,
			Total:               total,
			ShippingAddressJSON: string(addrJSON),
			PaymentMethod:       in.PaymentMethod,
			PaymentStatus:       model.PaymentStatusPending,
			CreatedAt:           now,
			UpdatedAt:           now,
		}

		//決済の承認（スタブは常に承認。否認なら注文は作らない）
		outcome, err := u.authorizer.Authorize(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusBadGateway, "payment unavailable")
		}
		if !outcome.Approved {
			return NewHTTPError(http.StatusPaymentRequired, "payment declined")
		}
		if outcome.Reference != "" {
			order.Notes = "payment_ref=" + outcome.Reference
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//注文明細一括作成
		if err := r.OrderItems().CreateBulk(ctx, orderID, orderItems); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//カートをCHECKED_OUTにして、明細をクリア（再注文防止）
		if err := r.Carts().UpdateStatus(ctx, cart.ID, model.CartStatusCheckedOut); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if err := r.Carts().Clear(ctx, cart.ID); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//下書きも破棄する
		if err := r.Checkouts().DeleteBySession(ctx, sessionID); err != nil && err != repo.ErrNotFound {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		out = toOrderOutput(order, orderItems)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, sessionID string) ([]OrderOutput, error) {
	if sessionID == "" {
		return []OrderOutput{}, NewHTTPError(http.StatusBadRequest, "missing session")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListBySession(ctx, sessionID, 50)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

func (u *OrderUsecase) GetOrderByNumber(ctx context.Context, sessionID string, orderNumber string) (OrderOutput, error) {
	if sessionID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "missing session")
	}
	if strings.TrimSpace(orderNumber) == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid order number")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByNumber(ctx, orderNumber)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.SessionID != sessionID {
			//他人の注文は「存在しない扱い」にする
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// UpdateStatus は遷移表に従ってステータスを進める。
// 許されない遷移は409。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderNumber string, next model.OrderStatus) error {
	if strings.TrimSpace(orderNumber) == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid order number")
	}

	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByNumber(ctx, orderNumber)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if !model.CanTransition(o.Status, next) {
			return NewHTTPError(http.StatusConflict, "invalid status transition")
		}

		if err := r.Orders().UpdateStatus(ctx, o.ID, next); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//返金に進んだら決済ステータスも揃える
		if next == model.OrderStatusRefunded {
			if err := r.Orders().UpdatePaymentStatus(ctx, o.ID, model.PaymentStatusRefunded); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}
		return nil
	})
}

// 注文番号は ORD-YYYYMMDD-XXXXXX（UUID由来の6文字）
func (u *OrderUsecase) newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(u.idGen.NewID(), "-", ""))
	if len(suffix) > 6 {
		suffix = suffix[:6]
	}
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), suffix)
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID: it.ProductID,
			Name:      it.ProductNameSnapshot,
			Price:     it.UnitPriceSnapshot,
			Quantity:  it.Quantity,
		})
	}

	var addr model.ShippingAddress
	_ = json.Unmarshal([]byte(o.ShippingAddressJSON), &addr)

	return OrderOutput{
		OrderNumber:   o.OrderNumber,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		Subtotal:      o.Subtotal,
		Tax:           o.Tax,
		ShippingCost:  o.ShippingCost,
		Total:         o.Total,
		TotalDisplay:  model.FormatAUD(o.Total),
		Address:       addr,
		Items:         outItems,
		CreatedAt:     o.CreatedAt,
	}
}
