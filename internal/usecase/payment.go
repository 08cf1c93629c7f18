package usecase

import (
	"context"

	"vapestore/internal/domain/model"
)

type PaymentOutcome struct {
	Approved  bool
	Reference string
	Reason    string
}

// 決済の承認だけを行う差し替え可能な口。
// 実ゲートウェイを繋ぐときもチェックアウト側の契約は変わらない。
type PaymentAuthorizer interface {
	Authorize(ctx context.Context, order model.Order) (PaymentOutcome, error)
}

// 常に承認するスタブ。実際の決済は行わない。
type SimulatedPaymentAuthorizer struct {
	idGen IDGenerator
}

func NewSimulatedPaymentAuthorizer(idGen IDGenerator) *SimulatedPaymentAuthorizer {
	return &SimulatedPaymentAuthorizer{idGen: idGen}
}

func (a *SimulatedPaymentAuthorizer) Authorize(ctx context.Context, order model.Order) (PaymentOutcome, error) {
	return PaymentOutcome{
		Approved:  true,
		Reference: "sim_" + a.idGen.NewID(),
	}, nil
}
