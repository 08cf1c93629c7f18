package model_test

import (
	"testing"

	"vapestore/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	//正常系の一本道
	assert.True(t, model.CanTransition(model.OrderStatusPending, model.OrderStatusProcessing))
	assert.True(t, model.CanTransition(model.OrderStatusProcessing, model.OrderStatusShipped))
	assert.True(t, model.CanTransition(model.OrderStatusShipped, model.OrderStatusDelivered))
	assert.True(t, model.CanTransition(model.OrderStatusDelivered, model.OrderStatusRefunded))

	//キャンセルは発送前だけ
	assert.True(t, model.CanTransition(model.OrderStatusPending, model.OrderStatusCancelled))
	assert.True(t, model.CanTransition(model.OrderStatusProcessing, model.OrderStatusCancelled))
	assert.False(t, model.CanTransition(model.OrderStatusShipped, model.OrderStatusCancelled))

	//巻き戻しと終端からの遷移は不可
	assert.False(t, model.CanTransition(model.OrderStatusDelivered, model.OrderStatusPending))
	assert.False(t, model.CanTransition(model.OrderStatusCancelled, model.OrderStatusProcessing))
	assert.False(t, model.CanTransition(model.OrderStatusRefunded, model.OrderStatusPending))

	//スキップも不可
	assert.False(t, model.CanTransition(model.OrderStatusPending, model.OrderStatusShipped))
}

func TestFormatAUD(t *testing.T) {
	assert.Equal(t, "A$49.99", model.FormatAUD(4999))
	assert.Equal(t, "A$114.98", model.FormatAUD(11498))
	assert.Equal(t, "A$0.00", model.FormatAUD(0))
	assert.Equal(t, "A$0.05", model.FormatAUD(5))
	assert.Equal(t, "-A$10.00", model.FormatAUD(-1000))
}

func TestShippingCostFor(t *testing.T) {
	assert.Equal(t, int64(0), model.ShippingCostFor(model.ShippingStandard))
	assert.Equal(t, int64(1500), model.ShippingCostFor(model.ShippingExpress))
	//未知の値はstandard扱い
	assert.Equal(t, int64(0), model.ShippingCostFor(model.ShippingMethod("")))
}

func TestIsValidAUState(t *testing.T) {
	for _, s := range []string{"NSW", "VIC", "QLD", "SA", "WA", "TAS", "NT", "ACT"} {
		assert.True(t, model.IsValidAUState(s), s)
	}
	assert.False(t, model.IsValidAUState("nsw"))
	assert.False(t, model.IsValidAUState("XX"))
}

func TestComplianceContent(t *testing.T) {
	hw, ok := model.ComplianceContent(model.ComplianceHealthWarning)
	assert.True(t, ok)
	assert.Contains(t, hw, "HEALTH WARNING")
	assert.Contains(t, hw, "nicotine")

	for _, ct := range []model.ComplianceContentType{
		model.ComplianceTermsOfService,
		model.CompliancePrivacyPolicy,
		model.ComplianceTGAStatement,
	} {
		body, ok := model.ComplianceContent(ct)
		assert.True(t, ok, string(ct))
		assert.NotEmpty(t, body)
	}

	_, ok = model.ComplianceContent(model.ComplianceContentType("bogus"))
	assert.False(t, ok)
}

func TestCheckoutSessionAddress(t *testing.T) {
	cs := model.CheckoutSession{
		FirstName:     "Jamie",
		LastName:      "Nguyen",
		Email:         "jamie@example.com",
		Phone:         "0400000000",
		StreetAddress: "1 George St",
		Suburb:        "Sydney",
		State:         "NSW",
		Postcode:      "2000",
	}

	addr := cs.Address()
	assert.Equal(t, "Jamie", addr.FirstName)
	assert.Equal(t, "1 George St", addr.StreetAddress)
	assert.Equal(t, "2000", addr.Postcode)
}
