package usecase_test

import (
	"context"
	"testing"
	"time"

	"vapestore/internal/domain/model"
	"vapestore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Validatorスタブ
// =====================

type okValidator struct{}

func (v *okValidator) ValidateContact(ctx context.Context, in usecase.ContactInput) error { return nil }
func (v *okValidator) ValidateAddress(ctx context.Context, in usecase.AddressInput) error { return nil }

type ngValidator struct{ err error }

func (v *ngValidator) ValidateContact(ctx context.Context, in usecase.ContactInput) error {
	return v.err
}
func (v *ngValidator) ValidateAddress(ctx context.Context, in usecase.AddressInput) error {
	return v.err
}

type checkoutFixture struct {
	uc           *usecase.CheckoutUsecase
	checkoutRepo *CheckoutRepoMock
	cartRepo     *CartRepoMock
	cartItemRepo *CartItemRepoMock
	productRepo  *CartProductRepoMock
	tx           *txReposStub
}

func newCheckoutFixture(v usecase.CheckoutValidator) *checkoutFixture {
	checkoutRepo := new(CheckoutRepoMock)
	cartRepo := new(CartRepoMock)
	cartItemRepo := new(CartItemRepoMock)
	productRepo := new(CartProductRepoMock)
	tx := newTxStub()

	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	idGen := &stubIDGen{id: "abcdef12-3456"}
	orderUC := usecase.NewOrderUsecase(&txManagerStub{repos: tx}, usecase.NewSimulatedPaymentAuthorizer(idGen), idGen, &fixedClock{t: time.Date(2025, 6, 15, 12, 0, 0, 0, time.Local)})

	return &checkoutFixture{
		uc:           usecase.NewCheckoutUsecase(checkoutRepo, cartUC, orderUC, v),
		checkoutRepo: checkoutRepo,
		cartRepo:     cartRepo,
		cartItemRepo: cartItemRepo,
		productRepo:  productRepo,
		tx:           tx,
	}
}

// buildResponse用の空カート
func (f *checkoutFixture) stubEmptyCart() {
	f.cartRepo.On("GetOrCreateActiveBySession", mock.Anything, "sess-1").Return(model.Cart{ID: 10}, nil)
	f.cartItemRepo.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{}, nil)
}

// =====================
// Step遷移
// =====================

func TestCheckoutUsecase_SubmitContact_AdvancesToStep2(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(&okValidator{})
	f.stubEmptyCart()

	f.checkoutRepo.On("GetOrCreateBySession", mock.Anything, "sess-1").Return(model.CheckoutSession{SessionID: "sess-1", Step: model.StepContactInfo}, nil)
	f.checkoutRepo.On("Save", mock.Anything, mock.MatchedBy(func(cs model.CheckoutSession) bool {
		return cs.Step == model.StepShippingAddress && cs.FirstName == "Jamie"
	})).Return(nil)

	out, err := f.uc.SubmitContact(ctx, "sess-1", usecase.ContactInput{
		FirstName: "Jamie", LastName: "Nguyen", Email: "jamie@example.com", Phone: "0400000000",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.StepShippingAddress, out.Step)

	f.checkoutRepo.AssertExpectations(t)
}

func TestCheckoutUsecase_SubmitContact_InvalidStaysOnStep1(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(&ngValidator{err: assert.AnError})

	_, err := f.uc.SubmitContact(ctx, "sess-1", usecase.ContactInput{FirstName: "Jamie"})
	assertErrContains(t, err, "Please fill in all required fields")

	f.checkoutRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCheckoutUsecase_SubmitAddress_RequiresContactFirst(t *testing.T) {
	//Step1のままではStep2の保存を受けない
	ctx := context.Background()
	f := newCheckoutFixture(&okValidator{})

	f.checkoutRepo.On("GetOrCreateBySession", mock.Anything, "sess-1").Return(model.CheckoutSession{SessionID: "sess-1", Step: model.StepContactInfo}, nil)

	_, err := f.uc.SubmitAddress(ctx, "sess-1", usecase.AddressInput{
		StreetAddress: "1 George St", Suburb: "Sydney", Postcode: "2000",
	})
	assertErrContains(t, err, "contact info required first")
}

func TestCheckoutUsecase_SubmitAddress_DefaultsStateToNSW(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(&okValidator{})
	f.stubEmptyCart()

	f.checkoutRepo.On("GetOrCreateBySession", mock.Anything, "sess-1").Return(model.CheckoutSession{SessionID: "sess-1", Step: model.StepShippingAddress}, nil)
	f.checkoutRepo.On("Save", mock.Anything, mock.MatchedBy(func(cs model.CheckoutSession) bool {
		return cs.State == "NSW" && cs.Step == model.StepReviewAndConfirm
	})).Return(nil)

	out, err := f.uc.SubmitAddress(ctx, "sess-1", usecase.AddressInput{
		StreetAddress: "1 George St", Suburb: "Sydney", State: "", Postcode: "2000",
	})
	assert.NoError(t, err)
	assert.Equal(t, "NSW", out.Address.State)
	assert.Equal(t, model.StepReviewAndConfirm, out.Step)
}

func TestCheckoutUsecase_Back_KeepsDraftContents(t *testing.T) {
	//戻っても入力は消えない
	ctx := context.Background()
	f := newCheckoutFixture(&okValidator{})
	f.stubEmptyCart()

	draft := fullCheckoutDraft()
	f.checkoutRepo.On("GetOrCreateBySession", mock.Anything, "sess-1").Return(draft, nil)
	f.checkoutRepo.On("Save", mock.Anything, mock.MatchedBy(func(cs model.CheckoutSession) bool {
		return cs.Step == model.StepShippingAddress && cs.FirstName == "Jamie" && cs.StreetAddress == "1 George St"
	})).Return(nil)

	out, err := f.uc.Back(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StepShippingAddress, out.Step)
	assert.Equal(t, "Jamie", out.Contact.FirstName)
	assert.Equal(t, "1 George St", out.Address.StreetAddress)
}

func TestCheckoutUsecase_Back_Step1IsFloor(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(&okValidator{})
	f.stubEmptyCart()

	f.checkoutRepo.On("GetOrCreateBySession", mock.Anything, "sess-1").Return(model.CheckoutSession{SessionID: "sess-1", Step: model.StepContactInfo}, nil)

	out, err := f.uc.Back(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StepContactInfo, out.Step)

	f.checkoutRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

// =====================
// 配送と金額
// =====================

func TestCheckoutUsecase_SelectShipping_InvalidMethod(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(&okValidator{})

	_, err := f.uc.SelectShipping(ctx, "sess-1", model.ShippingMethod("overnight"))
	assertErrContains(t, err, "invalid shipping method")
}

func TestCheckoutUsecase_SelectShipping_ExpressAddsCost(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(&okValidator{})

	f.cartRepo.On("GetOrCreateActiveBySession", mock.Anything, "sess-1").Return(model.Cart{ID: 10}, nil)
	f.cartItemRepo.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{CartID: 10, ProductID: 1, Quantity: 2, UnitPriceSnapshot: 4999},
	}, nil)
	f.productRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "IGET Bar", IsActive: true}, nil)

	f.checkoutRepo.On("GetOrCreateBySession", mock.Anything, "sess-1").Return(model.CheckoutSession{SessionID: "sess-1", Step: model.StepReviewAndConfirm}, nil)
	f.checkoutRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	out, err := f.uc.SelectShipping(ctx, "sess-1", model.ShippingExpress)
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), out.ShippingCost)
	assert.Equal(t, int64(0), out.Tax)
	assert.Equal(t, int64(11498), out.Total)
}

// =====================
// Submit
// =====================

func TestCheckoutUsecase_Submit_NotReady(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(&okValidator{})

	f.checkoutRepo.On("GetOrCreateBySession", mock.Anything, "sess-1").Return(model.CheckoutSession{SessionID: "sess-1", Step: model.StepShippingAddress}, nil)

	_, err := f.uc.Submit(ctx, "sess-1", usecase.SubmitInput{AgreeToAge: true, AgreeToTerms: true})
	assertErrContains(t, err, "checkout not ready")
}

func TestCheckoutUsecase_Submit_RequiresBothConsents(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(&okValidator{})

	f.checkoutRepo.On("GetOrCreateBySession", mock.Anything, "sess-1").Return(model.CheckoutSession{SessionID: "sess-1", Step: model.StepReviewAndConfirm}, nil)

	_, err := f.uc.Submit(ctx, "sess-1", usecase.SubmitInput{AgreeToAge: true, AgreeToTerms: false})
	assertErrContains(t, err, "Please agree to the terms and age verification")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 403, he.Status)
}

func TestCheckoutUsecase_Submit_PlacesOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(&okValidator{})

	draft := fullCheckoutDraft()
	draft.AgreeToAge = false
	draft.AgreeToTerms = false

	f.checkoutRepo.On("GetOrCreateBySession", mock.Anything, "sess-1").Return(draft, nil)
	f.checkoutRepo.On("Save", mock.Anything, mock.MatchedBy(func(cs model.CheckoutSession) bool {
		return cs.AgreeToAge && cs.AgreeToTerms
	})).Return(nil)

	//PlaceOrder側のスタブ
	f.tx.carts.On("FindActiveBySession", mock.Anything, "sess-1").Return(model.Cart{ID: 10}, nil)
	f.tx.cartItems.On("ListByCartID", mock.Anything, int64(10)).Return([]model.CartItem{
		{CartID: 10, ProductID: 1, Quantity: 2, UnitPriceSnapshot: 4999},
	}, nil)
	f.tx.products.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "IGET Bar", IsActive: true}, nil)
	f.tx.orders.On("Create", mock.Anything, mock.Anything).Return(int64(77), nil)
	f.tx.orderItems.On("CreateBulk", mock.Anything, int64(77), mock.Anything).Return(nil)
	f.tx.carts.On("UpdateStatus", mock.Anything, int64(10), model.CartStatusCheckedOut).Return(nil)
	f.tx.carts.On("Clear", mock.Anything, int64(10)).Return(nil)
	f.tx.checkouts.On("DeleteBySession", mock.Anything, "sess-1").Return(nil)

	out, err := f.uc.Submit(ctx, "sess-1", usecase.SubmitInput{
		AgreeToAge: true, AgreeToTerms: true, PaymentMethod: "card",
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(11498), out.Total)

	f.tx.checkouts.AssertExpectations(t)
}
