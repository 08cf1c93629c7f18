package usecase

import (
	"context"
	"net/http"
	"strings"

	"vapestore/internal/domain/model"
	repo "vapestore/internal/repository"
)

// usecaseがValidatorInterfaceに依存する約束
type CheckoutValidator interface {
	ValidateContact(ctx context.Context, in ContactInput) error
	ValidateAddress(ctx context.Context, in AddressInput) error
}

// Step1: 連絡先
type ContactInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Step2: 配送先住所
type AddressInput struct {
	StreetAddress string `json:"street_address"`
	Suburb        string `json:"suburb"`
	State         string `json:"state"`
	Postcode      string `json:"postcode"`
}

// Step3: 同意と確定
type SubmitInput struct {
	AgreeToAge    bool   `json:"agree_to_age"`
	AgreeToTerms  bool   `json:"agree_to_terms"`
	PaymentMethod string `json:"payment_method"`
}

// チェックアウト画面の表示用。金額は毎回カートから計算し直す。
type CheckoutResponse struct {
	Step           model.CheckoutStep   `json:"step"`
	Contact        ContactInput         `json:"contact"`
	Address        AddressInput         `json:"address"`
	ShippingMethod model.ShippingMethod `json:"shipping_method"`
	AgreeToAge     bool                 `json:"agree_to_age"`
	AgreeToTerms   bool                 `json:"agree_to_terms"`
	Cart           CartResponse         `json:"cart"`
	ShippingCost   int64                `json:"shipping_cost"`
	Tax            int64                `json:"tax"`
	Total          int64                `json:"total"`
}

type CheckoutUsecase struct {
	checkoutRepo repo.CheckoutRepository
	cartUC       *CartUsecase
	orderUC      *OrderUsecase
	validator    CheckoutValidator
}

func NewCheckoutUsecase(
	checkoutRepo repo.CheckoutRepository,
	cartUC *CartUsecase,
	orderUC *OrderUsecase,
	validator CheckoutValidator,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		checkoutRepo: checkoutRepo,
		cartUC:       cartUC,
		orderUC:      orderUC,
		validator:    validator,
	}
}

// Get は下書きを取得（無ければStep1で作る）。
func (u *CheckoutUsecase) Get(ctx context.Context, sessionID string) (CheckoutResponse, error) {
	if sessionID == "" {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "missing session")
	}

	cs, err := u.checkoutRepo.GetOrCreateBySession(ctx, sessionID)
	if err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildResponse(ctx, sessionID, cs)
}

// SubmitContact はStep1→2の遷移。必須項目が欠けていれば遷移しない。
func (u *CheckoutUsecase) SubmitContact(ctx context.Context, sessionID string, in ContactInput) (CheckoutResponse, error) {
	if sessionID == "" {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "missing session")
	}

	if err := u.validator.ValidateContact(ctx, in); err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "Please fill in all required fields")
	}

	cs, err := u.checkoutRepo.GetOrCreateBySession(ctx, sessionID)
	if err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cs.FirstName = strings.TrimSpace(in.FirstName)
	cs.LastName = strings.TrimSpace(in.LastName)
	cs.Email = strings.TrimSpace(in.Email)
	cs.Phone = strings.TrimSpace(in.Phone)

	//Step1からだけ前へ進む（Step3から再保存しても戻さない）
	if cs.Step == model.StepContactInfo {
		cs.Step = model.StepShippingAddress
	}

	if err := u.checkoutRepo.Save(ctx, cs); err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildResponse(ctx, sessionID, cs)
}

// SubmitAddress はStep2→3の遷移。
func (u *CheckoutUsecase) SubmitAddress(ctx context.Context, sessionID string, in AddressInput) (CheckoutResponse, error) {
	if sessionID == "" {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "missing session")
	}

	if err := u.validator.ValidateAddress(ctx, in); err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "Please fill in all address fields")
	}

	cs, err := u.checkoutRepo.GetOrCreateBySession(ctx, sessionID)
	if err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	//Step1が未完ならStep2の保存は受けない
	if cs.Step < model.StepShippingAddress {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "contact info required first")
	}

	cs.StreetAddress = strings.TrimSpace(in.StreetAddress)
	cs.Suburb = strings.TrimSpace(in.Suburb)
	cs.Postcode = strings.TrimSpace(in.Postcode)

	//stateは常に値を持つ（空ならNSW）
	if in.State == "" {
		cs.State = model.DefaultAUState
	} else {
		cs.State = in.State
	}

	if cs.Step == model.StepShippingAddress {
		cs.Step = model.StepReviewAndConfirm
	}

	if err := u.checkoutRepo.Save(ctx, cs); err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildResponse(ctx, sessionID, cs)
}

// SelectShipping は配送方法の変更。どのstepでも呼べる。
func (u *CheckoutUsecase) SelectShipping(ctx context.Context, sessionID string, method model.ShippingMethod) (CheckoutResponse, error) {
	if sessionID == "" {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "missing session")
	}
	if method != model.ShippingStandard && method != model.ShippingExpress {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "invalid shipping method")
	}

	cs, err := u.checkoutRepo.GetOrCreateBySession(ctx, sessionID)
	if err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	cs.ShippingMethod = method

	if err := u.checkoutRepo.Save(ctx, cs); err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return u.buildResponse(ctx, sessionID, cs)
}

// Back は1つ前のstepへ戻る。下書きの内容は消えない。
func (u *CheckoutUsecase) Back(ctx context.Context, sessionID string) (CheckoutResponse, error) {
	if sessionID == "" {
		return CheckoutResponse{}, NewHTTPError(http.StatusBadRequest, "missing session")
	}

	cs, err := u.checkoutRepo.GetOrCreateBySession(ctx, sessionID)
	if err != nil {
		return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if cs.Step > model.StepContactInfo {
		cs.Step--
		if err := u.checkoutRepo.Save(ctx, cs); err != nil {
			return CheckoutResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return u.buildResponse(ctx, sessionID, cs)
}

// Submit はStep3から注文を確定する。
// 18歳以上の確認と利用規約、両方に同意していないと進めない。
func (u *CheckoutUsecase) Submit(ctx context.Context, sessionID string, in SubmitInput) (OrderOutput, error) {
	if sessionID == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "missing session")
	}

	cs, err := u.checkoutRepo.GetOrCreateBySession(ctx, sessionID)
	if err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if cs.Step != model.StepReviewAndConfirm {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "checkout not ready")
	}

	//同意が揃っていなければStep3のまま拒否
	if !in.AgreeToAge || !in.AgreeToTerms {
		return OrderOutput{}, NewHTTPError(http.StatusForbidden, "Please agree to the terms and age verification")
	}

	cs.AgreeToAge = in.AgreeToAge
	cs.AgreeToTerms = in.AgreeToTerms
	if err := u.checkoutRepo.Save(ctx, cs); err != nil {
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out, err := u.orderUC.PlaceOrder(ctx, sessionID, PlaceOrderInput{
		Checkout:      cs,
		PaymentMethod: in.PaymentMethod,
	})
	if err != nil {
		return OrderOutput{}, err
	}

	return out, nil
}

func (u *CheckoutUsecase) buildResponse(ctx context.Context, sessionID string, cs model.CheckoutSession) (CheckoutResponse, error) {
	cart, err := u.cartUC.GetCart(ctx, sessionID)
	if err != nil {
		return CheckoutResponse{}, err
	}

	shippingCost := model.ShippingCostFor(cs.ShippingMethod)

	//税額は「チェックアウト時に計算」のままのプレースホルダ（常に0）
	var tax int64 = 0

	return CheckoutResponse{
		Step: cs.Step,
		Contact: ContactInput{
			FirstName: cs.FirstName,
			LastName:  cs.LastName,
			Email:     cs.Email,
			Phone:     cs.Phone,
		},
		Address: AddressInput{
			StreetAddress: cs.StreetAddress,
			Suburb:        cs.Suburb,
			State:         cs.State,
			Postcode:      cs.Postcode,
		},
		ShippingMethod: cs.ShippingMethod,
		AgreeToAge:     cs.AgreeToAge,
		AgreeToTerms:   cs.AgreeToTerms,
		Cart:           cart,
		ShippingCost:   shippingCost,
		Tax:            tax,
		Total:          cart.TotalPrice + tax + shippingCost,
	}, nil
}
