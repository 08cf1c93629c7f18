package validator

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"vapestore/internal/domain/model"
	"vapestore/internal/usecase"
)

var (
	// 必須項目が欠けている
	ErrMissingRequiredFields = errors.New("missing required fields")

	// email形式が不正
	ErrInvalidEmail = errors.New("invalid email")

	// 州が8つの管轄に含まれない
	ErrInvalidState = errors.New("invalid state")

	// 郵便番号が不正（AUは4桁）
	ErrInvalidPostcode = errors.New("invalid postcode")
)

type checkoutValidator struct{}

// Usecaseは interface を依存注入
func NewCheckoutValidator() usecase.CheckoutValidator {
	return &checkoutValidator{}
}

// Step1（連絡先）の入力を検証
func (v *checkoutValidator) ValidateContact(ctx context.Context, in usecase.ContactInput) error {
	if strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" ||
		strings.TrimSpace(in.Email) == "" ||
		strings.TrimSpace(in.Phone) == "" {
		return ErrMissingRequiredFields
	}

	if !isEmailLike(strings.TrimSpace(in.Email)) {
		return ErrInvalidEmail
	}

	return nil
}

// Step2（配送先住所）の入力を検証
func (v *checkoutValidator) ValidateAddress(ctx context.Context, in usecase.AddressInput) error {
	if strings.TrimSpace(in.StreetAddress) == "" ||
		strings.TrimSpace(in.Suburb) == "" ||
		strings.TrimSpace(in.Postcode) == "" {
		return ErrMissingRequiredFields
	}

	//stateは空ならデフォルトが入るので、値がある場合だけ確認
	if in.State != "" && !model.IsValidAUState(in.State) {
		return ErrInvalidState
	}

	if !isAUPostcode(strings.TrimSpace(in.Postcode)) {
		return ErrInvalidPostcode
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}

// AUの郵便番号は4桁
func isAUPostcode(s string) bool {
	re := regexp.MustCompile(`^[0-9]{4}$`)
	return re.MatchString(s)
}
