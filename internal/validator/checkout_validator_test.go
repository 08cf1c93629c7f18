package validator_test

import (
	"context"
	"testing"

	"vapestore/internal/usecase"
	"vapestore/internal/validator"

	"github.com/stretchr/testify/assert"
)

func validContact() usecase.ContactInput {
	return usecase.ContactInput{
		FirstName: "Jamie",
		LastName:  "Nguyen",
		Email:     "jamie@example.com",
		Phone:     "0400000000",
	}
}

func validAddress() usecase.AddressInput {
	return usecase.AddressInput{
		StreetAddress: "1 George St",
		Suburb:        "Sydney",
		State:         "NSW",
		Postcode:      "2000",
	}
}

func TestValidateContact_OK(t *testing.T) {
	v := validator.NewCheckoutValidator()
	assert.NoError(t, v.ValidateContact(context.Background(), validContact()))
}

func TestValidateContact_MissingFields(t *testing.T) {
	v := validator.NewCheckoutValidator()

	in := validContact()
	in.LastName = "  "
	err := v.ValidateContact(context.Background(), in)
	assert.ErrorIs(t, err, validator.ErrMissingRequiredFields)
}

func TestValidateContact_BadEmail(t *testing.T) {
	v := validator.NewCheckoutValidator()

	for _, bad := range []string{"jamie", "jamie@", "@example.com", "jamie@example", "a b@example.com"} {
		in := validContact()
		in.Email = bad
		err := v.ValidateContact(context.Background(), in)
		assert.ErrorIs(t, err, validator.ErrInvalidEmail, bad)
	}
}

func TestValidateAddress_OK(t *testing.T) {
	v := validator.NewCheckoutValidator()
	assert.NoError(t, v.ValidateAddress(context.Background(), validAddress()))
}

func TestValidateAddress_EmptyStateAllowed(t *testing.T) {
	//stateが空ならデフォルトが入るので通す
	v := validator.NewCheckoutValidator()

	in := validAddress()
	in.State = ""
	assert.NoError(t, v.ValidateAddress(context.Background(), in))
}

func TestValidateAddress_InvalidState(t *testing.T) {
	v := validator.NewCheckoutValidator()

	in := validAddress()
	in.State = "XX"
	err := v.ValidateAddress(context.Background(), in)
	assert.ErrorIs(t, err, validator.ErrInvalidState)
}

func TestValidateAddress_InvalidPostcode(t *testing.T) {
	v := validator.NewCheckoutValidator()

	for _, bad := range []string{"200", "20000", "2O00", "abcd"} {
		in := validAddress()
		in.Postcode = bad
		err := v.ValidateAddress(context.Background(), in)
		assert.ErrorIs(t, err, validator.ErrInvalidPostcode, bad)
	}
}

func TestValidateAddress_MissingFields(t *testing.T) {
	v := validator.NewCheckoutValidator()

	in := validAddress()
	in.Suburb = ""
	err := v.ValidateAddress(context.Background(), in)
	assert.ErrorIs(t, err, validator.ErrMissingRequiredFields)
}
