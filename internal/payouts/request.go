package payouts

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/riffus/hyperswitch/pkg/enums"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"github.com/riffus/hyperswitch/pkg/masking"
)

// Card is a card-destination payout method.
type Card struct {
	CardNumber     masking.Secret `json:"card_number" validate:"required"`
	ExpiryMonth    masking.Secret `json:"expiry_month" validate:"required"`
	ExpiryYear     masking.Secret `json:"expiry_year" validate:"required"`
	CardHolderName masking.Secret `json:"card_holder_name" validate:"required"`
}

// Bank is a bank-destination payout method. Identifier combinations are
// checked by the cross-field rules in validateBank, not per field.
type Bank struct {
	BankAccountNumber *string `json:"bank_account_number,omitempty"`
	BankRoutingNumber *string `json:"bank_routing_number,omitempty"`
	IBAN              *string `json:"iban,omitempty"`
	BIC               *string `json:"bic,omitempty"`
	BankSortCode      *string `json:"bank_sort_code,omitempty"`
	BLZ               *string `json:"blz,omitempty"`
	BankTransitNumber *string `json:"bank_transit_number,omitempty"`
}

// PayoutMethodData is the card-or-bank tagged union carried on a create request.
type PayoutMethodData struct {
	Card *Card `json:"card,omitempty"`
	Bank *Bank `json:"bank,omitempty"`
}

// PayoutCreateRequest describes an outbound transfer to a customer.
type PayoutCreateRequest struct {
	PayoutID         string            `json:"payout_id,omitempty" validate:"omitempty,max=30"`
	MerchantID       string            `json:"merchant_id,omitempty" validate:"omitempty,max=255"`
	Amount           int64             `json:"amount" validate:"required,gt=0"`
	Currency         enums.Currency    `json:"currency" validate:"required"`
	PayoutType       enums.PayoutType  `json:"payout_type" validate:"required"`
	PayoutMethodData *PayoutMethodData `json:"payout_method_data,omitempty"`
	CustomerID       string            `json:"customer_id,omitempty" validate:"omitempty,max=255"`
	AutoFulfill      bool              `json:"auto_fulfill,omitempty"`
	Email            string            `json:"email,omitempty" validate:"omitempty,email"`
	Name             string            `json:"name,omitempty" validate:"omitempty,max=255"`
	Phone            string            `json:"phone,omitempty" validate:"omitempty,max=255"`
	PhoneCountryCode string            `json:"phone_country_code,omitempty" validate:"omitempty,max=8"`
	ReturnURL        string            `json:"return_url,omitempty" validate:"omitempty,url"`
	BusinessCountry  string            `json:"business_country,omitempty" validate:"omitempty,len=2"`
	BusinessLabel    string            `json:"business_label,omitempty"`
	Description      string            `json:"description,omitempty"`
	EntityType       enums.EntityType  `json:"entity_type,omitempty"`
	Recurring        bool              `json:"recurring,omitempty"`
	Metadata         json.RawMessage   `json:"metadata,omitempty"`
}

// PayoutRetrieveRequest fetches one payout by id.
type PayoutRetrieveRequest struct {
	PayoutID   string `json:"payout_id" validate:"required,max=30"`
	MerchantID string `json:"merchant_id,omitempty" validate:"omitempty,max=255"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field-level constraints and the payout-method rules.
func (r *PayoutCreateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payout request")
	}

	if !r.Currency.IsValid() {
		return pkgerrors.InvalidDataValue("currency", fmt.Errorf("unknown currency %q", r.Currency))
	}
	if !r.PayoutType.IsValid() {
		return pkgerrors.InvalidDataValue("payout_type", fmt.Errorf("unknown payout type %q", r.PayoutType))
	}
	if r.EntityType != "" && !r.EntityType.IsValid() {
		return pkgerrors.InvalidDataValue("entity_type", fmt.Errorf("unknown entity type %q", r.EntityType))
	}

	if r.PayoutMethodData != nil {
		if err := r.PayoutMethodData.validate(r.PayoutType); err != nil {
			return err
		}
	}
	return nil
}

func (m *PayoutMethodData) validate(payoutType enums.PayoutType) error {
	if m.Card != nil && m.Bank != nil {
		return pkgerrors.InvalidDataValue("payout_method_data", fmt.Errorf("card and bank are mutually exclusive"))
	}
	switch payoutType {
	case enums.PayoutTypeCard:
		if m.Card == nil {
			return pkgerrors.MissingRequiredField("payout_method_data.card")
		}
		if err := validate.Struct(m.Card); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid card details")
		}
	case enums.PayoutTypeBank:
		if m.Bank == nil {
			return pkgerrors.MissingRequiredField("payout_method_data.bank")
		}
		if err := validateBank(m.Bank); err != nil {
			return err
		}
	}
	return nil
}

// validateBank enforces the identifier combination rules: every national bank
// code travels with an account number, and an account number alone is not a
// reachable destination. An IBAN by itself is sufficient.
func validateBank(bank *Bank) error {
	has := func(v *string) bool { return v != nil && *v != "" }

	codes := []struct {
		name  string
		value *string
	}{
		{"bank_routing_number", bank.BankRoutingNumber},
		{"bic", bank.BIC},
		{"bank_sort_code", bank.BankSortCode},
		{"blz", bank.BLZ},
		{"bank_transit_number", bank.BankTransitNumber},
	}

	anyCode := false
	for _, code := range codes {
		if has(code.value) {
			anyCode = true
			if !has(bank.BankAccountNumber) {
				return pkgerrors.InvalidDataValue(
					"payout_method_data.bank",
					fmt.Errorf("bank_account_number is required when passing %s", code.name),
				)
			}
		}
	}

	if !has(bank.BankAccountNumber) && !has(bank.IBAN) {
		return pkgerrors.InvalidDataValue(
			"payout_method_data.bank",
			fmt.Errorf("at least one of bank_account_number with a bank code, or iban, must be provided"),
		)
	}

	if has(bank.BankAccountNumber) && !anyCode {
		return pkgerrors.InvalidDataValue(
			"payout_method_data.bank",
			fmt.Errorf("bank_account_number must be passed along with at least one of bank_routing_number, bic, bank_sort_code, blz or bank_transit_number"),
		)
	}
	return nil
}

// Validate checks the retrieve request's constraints.
func (r *PayoutRetrieveRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payout retrieve request")
	}
	return nil
}
