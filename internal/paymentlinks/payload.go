package paymentlinks

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/riffus/hyperswitch/pkg/db/models"
	"github.com/riffus/hyperswitch/pkg/enums"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"github.com/riffus/hyperswitch/pkg/masking"
)

// OrderDetail is one purchased item shown on the hosted checkout page.
type OrderDetail struct {
	ProductName    string  `json:"product_name"`
	Quantity       int     `json:"quantity"`
	Amount         int64   `json:"amount"`
	ProductImgLink *string `json:"product_img_link,omitempty"`
}

// PaymentLinkDetails is the bootstrap payload handed to the client-side
// renderer. It exists only for the duration of one render and is never
// persisted; it is the single place where the publishable key and client
// secret appear in the clear.
type PaymentLinkDetails struct {
	Amount                       int64          `json:"amount"`
	Currency                     enums.Currency `json:"currency"`
	PaymentID                    string         `json:"payment_id"`
	MerchantName                 string         `json:"merchant_name"`
	OrderDetails                 []OrderDetail  `json:"order_details,omitempty"`
	ReturnURL                    string         `json:"return_url"`
	Expiry                       time.Time      `json:"expiry"`
	PubKey                       string         `json:"pub_key"`
	ClientSecret                 string         `json:"client_secret"`
	MerchantLogo                 string         `json:"merchant_logo"`
	MaxItemsVisibleAfterCollapse int            `json:"max_items_visible_after_collapse"`
	Theme                        string         `json:"theme"`
}

// sdkRequirements are the secrets the embedded SDK cannot start without.
type sdkRequirements struct {
	pubKey       masking.Secret
	currency     enums.Currency
	clientSecret masking.Secret
}

func validateSDKRequirements(merchant *models.MerchantAccount, intent *models.PaymentIntent) (sdkRequirements, error) {
	if merchant.PublishableKey == nil || *merchant.PublishableKey == "" {
		return sdkRequirements{}, pkgerrors.MissingRequiredField("pub_key")
	}
	if intent.Currency == nil {
		return sdkRequirements{}, pkgerrors.MissingRequiredField("currency")
	}
	if intent.ClientSecret == nil || *intent.ClientSecret == "" {
		return sdkRequirements{}, pkgerrors.MissingRequiredField("client_secret")
	}
	return sdkRequirements{
		pubKey:       masking.NewSecret(*merchant.PublishableKey),
		currency:     *intent.Currency,
		clientSecret: masking.NewSecret(*intent.ClientSecret),
	}, nil
}

func resolveReturnURL(intent *models.PaymentIntent, merchant *models.MerchantAccount) (string, error) {
	if intent.ReturnURL != nil && *intent.ReturnURL != "" {
		return *intent.ReturnURL, nil
	}
	if merchant.ReturnURL != nil && *merchant.ReturnURL != "" {
		return *merchant.ReturnURL, nil
	}
	return "", pkgerrors.MissingRequiredField("return_url")
}

// Field name reported when the stored order-details blob does not parse.
// Matches the name the payment-processing subsystem uses for the same record.
const orderDetailsFieldName = "OrderDetailsWithAmount"

// validateOrderDetails parses the intent's stored order-details blob and
// assigns the placeholder product image to items missing one. All other
// fields pass through unchanged.
func validateOrderDetails(raw json.RawMessage) ([]OrderDetail, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var details []OrderDetail
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, pkgerrors.InvalidDataValue(orderDetailsFieldName, err)
	}
	for i := range details {
		if details[i].ProductImgLink == nil {
			img := DefaultProductImage
			details[i].ProductImgLink = &img
		}
	}
	return details, nil
}

// AssemblePayload builds the bootstrap payload from the intent, merchant,
// resolved configuration and link record, or fails with a named
// missing-required-field error. No partial payload is ever returned.
func AssemblePayload(
	intent *models.PaymentIntent,
	merchant *models.MerchantAccount,
	resolved ResolvedLinkConfig,
	link *models.PaymentLink,
) (*PaymentLinkDetails, error) {
	orderDetails, err := validateOrderDetails(intent.OrderDetails)
	if err != nil {
		return nil, err
	}

	returnURL, err := resolveReturnURL(intent, merchant)
	if err != nil {
		return nil, err
	}

	sdk, err := validateSDKRequirements(merchant, intent)
	if err != nil {
		return nil, err
	}

	merchantName := resolved.SellerName
	if merchantName == "" && merchant.MerchantName != nil {
		merchantName = *merchant.MerchantName
	}

	theme := resolved.Theme
	if theme == "" {
		theme = DefaultSDKTheme
	}
	logo := resolved.Logo
	if logo == "" {
		logo = DefaultMerchantLogo
	}

	return &PaymentLinkDetails{
		Amount:                       intent.Amount,
		Currency:                     sdk.currency,
		PaymentID:                    intent.PaymentID,
		MerchantName:                 merchantName,
		OrderDetails:                 orderDetails,
		ReturnURL:                    returnURL,
		Expiry:                       link.MaxAge,
		PubKey:                       sdk.pubKey.Peek(),
		ClientSecret:                 sdk.clientSecret.Peek(),
		MerchantLogo:                 logo,
		MaxItemsVisibleAfterCollapse: MaxItemsVisibleAfterCollapse,
		Theme:                        theme,
	}, nil
}
