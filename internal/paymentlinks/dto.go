package paymentlinks

import (
	"time"

	"github.com/riffus/hyperswitch/pkg/enums"
)

// RetrievePaymentLinkResponse is the merchant-facing view of a link record
// plus its computed lifecycle status.
type RetrievePaymentLinkResponse struct {
	PaymentLinkID  string          `json:"payment_link_id"`
	MerchantID     string          `json:"merchant_id"`
	LinkToPay      string          `json:"link_to_pay"`
	Amount         int64           `json:"amount"`
	Currency       *enums.Currency `json:"currency,omitempty"`
	Description    *string         `json:"description,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	LastModifiedAt time.Time       `json:"last_modified_at"`
	LinkExpiry     time.Time       `json:"link_expiry"`
	Status         string          `json:"status"`
}

// PaymentLinkFormData carries the rendered artifacts the hosted checkout page
// is built from. The script embeds the bootstrap payload; the style binds the
// resolved theme.
type PaymentLinkFormData struct {
	JSScript  string `json:"js_script"`
	CSSScript string `json:"css_script"`
	SDKURL    string `json:"sdk_url"`
}

// ListPaymentLinksRequest filters a merchant's link listing.
type ListPaymentLinksRequest struct {
	Limit          int        `json:"limit,omitempty"`
	CreatedTimeGte *time.Time `json:"created_time_gte,omitempty"`
	CreatedTimeLte *time.Time `json:"created_time_lte,omitempty"`
}

// ListPaymentLinksResponse wraps the ordered listing with its size.
type ListPaymentLinksResponse struct {
	Size int                           `json:"size"`
	Data []RetrievePaymentLinkResponse `json:"data"`
}
