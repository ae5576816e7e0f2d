package paymentlinks

import "time"

// Fixed system defaults applied when neither the payment-scoped override nor
// the business-scoped default supplies a value. Loaded once, never mutated.
const (
	DefaultBackgroundColor = "#212E46"
	DefaultSDKTheme        = "default"
	DefaultMerchantLogo    = "https://live.hyperswitch.io/payment-link-assets/Merchant_placeholder.png"
	DefaultProductImage    = "https://live.hyperswitch.io/payment-link-assets/cart_placeholder.png"

	DefaultPaymentLinkExpiry = 15 * time.Minute

	// MaxItemsVisibleAfterCollapse caps the order items shown before the
	// checkout UI collapses the rest behind a toggle.
	MaxItemsVisibleAfterCollapse = 3
)

// Link lifecycle statuses computed from the expiry instant. Never persisted.
const (
	LinkStatusActive  = "active"
	LinkStatusExpired = "expired"
)
