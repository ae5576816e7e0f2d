package paymentlinks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
)

// LinkConfig is one layer of presentation/behavior overrides. Every field is
// independently optional; absence means "inherit from the next layer down".
type LinkConfig struct {
	MaxAgeSeconds *int64  `json:"max_age,omitempty"`
	Theme         *string `json:"theme,omitempty"`
	Logo          *string `json:"logo,omitempty"`
	SellerName    *string `json:"seller_name,omitempty"`
}

// PaymentLinkConfigOverride is the payment-scoped shape stored on the link record.
type PaymentLinkConfigOverride struct {
	Config LinkConfig `json:"config"`
}

// BusinessLinkConfig is the business-scoped shape stored on the merchant account.
type BusinessLinkConfig struct {
	Config     LinkConfig `json:"config"`
	DomainName *string    `json:"domain_name,omitempty"`
}

// ResolvedLinkConfig is the single fully-populated configuration produced by
// merging the payment override, the business default, and system defaults.
type ResolvedLinkConfig struct {
	MaxAge     time.Duration
	Theme      string
	Logo       string
	SellerName string
}

const linkConfigFieldName = "payment_link_config"

// ParsePaymentLinkConfig decodes the payment-scoped blob stored on a link record.
// A nil/empty blob means no override layer exists. Unknown keys are ignored so
// that blobs written by newer producers keep parsing; type mismatches on known
// keys still fail.
func ParsePaymentLinkConfig(raw json.RawMessage) (*PaymentLinkConfigOverride, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	var override PaymentLinkConfigOverride
	if err := decodeConfig(raw, &override); err != nil {
		return nil, pkgerrors.InvalidDataValue(linkConfigFieldName, err)
	}
	return &override, nil
}

func parseBusinessLinkConfig(raw json.RawMessage) (*BusinessLinkConfig, error) {
	var business BusinessLinkConfig
	if err := decodeConfig(raw, &business); err != nil {
		return nil, pkgerrors.InvalidDataValue(linkConfigFieldName, err)
	}
	return &business, nil
}

func decodeConfig(raw json.RawMessage, dest any) error {
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decoding %T: %w", dest, err)
	}
	return nil
}

// ResolveLinkConfig merges the payment-scoped override with the business-scoped
// default into one effective configuration plus the effective domain name.
//
// Precedence is field-level: each of theme, logo, seller name and max age is
// taken from the payment override if present, else from the business default
// if present, else from the fixed system default. The business blob is parsed
// lazily; a malformed blob is always surfaced, never ignored.
func ResolveLinkConfig(
	paymentOverride *PaymentLinkConfigOverride,
	businessRaw json.RawMessage,
	merchantName string,
	defaultDomain string,
) (ResolvedLinkConfig, string, error) {
	hasBusiness := len(businessRaw) > 0 && !bytes.Equal(businessRaw, []byte("null"))

	switch {
	case paymentOverride != nil && hasBusiness:
		business, err := parseBusinessLinkConfig(businessRaw)
		if err != nil {
			return ResolvedLinkConfig{}, "", err
		}
		resolved := mergeLayers(paymentOverride.Config, business.Config, merchantName)
		return resolved, effectiveDomain(business.DomainName, defaultDomain), nil

	case paymentOverride != nil:
		resolved := mergeLayers(paymentOverride.Config, LinkConfig{}, merchantName)
		return resolved, defaultDomain, nil

	case hasBusiness:
		business, err := parseBusinessLinkConfig(businessRaw)
		if err != nil {
			return ResolvedLinkConfig{}, "", err
		}
		resolved := mergeLayers(LinkConfig{}, business.Config, merchantName)
		return resolved, effectiveDomain(business.DomainName, defaultDomain), nil

	default:
		resolved := mergeLayers(LinkConfig{}, LinkConfig{}, merchantName)
		return resolved, defaultDomain, nil
	}
}

func mergeLayers(payment, business LinkConfig, merchantName string) ResolvedLinkConfig {
	return ResolvedLinkConfig{
		Theme:      firstString(payment.Theme, business.Theme, DefaultBackgroundColor),
		Logo:       firstString(payment.Logo, business.Logo, DefaultMerchantLogo),
		SellerName: firstString(payment.SellerName, business.SellerName, merchantName),
		MaxAge:     firstDuration(payment.MaxAgeSeconds, business.MaxAgeSeconds, DefaultPaymentLinkExpiry),
	}
}

func effectiveDomain(domainName *string, defaultDomain string) string {
	if domainName != nil && *domainName != "" {
		return fmt.Sprintf("https://%s", *domainName)
	}
	return defaultDomain
}

func firstString(payment, business *string, fallback string) string {
	if payment != nil {
		return *payment
	}
	if business != nil {
		return *business
	}
	return fallback
}

func firstDuration(payment, business *int64, fallback time.Duration) time.Duration {
	if payment != nil {
		return time.Duration(*payment) * time.Second
	}
	if business != nil {
		return time.Duration(*business) * time.Second
	}
	return fallback
}
