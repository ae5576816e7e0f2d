package models

import (
	"encoding/json"
	"time"
)

// MerchantAccount holds the merchant-level settings the link engine reads:
// the publishable key handed to the SDK, the default return URL, and the
// business-scoped payment-link configuration blob.
type MerchantAccount struct {
	MerchantID         string          `gorm:"column:merchant_id;primaryKey"`
	MerchantName       *string         `gorm:"column:merchant_name"`
	PublishableKey     *string         `gorm:"column:publishable_key"`
	ReturnURL          *string         `gorm:"column:return_url"`
	BusinessLinkConfig json.RawMessage `gorm:"column:payment_link_config;type:jsonb"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime"`
	ModifiedAt         time.Time       `gorm:"column:modified_at;autoUpdateTime"`
}

func (MerchantAccount) TableName() string {
	return "merchant_accounts"
}
