package models

import (
	"encoding/json"
	"time"

	"github.com/riffus/hyperswitch/pkg/enums"
)

// PaymentLink is a shareable hosted-checkout reference tied to one payment
// intent. Immutable after creation except for expiry extension.
type PaymentLink struct {
	PaymentLinkID     string          `gorm:"column:payment_link_id;primaryKey"`
	PaymentID         string          `gorm:"column:payment_id;not null"`
	MerchantID        string          `gorm:"column:merchant_id;not null"`
	LinkToPay         string          `gorm:"column:link_to_pay;not null"`
	Amount            int64           `gorm:"column:amount;not null"`
	Currency          *enums.Currency `gorm:"column:currency"`
	Description       *string         `gorm:"column:description"`
	MaxAge            time.Time       `gorm:"column:max_age;not null"`
	PaymentLinkConfig json.RawMessage `gorm:"column:payment_link_config;type:jsonb"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime"`
	LastModifiedAt    time.Time       `gorm:"column:last_modified_at;autoUpdateTime"`
}

func (PaymentLink) TableName() string {
	return "payment_links"
}
