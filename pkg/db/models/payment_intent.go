package models

import (
	"encoding/json"
	"time"

	"github.com/riffus/hyperswitch/pkg/enums"
)

// PaymentIntent is the read-only view of a merchant's request to collect a
// payment. The payment-processing subsystem owns its lifecycle; this service
// only reads it.
type PaymentIntent struct {
	PaymentID     string             `gorm:"column:payment_id;primaryKey"`
	MerchantID    string             `gorm:"column:merchant_id;not null"`
	Status        enums.IntentStatus `gorm:"column:status;not null"`
	Amount        int64              `gorm:"column:amount;not null"`
	Currency      *enums.Currency    `gorm:"column:currency"`
	ReturnURL     *string            `gorm:"column:return_url"`
	OrderDetails  json.RawMessage    `gorm:"column:order_details;type:jsonb"`
	ClientSecret  *string            `gorm:"column:client_secret"`
	PaymentLinkID *string            `gorm:"column:payment_link_id"`
	CreatedAt     time.Time          `gorm:"column:created_at;autoCreateTime"`
	ModifiedAt    time.Time          `gorm:"column:modified_at;autoUpdateTime"`
}

func (PaymentIntent) TableName() string {
	return "payment_intents"
}
