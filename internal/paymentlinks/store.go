package paymentlinks

import (
	"context"
	"time"

	"github.com/riffus/hyperswitch/pkg/db/models"
)

// ListConstraints narrows a merchant's payment-link listing.
type ListConstraints struct {
	Limit          int
	CreatedTimeGte *time.Time
	CreatedTimeLte *time.Time
}

// Store is the persistence capability the link engine needs. Backends (the
// real database store, the in-memory store, the event-publishing variant)
// are selected at process wiring time.
type Store interface {
	FindPaymentLinkByID(ctx context.Context, paymentLinkID string) (*models.PaymentLink, error)
	FindPaymentIntentByIDAndMerchant(ctx context.Context, paymentID, merchantID string) (*models.PaymentIntent, error)
	FindMerchantAccountByID(ctx context.Context, merchantID string) (*models.MerchantAccount, error)
	ListPaymentLinksByMerchant(ctx context.Context, merchantID string, constraints ListConstraints) ([]models.PaymentLink, error)
}
