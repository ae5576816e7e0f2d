package paymentlinks

import (
	"context"
	"encoding/json"
	"time"

	"github.com/riffus/hyperswitch/pkg/clock"
	"github.com/riffus/hyperswitch/pkg/db/models"
	"github.com/riffus/hyperswitch/pkg/logger"
)

// EventPublisher emits link-access events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, payload []byte, attrs map[string]string) error
}

// linkAccessEvent is the wire shape published when a hosted link is fetched.
type linkAccessEvent struct {
	PaymentLinkID string    `json:"payment_link_id"`
	PaymentID     string    `json:"payment_id"`
	MerchantID    string    `json:"merchant_id"`
	AccessedAt    time.Time `json:"accessed_at"`
}

// EventStore decorates a Store with link-access event publishing. Reads that
// fail do not publish; publish failures are logged and never fail the read.
type EventStore struct {
	Store

	publisher EventPublisher
	clk       clock.Clock
	logg      *logger.Logger
}

// NewEventStore wraps the inner store with access-event publishing.
func NewEventStore(inner Store, publisher EventPublisher, clk clock.Clock, logg *logger.Logger) *EventStore {
	if clk == nil {
		clk = clock.System()
	}
	return &EventStore{Store: inner, publisher: publisher, clk: clk, logg: logg}
}

func (s *EventStore) FindPaymentLinkByID(ctx context.Context, paymentLinkID string) (*models.PaymentLink, error) {
	link, err := s.Store.FindPaymentLinkByID(ctx, paymentLinkID)
	if err != nil {
		return nil, err
	}
	s.publishAccess(ctx, link)
	return link, nil
}

func (s *EventStore) publishAccess(ctx context.Context, link *models.PaymentLink) {
	if s.publisher == nil {
		return
	}
	payload, err := json.Marshal(linkAccessEvent{
		PaymentLinkID: link.PaymentLinkID,
		PaymentID:     link.PaymentID,
		MerchantID:    link.MerchantID,
		AccessedAt:    s.clk.Now().UTC(),
	})
	if err != nil {
		s.logg.Error(ctx, "failed to encode link access event", err)
		return
	}
	attrs := map[string]string{
		"event_type":  "payment_link.accessed",
		"merchant_id": link.MerchantID,
	}
	if err := s.publisher.Publish(ctx, payload, attrs); err != nil {
		s.logg.Error(ctx, "failed to publish link access event", err)
	}
}
