package paymentlinks

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/riffus/hyperswitch/pkg/clock"
	"github.com/riffus/hyperswitch/pkg/db/models"
	"github.com/riffus/hyperswitch/pkg/enums"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
	"github.com/riffus/hyperswitch/pkg/logger"
)

func testService(store Store, clk clock.Clock) *Service {
	return NewService(ServiceParams{
		Store:         store,
		Clock:         clk,
		Logger:        logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		SDKURL:        "https://sdk.example.com/v1/hyperloader.js",
		DefaultDomain: "https://checkout.example.com",
	})
}

func seededStore(now time.Time) *MemoryStore {
	store := NewMemoryStore()
	store.PutMerchantAccount(models.MerchantAccount{
		MerchantID:     "merchant_abc",
		MerchantName:   strPtr("Acme"),
		PublishableKey: strPtr("pk_live_acme"),
	})
	store.PutPaymentIntent(models.PaymentIntent{
		PaymentID:     "pay_123",
		MerchantID:    "merchant_abc",
		Status:        enums.IntentStatusRequiresPaymentMethod,
		Amount:        2500,
		Currency:      currencyPtr(enums.CurrencyUSD),
		ReturnURL:     strPtr("https://merchant.example.com/return"),
		ClientSecret:  strPtr("pay_123_secret"),
		PaymentLinkID: strPtr("plink_1"),
	})
	store.PutPaymentLink(models.PaymentLink{
		PaymentLinkID: "plink_1",
		PaymentID:     "pay_123",
		MerchantID:    "merchant_abc",
		LinkToPay:     "https://checkout.example.com/payment_link/plink_1",
		Amount:        2500,
		Currency:      currencyPtr(enums.CurrencyUSD),
		MaxAge:        now.Add(15 * time.Minute),
		CreatedAt:     now.Add(-time.Hour),
	})
	return store
}

func TestInitiatePaymentLinkFlow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := testService(seededStore(now), clock.Fixed(now))

	form, err := svc.InitiatePaymentLinkFlow(context.Background(), "merchant_abc", "pay_123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.SDKURL != "https://sdk.example.com/v1/hyperloader.js" {
		t.Fatalf("unexpected sdk url %q", form.SDKURL)
	}
	for _, literal := range []string{`"pay_123"`, `"pk_live_acme"`, `"USD"`} {
		if !strings.Contains(form.JSScript, literal) {
			t.Fatalf("expected script to contain %s, got %q", literal, form.JSScript)
		}
	}
	if !strings.Contains(form.CSSScript, "--primary-color: "+DefaultBackgroundColor+";") {
		t.Fatalf("expected default primary color, got %q", form.CSSScript)
	}
}

func TestInitiateRejectsSucceededPayment(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)
	store.PutPaymentIntent(models.PaymentIntent{
		PaymentID:     "pay_123",
		MerchantID:    "merchant_abc",
		Status:        enums.IntentStatusSucceeded,
		Amount:        2500,
		Currency:      currencyPtr(enums.CurrencyUSD),
		ClientSecret:  strPtr("pay_123_secret"),
		PaymentLinkID: strPtr("plink_1"),
	})
	svc := testService(store, clock.Fixed(now))

	_, err := svc.InitiatePaymentLinkFlow(context.Background(), "merchant_abc", "pay_123")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotAllowed) {
		t.Fatalf("expected NOT_ALLOWED, got %v", err)
	}
	details, ok := pkgerrors.As(err).Details().(map[string]any)
	if !ok || details["action"] != "use payment link for" {
		t.Fatalf("expected action description, got %v", pkgerrors.As(err).Details())
	}
}

func TestInitiateMissingClientSecret(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)
	store.PutPaymentIntent(models.PaymentIntent{
		PaymentID:     "pay_123",
		MerchantID:    "merchant_abc",
		Status:        enums.IntentStatusRequiresPaymentMethod,
		Amount:        2500,
		Currency:      currencyPtr(enums.CurrencyUSD),
		ReturnURL:     strPtr("https://merchant.example.com/return"),
		PaymentLinkID: strPtr("plink_1"),
	})
	svc := testService(store, clock.Fixed(now))

	_, err := svc.InitiatePaymentLinkFlow(context.Background(), "merchant_abc", "pay_123")
	if !pkgerrors.IsCode(err, pkgerrors.CodeMissingField) {
		t.Fatalf("expected MISSING_REQUIRED_FIELD, got %v", err)
	}
	details, ok := pkgerrors.As(err).Details().(map[string]any)
	if !ok || details["field_name"] != "client_secret" {
		t.Fatalf("expected client_secret, got %v", pkgerrors.As(err).Details())
	}
}

func TestInitiateIntentWithoutLink(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)
	store.PutPaymentIntent(models.PaymentIntent{
		PaymentID:    "pay_123",
		MerchantID:   "merchant_abc",
		Status:       enums.IntentStatusRequiresPaymentMethod,
		Amount:       2500,
		Currency:     currencyPtr(enums.CurrencyUSD),
		ClientSecret: strPtr("pay_123_secret"),
	})
	svc := testService(store, clock.Fixed(now))

	_, err := svc.InitiatePaymentLinkFlow(context.Background(), "merchant_abc", "pay_123")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND for intent without link, got %v", err)
	}
}

func TestInitiateUnknownPayment(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := testService(seededStore(now), clock.Fixed(now))

	_, err := svc.InitiatePaymentLinkFlow(context.Background(), "merchant_abc", "pay_missing")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}

	_, err = svc.InitiatePaymentLinkFlow(context.Background(), "merchant_other", "pay_123")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND for wrong merchant, got %v", err)
	}
}

func TestRetrievePaymentLinkStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)

	svc := testService(store, clock.Fixed(now))
	view, err := svc.RetrievePaymentLink(context.Background(), "plink_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != LinkStatusActive {
		t.Fatalf("expected active link, got %q", view.Status)
	}
	if view.LinkToPay != "https://checkout.example.com/payment_link/plink_1" {
		t.Fatalf("unexpected link_to_pay %q", view.LinkToPay)
	}

	late := testService(store, clock.Fixed(now.Add(16*time.Minute)))
	view, err = late.RetrievePaymentLink(context.Background(), "plink_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != LinkStatusExpired {
		t.Fatalf("expected expired link, got %q", view.Status)
	}
}

func TestRetrievePaymentLinkNotFound(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := testService(seededStore(now), clock.Fixed(now))

	_, err := svc.RetrievePaymentLink(context.Background(), "plink_missing")
	if !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestListPaymentLinksPreservesOrder(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)
	for i, id := range []string{"plink_2", "plink_3", "plink_4"} {
		store.PutPaymentLink(models.PaymentLink{
			PaymentLinkID: id,
			PaymentID:     "pay_123",
			MerchantID:    "merchant_abc",
			MaxAge:        now.Add(15 * time.Minute),
			CreatedAt:     now.Add(-time.Duration(i+2) * time.Hour),
		})
	}
	svc := testService(store, clock.Fixed(now))

	resp, err := svc.ListPaymentLinks(context.Background(), "merchant_abc", ListPaymentLinksRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Size != 4 {
		t.Fatalf("expected 4 links, got %d", resp.Size)
	}
	want := []string{"plink_1", "plink_2", "plink_3", "plink_4"}
	for i, view := range resp.Data {
		if view.PaymentLinkID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], view.PaymentLinkID)
		}
	}
}

func TestListPaymentLinksCollectOrFail(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)
	store.PutPaymentLink(models.PaymentLink{
		PaymentLinkID:     "plink_corrupt",
		PaymentID:         "pay_456",
		MerchantID:        "merchant_abc",
		MaxAge:            now.Add(15 * time.Minute),
		CreatedAt:         now.Add(-2 * time.Hour),
		PaymentLinkConfig: json.RawMessage(`{"config":{"theme":12}}`),
	})
	svc := testService(store, clock.Fixed(now))

	_, err := svc.ListPaymentLinks(context.Background(), "merchant_abc", ListPaymentLinksRequest{})
	if !pkgerrors.IsCode(err, pkgerrors.CodeInvalidValue) {
		t.Fatalf("expected listing to fail on the corrupt record, got %v", err)
	}
}

func TestListPaymentLinksConstraints(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := seededStore(now)
	store.PutPaymentLink(models.PaymentLink{
		PaymentLinkID: "plink_old",
		PaymentID:     "pay_old",
		MerchantID:    "merchant_abc",
		MaxAge:        now,
		CreatedAt:     now.Add(-48 * time.Hour),
	})
	svc := testService(store, clock.Fixed(now))

	cutoff := now.Add(-24 * time.Hour)
	resp, err := svc.ListPaymentLinks(context.Background(), "merchant_abc", ListPaymentLinksRequest{
		CreatedTimeGte: &cutoff,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Size != 1 || resp.Data[0].PaymentLinkID != "plink_1" {
		t.Fatalf("expected only plink_1, got %+v", resp.Data)
	}

	resp, err = svc.ListPaymentLinks(context.Background(), "merchant_abc", ListPaymentLinksRequest{Limit: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Size != 1 {
		t.Fatalf("expected limit applied, got %d", resp.Size)
	}
}
