package paymentlinks

import (
	"context"
	"sort"
	"sync"

	"github.com/riffus/hyperswitch/pkg/db/models"
	pkgerrors "github.com/riffus/hyperswitch/pkg/errors"
)

// MemoryStore is an in-process Store used by tests and local development.
// It satisfies the same contract as the database-backed store.
type MemoryStore struct {
	mu        sync.RWMutex
	links     map[string]models.PaymentLink
	intents   map[string]models.PaymentIntent
	merchants map[string]models.MerchantAccount
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		links:     map[string]models.PaymentLink{},
		intents:   map[string]models.PaymentIntent{},
		merchants: map[string]models.MerchantAccount{},
	}
}

// PutPaymentLink seeds a link record.
func (m *MemoryStore) PutPaymentLink(link models.PaymentLink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.links[link.PaymentLinkID] = link
}

// PutPaymentIntent seeds an intent record.
func (m *MemoryStore) PutPaymentIntent(intent models.PaymentIntent) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.intents[intent.PaymentID] = intent
}

// PutMerchantAccount seeds a merchant account.
func (m *MemoryStore) PutMerchantAccount(merchant models.MerchantAccount) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.merchants[merchant.MerchantID] = merchant
}

func (m *MemoryStore) FindPaymentLinkByID(_ context.Context, paymentLinkID string) (*models.PaymentLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	link, ok := m.links[paymentLinkID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment link not found")
	}
	return &link, nil
}

func (m *MemoryStore) FindPaymentIntentByIDAndMerchant(_ context.Context, paymentID, merchantID string) (*models.PaymentIntent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	intent, ok := m.intents[paymentID]
	if !ok || intent.MerchantID != merchantID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "payment not found")
	}
	return &intent, nil
}

func (m *MemoryStore) FindMerchantAccountByID(_ context.Context, merchantID string) (*models.MerchantAccount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	merchant, ok := m.merchants[merchantID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "merchant account not found")
	}
	return &merchant, nil
}

func (m *MemoryStore) ListPaymentLinksByMerchant(_ context.Context, merchantID string, constraints ListConstraints) ([]models.PaymentLink, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	links := make([]models.PaymentLink, 0)
	for _, link := range m.links {
		if link.MerchantID != merchantID {
			continue
		}
		if constraints.CreatedTimeGte != nil && link.CreatedAt.Before(*constraints.CreatedTimeGte) {
			continue
		}
		if constraints.CreatedTimeLte != nil && link.CreatedAt.After(*constraints.CreatedTimeLte) {
			continue
		}
		links = append(links, link)
	}

	sort.Slice(links, func(i, j int) bool {
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})
	if constraints.Limit > 0 && len(links) > constraints.Limit {
		links = links[:constraints.Limit]
	}
	return links, nil
}
