// Package memory provides in-process storage implementations. The purchase
// store stands in for the external ledger collaborator; records do not
// survive a restart.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/xuanthe01656/travelhub/internal/domain"
	"github.com/xuanthe01656/travelhub/internal/infrastructure/timeutil"
)

// PurchaseStore is an in-memory domain.PurchaseStore safe for concurrent use.
type PurchaseStore struct {
	mu        sync.RWMutex
	purchases []domain.Purchase
	clock     timeutil.Clock
}

// NewPurchaseStore creates an empty purchase store.
func NewPurchaseStore() *PurchaseStore {
	return &PurchaseStore{clock: timeutil.NewRealClock()}
}

// Save implements domain.PurchaseStore.Save. An empty ID gets a generated
// UUID and a zero CreatedAt gets the current time.
func (s *PurchaseStore) Save(_ context.Context, p *domain.Purchase) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.clock.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = append(s.purchases, *p)
	return nil
}

// ListByEmail implements domain.PurchaseStore.ListByEmail.
func (s *PurchaseStore) ListByEmail(_ context.Context, email string) ([]domain.Purchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]domain.Purchase, 0)
	for _, p := range s.purchases {
		if p.Email == email {
			matches = append(matches, p)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	return matches, nil
}

// setClock substitutes the time source for tests.
func (s *PurchaseStore) setClock(clock timeutil.Clock) {
	s.clock = clock
}

var _ domain.PurchaseStore = (*PurchaseStore)(nil)
