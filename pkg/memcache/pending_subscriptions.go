// pkg/memcache/pending_subscriptions.go
package mem

import (
	"sync"
)

// PendingSubscription is staged before the browser is redirected to the
// gateway and consumed when the gateway redirects back. It bridges the
// stateless redirect round-trip; no subscription row exists until the
// success leg reads it.
type PendingSubscription struct {
	UserID       string
	ProductID    string
	Status       string // "active" or "trial"
	BillingCycle string // "monthly" or "yearly"
	TrialEnd     *int64 // unix seconds, nil for non-trial
	ProductName  string
}

type PendingSubscriptionStore interface {
	Put(userID string, rec PendingSubscription)

	// Get reads without consuming; the reconciliation handler deletes
	// explicitly only after the subscription write commits.
	Get(userID string) (PendingSubscription, bool)

	// Delete is idempotent; deleting an absent record is a no-op.
	Delete(userID string)
}

// PendingSubscriptions keeps one staged record per user, last write wins.
// Records are not expired: if the gateway never redirects back, the record
// stays until the next checkout overwrites it.
type PendingSubscriptions struct {
	mu   sync.RWMutex
	data map[string]PendingSubscription
}

func NewPendingSubscriptions() *PendingSubscriptions {
	return &PendingSubscriptions{
		data: make(map[string]PendingSubscription),
	}
}

func (s *PendingSubscriptions) Put(userID string, rec PendingSubscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = rec
}

func (s *PendingSubscriptions) Get(userID string) (PendingSubscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.data[userID]
	return rec, ok
}

func (s *PendingSubscriptions) Delete(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
}
