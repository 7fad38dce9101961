package inventory

import (
	"context"
	"strings"
	"sync"

	"github.com/shelfmatch/backend/internal/domain"
)

// Store is a thread-safe in-memory inventory searcher. It stands in for the
// venue's real inventory storage, which lives behind the same interface.
type Store struct {
	mutex sync.RWMutex
	items []domain.InventoryCandidate
}

// NewStore creates an in-memory inventory store, optionally pre-seeded.
func NewStore(seed ...domain.InventoryCandidate) *Store {
	return &Store{items: append([]domain.InventoryCandidate(nil), seed...)}
}

// Upsert adds a record or replaces the record with the same ID.
func (s *Store) Upsert(record domain.InventoryCandidate) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for i, existing := range s.items {
		if existing.ID == record.ID {
			s.items[i] = record
			return
		}
	}
	s.items = append(s.items, record)
}

// SearchByName returns records whose name contains the term as a
// case-insensitive substring. An empty term matches nothing.
func (s *Store) SearchByName(ctx context.Context, term string) ([]domain.InventoryCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return nil, nil
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var found []domain.InventoryCandidate
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item.Name), term) {
			found = append(found, item)
		}
	}
	return found, nil
}

// SearchByBarcode returns records carrying exactly the given barcode.
func (s *Store) SearchByBarcode(ctx context.Context, barcode string) ([]domain.InventoryCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if barcode == "" {
		return nil, nil
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	var found []domain.InventoryCandidate
	for _, item := range s.items {
		if item.Barcode == barcode {
			found = append(found, item)
		}
	}
	return found, nil
}

// All returns a copy of every record, for duplicate scans over the full set.
func (s *Store) All(ctx context.Context) ([]domain.InventoryCandidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return append([]domain.InventoryCandidate(nil), s.items...), nil
}

// Size returns the current number of records (for debugging/monitoring)
func (s *Store) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.items)
}
