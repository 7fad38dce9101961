package domain

import (
	"context"
	"time"
)

// InventorySearcher is the storage capability the matcher is handed.
// SearchByName performs case-insensitive substring search over record names;
// the matching core never reimplements it.
type InventorySearcher interface {
	SearchByName(ctx context.Context, term string) ([]InventoryCandidate, error)
	SearchByBarcode(ctx context.Context, barcode string) ([]InventoryCandidate, error)
}

// InventoryLister exposes the full record set. Duplicate detection scans
// every existing record rather than a search subset.
type InventoryLister interface {
	All(ctx context.Context) ([]InventoryCandidate, error)
}

// CacheRepository defines the interface for caching operations at the
// delivery layer. The matching/normalization core itself never caches.
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
