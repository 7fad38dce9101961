package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoCandidates is returned when inventory search yields nothing to rank
	ErrNoCandidates = errors.New("no inventory candidates found")

	// ErrLowConfidence is returned when a match score is below the configured threshold
	ErrLowConfidence = errors.New("match confidence below threshold")

	// ErrInventoryUnavailable is returned when the inventory searcher fails
	ErrInventoryUnavailable = errors.New("inventory search failed")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrCacheUnavailable is returned when the cache backend cannot be reached
	ErrCacheUnavailable = errors.New("cache service unavailable")
)
