package domain

import (
	"context"
)

// RateSnapshotRepository defines the interface for computed-rate persistence
type RateSnapshotRepository interface {
	// Add stores a new rate snapshot
	Add(ctx context.Context, snapshot *RateSnapshot) error

	// GetLatest retrieves the most recent snapshot for a given asset
	GetLatest(ctx context.Context, assetID string) (*RateSnapshot, error)

	// ListLatest retrieves the most recent snapshot of every known asset
	ListLatest(ctx context.Context) ([]*RateSnapshot, error)
}

// ReserveCache is the narrow keyed interface behind which the TTL cache
// sits. The pure rate calculations never see it; only the orchestration
// layer in the rates service reads and writes through it.
type ReserveCache interface {
	// Get returns the cached reserve for an asset, if still fresh
	Get(assetID string) (*Reserve, bool)

	// Put stores a freshly decoded reserve, replacing any previous entry
	Put(reserve *Reserve)
}
