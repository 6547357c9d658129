package rates

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/soroyield/soroyield-backend/internal/domain"
	"github.com/soroyield/soroyield-backend/internal/usecase/decoder"
)

// Service orchestrates snapshot ingestion and rate reads. It owns no math:
// decoding and yield computation stay in their pure packages, while the
// service moves results between the injected cache and repository.
type Service struct {
	Cache        domain.ReserveCache
	SnapshotRepo domain.RateSnapshotRepository
}

// NewService creates a new rates Service instance
func NewService(cache domain.ReserveCache, snapshotRepo domain.RateSnapshotRepository) *Service {
	return &Service{
		Cache:        cache,
		SnapshotRepo: snapshotRepo,
	}
}

// IngestSnapshot decodes one reserve entry tree, refreshes the cache and
// records the computed rates.
//
// The tree arrives already decoded from its wire-level envelope; this
// service never touches raw ledger bytes. backstopTakeRate is the pool's
// raw 1e7-scaled take-rate, read from the pool contract by the same
// upstream collaborator.
func (s *Service) IngestSnapshot(ctx context.Context, tree domain.ContractValue, backstopTakeRate decimal.Decimal) (*domain.RateSnapshot, error) {
	reserve, err := decoder.Decode(tree)
	if err != nil {
		return nil, err
	}

	yield, err := ComputeYield(reserve, backstopTakeRate)
	if err != nil {
		return nil, err
	}

	s.Cache.Put(reserve)

	snapshot := &domain.RateSnapshot{
		ID:          uuid.New(),
		AssetID:     reserve.AssetID,
		Utilization: yield.Utilization,
		SupplyAPR:   yield.SupplyAPR,
		SupplyAPY:   yield.SupplyAPY,
		BorrowAPR:   yield.BorrowAPR,
		BorrowAPY:   yield.BorrowAPY,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.SnapshotRepo.Add(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("failed to record rate snapshot: %w", err)
	}

	return snapshot, nil
}

// GetReserve returns the cached reserve for an asset. A cache miss means
// the snapshot expired before a refresh arrived; the caller should trigger
// a refetch upstream rather than retry here.
func (s *Service) GetReserve(ctx context.Context, assetID string) (*domain.Reserve, error) {
	reserve, ok := s.Cache.Get(assetID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrReserveNotFound, assetID)
	}
	return reserve, nil
}

// GetYield recomputes annualized rates for an asset from its cached
// reserve. When the cache has expired, the most recent persisted snapshot
// is served instead, so readers see slightly stale rates rather than an
// error during a refresh gap.
func (s *Service) GetYield(ctx context.Context, assetID string, backstopTakeRate decimal.Decimal) (*YieldResult, error) {
	reserve, ok := s.Cache.Get(assetID)
	if ok {
		return ComputeYield(reserve, backstopTakeRate)
	}

	snapshot, err := s.SnapshotRepo.GetLatest(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrReserveNotFound, assetID)
	}
	return &YieldResult{
		AssetID:     snapshot.AssetID,
		Utilization: snapshot.Utilization,
		SupplyAPR:   snapshot.SupplyAPR,
		SupplyAPY:   snapshot.SupplyAPY,
		BorrowAPR:   snapshot.BorrowAPR,
		BorrowAPY:   snapshot.BorrowAPY,
	}, nil
}

// ListRates returns the most recent recorded rates for every known asset
func (s *Service) ListRates(ctx context.Context) ([]*domain.RateSnapshot, error) {
	snapshots, err := s.SnapshotRepo.ListLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate snapshots: %w", err)
	}
	return snapshots, nil
}
