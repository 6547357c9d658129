package rates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soroyield/soroyield-backend/internal/domain"
)

// fakeCache is an in-memory ReserveCache without TTL semantics
type fakeCache struct {
	reserves map[string]*domain.Reserve
}

func newFakeCache() *fakeCache {
	return &fakeCache{reserves: make(map[string]*domain.Reserve)}
}

func (c *fakeCache) Get(assetID string) (*domain.Reserve, bool) {
	r, ok := c.reserves[assetID]
	return r, ok
}

func (c *fakeCache) Put(reserve *domain.Reserve) {
	c.reserves[reserve.AssetID] = reserve
}

// fakeSnapshotRepo is an in-memory RateSnapshotRepository
type fakeSnapshotRepo struct {
	snapshots []*domain.RateSnapshot
	addErr    error
}

func (r *fakeSnapshotRepo) Add(ctx context.Context, snapshot *domain.RateSnapshot) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *fakeSnapshotRepo) GetLatest(ctx context.Context, assetID string) (*domain.RateSnapshot, error) {
	for i := len(r.snapshots) - 1; i >= 0; i-- {
		if r.snapshots[i].AssetID == assetID {
			return r.snapshots[i], nil
		}
	}
	return nil, errors.New("no snapshots for asset")
}

func (r *fakeSnapshotRepo) ListLatest(ctx context.Context) ([]*domain.RateSnapshot, error) {
	latest := make(map[string]*domain.RateSnapshot)
	for _, s := range r.snapshots {
		latest[s.AssetID] = s
	}
	out := make([]*domain.RateSnapshot, 0, len(latest))
	for _, s := range latest {
		out = append(out, s)
	}
	return out, nil
}

// reserveEntryTree builds the reserve snapshot tree matching testReserve
// with 1000 supplied and 500 borrowed on a 7-decimal asset
func reserveEntryTree(asset string) domain.ContractValue {
	sym := domain.SymbolVal
	return domain.MapVal(
		domain.MapEntry{Key: sym("asset"), Val: domain.AddressVal(asset)},
		domain.MapEntry{Key: sym("scalar"), Val: domain.U64Val(10000000)},
		domain.MapEntry{Key: sym("config"), Val: domain.MapVal(
			domain.MapEntry{Key: sym("enabled"), Val: domain.BoolVal(true)},
			domain.MapEntry{Key: sym("r_base"), Val: domain.U32Val(50000)},
			domain.MapEntry{Key: sym("r_one"), Val: domain.U32Val(400000)},
			domain.MapEntry{Key: sym("r_two"), Val: domain.U32Val(2000000)},
			domain.MapEntry{Key: sym("r_three"), Val: domain.U32Val(10000000)},
			domain.MapEntry{Key: sym("util"), Val: domain.U32Val(7500000)},
		)},
		domain.MapEntry{Key: sym("data"), Val: domain.MapVal(
			domain.MapEntry{Key: sym("b_supply"), Val: domain.I128Val(0, 10000000000)},
			domain.MapEntry{Key: sym("d_supply"), Val: domain.I128Val(0, 5000000000)},
			domain.MapEntry{Key: sym("d_rate"), Val: domain.I128Val(0, 1000000000000)},
			domain.MapEntry{Key: sym("ir_mod"), Val: domain.I128Val(0, 300326200)},
			domain.MapEntry{Key: sym("last_time"), Val: domain.U64Val(1735689600)},
		)},
	)
}

const serviceAsset = "CAS3J7GYLGXMF6TDJBBYYSE3HQ6BBSMLNUQ34T6TZMYMW2EVH34XOWMA"

func TestService_IngestSnapshotCachesAndRecords(t *testing.T) {
	cache := newFakeCache()
	repo := &fakeSnapshotRepo{}
	svc := NewService(cache, repo)

	snapshot, err := svc.IngestSnapshot(context.Background(), reserveEntryTree(serviceAsset), takeRate20)
	require.NoError(t, err)

	assert.Equal(t, serviceAsset, snapshot.AssetID)
	assert.True(t, snapshot.Utilization.Equal(d("0.33333333")))
	assert.True(t, snapshot.BorrowAPR.GreaterThan(snapshot.SupplyAPR))
	assert.False(t, snapshot.CreatedAt.IsZero())

	// The decoded reserve must now be readable through the cache
	reserve, err := svc.GetReserve(context.Background(), serviceAsset)
	require.NoError(t, err)
	assert.Equal(t, serviceAsset, reserve.AssetID)

	// And the snapshot row must be persisted
	require.Len(t, repo.snapshots, 1)
	assert.Equal(t, snapshot.ID, repo.snapshots[0].ID)
}

func TestService_IngestSnapshotRejectsMalformedTree(t *testing.T) {
	svc := NewService(newFakeCache(), &fakeSnapshotRepo{})

	_, err := svc.IngestSnapshot(context.Background(), domain.U32Val(1), takeRate20)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformed)
}

func TestService_IngestSnapshotSurfacesRepoFailure(t *testing.T) {
	repo := &fakeSnapshotRepo{addErr: errors.New("connection reset")}
	svc := NewService(newFakeCache(), repo)

	_, err := svc.IngestSnapshot(context.Background(), reserveEntryTree(serviceAsset), takeRate20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestService_GetReserveMissIsNotFound(t *testing.T) {
	svc := NewService(newFakeCache(), &fakeSnapshotRepo{})

	_, err := svc.GetReserve(context.Background(), "unknown-asset")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReserveNotFound)
}

func TestService_GetYieldRecomputesFromCache(t *testing.T) {
	cache := newFakeCache()
	repo := &fakeSnapshotRepo{}
	svc := NewService(cache, repo)

	_, err := svc.IngestSnapshot(context.Background(), reserveEntryTree(serviceAsset), takeRate20)
	require.NoError(t, err)

	yield, err := svc.GetYield(context.Background(), serviceAsset, takeRate20)
	require.NoError(t, err)
	assert.Equal(t, serviceAsset, yield.AssetID)
	assert.True(t, yield.SupplyAPY.GreaterThan(yield.SupplyAPR))
}

func TestService_GetYieldFallsBackToLatestSnapshot(t *testing.T) {
	cache := newFakeCache()
	repo := &fakeSnapshotRepo{}
	svc := NewService(cache, repo)

	snapshot, err := svc.IngestSnapshot(context.Background(), reserveEntryTree(serviceAsset), takeRate20)
	require.NoError(t, err)

	// Simulate TTL expiry between refreshes
	delete(cache.reserves, serviceAsset)

	yield, err := svc.GetYield(context.Background(), serviceAsset, takeRate20)
	require.NoError(t, err)
	assert.True(t, yield.SupplyAPR.Equal(snapshot.SupplyAPR))
	assert.True(t, yield.BorrowAPY.Equal(snapshot.BorrowAPY))
}

func TestService_GetYieldUnknownAssetIsNotFound(t *testing.T) {
	svc := NewService(newFakeCache(), &fakeSnapshotRepo{})

	_, err := svc.GetYield(context.Background(), "unknown-asset", takeRate20)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReserveNotFound)
}

func TestService_ListRatesReturnsLatestPerAsset(t *testing.T) {
	cache := newFakeCache()
	repo := &fakeSnapshotRepo{}
	svc := NewService(cache, repo)

	otherAsset := "CBQHNAXSI55GX2GN6D67GK7BHVPSLJUGZQEU7WJ5LKR5PNUCGLIMAO4K"
	_, err := svc.IngestSnapshot(context.Background(), reserveEntryTree(serviceAsset), takeRate20)
	require.NoError(t, err)
	_, err = svc.IngestSnapshot(context.Background(), reserveEntryTree(otherAsset), takeRate20)
	require.NoError(t, err)

	rates, err := svc.ListRates(context.Background())
	require.NoError(t, err)
	assert.Len(t, rates, 2)
}
