package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	soroyieldv1 "github.com/soroyield/soroyield-backend/internal/adapter/grpc/soroyield/v1"
	"github.com/soroyield/soroyield-backend/internal/domain"
	"github.com/soroyield/soroyield-backend/internal/usecase/rates"
)

const testAsset = "CAS3J7GYLGXMF6TDJBBYYSE3HQ6BBSMLNUQ34T6TZMYMW2EVH34XOWMA"

// reserveEntryJSON is a reserve snapshot for a 7-decimal asset with
// 1000 supplied and 500 borrowed
const reserveEntryJSON = `{"map":[
	{"key":{"sym":"asset"},"val":{"address":"` + testAsset + `"}},
	{"key":{"sym":"scalar"},"val":{"u64":"10000000"}},
	{"key":{"sym":"config"},"val":{"map":[
		{"key":{"sym":"enabled"},"val":{"bool":true}},
		{"key":{"sym":"r_base"},"val":{"u32":50000}},
		{"key":{"sym":"r_one"},"val":{"u32":400000}},
		{"key":{"sym":"r_two"},"val":{"u32":2000000}},
		{"key":{"sym":"r_three"},"val":{"u32":10000000}},
		{"key":{"sym":"util"},"val":{"u32":7500000}}
	]}},
	{"key":{"sym":"data"},"val":{"map":[
		{"key":{"sym":"b_supply"},"val":{"i128":{"hi":"0","lo":"10000000000"}}},
		{"key":{"sym":"d_supply"},"val":{"i128":{"hi":"0","lo":"5000000000"}}},
		{"key":{"sym":"d_rate"},"val":{"i128":{"hi":"0","lo":"1000000000000"}}},
		{"key":{"sym":"ir_mod"},"val":{"i128":{"hi":"0","lo":"300326200"}}},
		{"key":{"sym":"last_time"},"val":{"u64":"1735689600"}}
	]}}
]}`

type memCache struct {
	reserves map[string]*domain.Reserve
}

func newMemCache() *memCache {
	return &memCache{reserves: make(map[string]*domain.Reserve)}
}

func (c *memCache) Get(assetID string) (*domain.Reserve, bool) {
	r, ok := c.reserves[assetID]
	return r, ok
}

func (c *memCache) Put(reserve *domain.Reserve) {
	c.reserves[reserve.AssetID] = reserve
}

type memSnapshotRepo struct {
	snapshots []*domain.RateSnapshot
	listErr   error
}

func (r *memSnapshotRepo) Add(ctx context.Context, snapshot *domain.RateSnapshot) error {
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

func (r *memSnapshotRepo) GetLatest(ctx context.Context, assetID string) (*domain.RateSnapshot, error) {
	for i := len(r.snapshots) - 1; i >= 0; i-- {
		if r.snapshots[i].AssetID == assetID {
			return r.snapshots[i], nil
		}
	}
	return nil, errors.New("no snapshots for asset")
}

func (r *memSnapshotRepo) ListLatest(ctx context.Context) ([]*domain.RateSnapshot, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
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

func newTestServer() (*Server, *memCache, *memSnapshotRepo) {
	cache := newMemCache()
	repo := &memSnapshotRepo{}
	return NewServer(rates.NewService(cache, repo)), cache, repo
}

func submitTestSnapshot(t *testing.T, server *Server) *soroyieldv1.SubmitSnapshotResponse {
	t.Helper()
	resp, err := server.SubmitSnapshot(context.Background(), &soroyieldv1.SubmitSnapshotRequest{
		EntryJson:        []byte(reserveEntryJSON),
		BackstopTakeRate: "2000000",
	})
	require.NoError(t, err)
	return resp
}

func TestServer_SubmitSnapshot(t *testing.T) {
	server, cache, repo := newTestServer()

	resp := submitTestSnapshot(t, server)

	assert.Equal(t, testAsset, resp.AssetId)
	assert.NotNil(t, resp.RecordedAt)

	_, ok := cache.Get(testAsset)
	assert.True(t, ok, "reserve should be cached after ingestion")
	assert.Len(t, repo.snapshots, 1)
}

func TestServer_SubmitSnapshotRejectsEmptyEntry(t *testing.T) {
	server, _, _ := newTestServer()

	_, err := server.SubmitSnapshot(context.Background(), &soroyieldv1.SubmitSnapshotRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_SubmitSnapshotRejectsInvalidJSON(t *testing.T) {
	server, _, _ := newTestServer()

	_, err := server.SubmitSnapshot(context.Background(), &soroyieldv1.SubmitSnapshotRequest{
		EntryJson: []byte(`{"u32":`),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_SubmitSnapshotRejectsNonMapTree(t *testing.T) {
	server, _, _ := newTestServer()

	_, err := server.SubmitSnapshot(context.Background(), &soroyieldv1.SubmitSnapshotRequest{
		EntryJson: []byte(`{"u32":7}`),
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_SubmitSnapshotRejectsBadTakeRate(t *testing.T) {
	server, _, _ := newTestServer()

	_, err := server.SubmitSnapshot(context.Background(), &soroyieldv1.SubmitSnapshotRequest{
		EntryJson:        []byte(reserveEntryJSON),
		BackstopTakeRate: "not-a-number",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_GetReserve(t *testing.T) {
	server, _, _ := newTestServer()
	submitTestSnapshot(t, server)

	resp, err := server.GetReserve(context.Background(), &soroyieldv1.GetReserveRequest{AssetId: testAsset})
	require.NoError(t, err)
	require.NotNil(t, resp.Reserve)

	assert.Equal(t, testAsset, resp.Reserve.AssetId)
	assert.Equal(t, "10000000", resp.Reserve.Scalar)
	assert.True(t, resp.Reserve.Enabled)
	assert.Equal(t, "10000000000", resp.Reserve.TotalSupplied)
	assert.Equal(t, "5000000000", resp.Reserve.TotalBorrowed)
	assert.Equal(t, "7500000", resp.Reserve.TargetUtilization)
	require.NotNil(t, resp.Reserve.LastUpdate)
	assert.Equal(t, int64(1735689600), resp.Reserve.LastUpdate.Seconds)
}

func TestServer_GetReserveUnknownAssetIsNotFound(t *testing.T) {
	server, _, _ := newTestServer()

	_, err := server.GetReserve(context.Background(), &soroyieldv1.GetReserveRequest{AssetId: "unknown"})
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_GetReserveRejectsEmptyAsset(t *testing.T) {
	server, _, _ := newTestServer()

	_, err := server.GetReserve(context.Background(), &soroyieldv1.GetReserveRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_GetYield(t *testing.T) {
	server, _, _ := newTestServer()
	submitTestSnapshot(t, server)

	resp, err := server.GetYield(context.Background(), &soroyieldv1.GetYieldRequest{
		AssetId:          testAsset,
		BackstopTakeRate: "2000000",
	})
	require.NoError(t, err)

	assert.Equal(t, testAsset, resp.AssetId)
	assert.Equal(t, "0.33333333", resp.Utilization)
	assert.NotEmpty(t, resp.SupplyApr)
	assert.NotEmpty(t, resp.BorrowApy)
}

func TestServer_GetYieldTakeRateOutOfBounds(t *testing.T) {
	server, _, _ := newTestServer()
	submitTestSnapshot(t, server)

	_, err := server.GetYield(context.Background(), &soroyieldv1.GetYieldRequest{
		AssetId:          testAsset,
		BackstopTakeRate: "10000001",
	})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_ListRates(t *testing.T) {
	server, _, _ := newTestServer()
	submitTestSnapshot(t, server)

	resp, err := server.ListRates(context.Background(), &soroyieldv1.ListRatesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Rates, 1)

	rate := resp.Rates[0]
	assert.Equal(t, testAsset, rate.AssetId)
	assert.Equal(t, "0.33333333", rate.Utilization)
	assert.NotNil(t, rate.CreatedAt)
}

func TestServer_ListRatesSurfacesRepoFailure(t *testing.T) {
	cache := newMemCache()
	repo := &memSnapshotRepo{listErr: errors.New("connection reset")}
	server := NewServer(rates.NewService(cache, repo))

	_, err := server.ListRates(context.Background(), &soroyieldv1.ListRatesRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.Internal, status.Code(err))
}
