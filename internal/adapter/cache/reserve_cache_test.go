package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soroyield/soroyield-backend/internal/domain"
)

func TestReserveCache_PutThenGet(t *testing.T) {
	c, err := NewReserveCache(time.Minute)
	require.NoError(t, err)
	defer c.Close()

	reserve := &domain.Reserve{AssetID: "asset-a", Scalar: domain.ScalarFixed7}
	c.Put(reserve)

	got, ok := c.Get("asset-a")
	require.True(t, ok)
	assert.Equal(t, "asset-a", got.AssetID)
}

func TestReserveCache_MissForUnknownAsset(t *testing.T) {
	c, err := NewReserveCache(time.Minute)
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.Get("never-stored")
	assert.False(t, ok)
}

func TestReserveCache_EntriesExpire(t *testing.T) {
	c, err := NewReserveCache(50 * time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	c.Put(&domain.Reserve{AssetID: "asset-a"})

	_, ok := c.Get("asset-a")
	require.True(t, ok, "entry should be readable before expiry")

	time.Sleep(100 * time.Millisecond)

	_, ok = c.Get("asset-a")
	assert.False(t, ok, "entry should expire after the TTL")
}

func TestReserveCache_PutReplacesPreviousEntry(t *testing.T) {
	c, err := NewReserveCache(time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Put(&domain.Reserve{AssetID: "asset-a", Config: domain.ReserveConfig{Index: 1}})
	c.Put(&domain.Reserve{AssetID: "asset-a", Config: domain.ReserveConfig{Index: 2}})

	got, ok := c.Get("asset-a")
	require.True(t, ok)
	assert.Equal(t, uint32(2), got.Config.Index)
}
