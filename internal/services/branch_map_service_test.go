package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bank-dashboard/internal/entities"
	"bank-dashboard/internal/integrations/mock"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/types"
)

type fakeLocationRepo struct {
	locations []entities.BranchLocation
}

func (f *fakeLocationRepo) GetBranchLocations(context.Context) ([]entities.BranchLocation, error) {
	return f.locations, nil
}

type memoryCache struct {
	data    map[string]string
	deleted []string
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string]string{}} }

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	switch v := value.(type) {
	case []byte:
		c.data[key] = string(v)
	case string:
		c.data[key] = v
	}
	return nil
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.data[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (c *memoryCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(c.data, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

var (
	mainStreet = entities.BranchLocation{BranchID: 1, BranchName: "Central", Street: "1 Main St", City: "Springfield", State: "IL", ZipCode: "62701", Country: "USA"}
	nowhere    = entities.BranchLocation{BranchID: 2, BranchName: "Ghost", Street: "0 Nowhere", City: "Atlantis", State: "XX", ZipCode: "00000", Country: "USA"}
	harbor     = entities.BranchLocation{BranchID: 3, BranchName: "Harbor", Street: "9 Pier Rd", City: "Boston", State: "MA", ZipCode: "02110", Country: "USA"}
)

func TestFullAddress(t *testing.T) {
	assert.Equal(t, "1 Main St, Springfield, IL, USA", FullAddress(mainStreet))
}

func TestBranchMapService_DropsMissesAndCentersOnPoints(t *testing.T) {
	geo := mock.NewMockProvider()
	geo.Known[FullAddress(mainStreet)] = types.Coordinates{Lat: 40, Lon: -90}
	geo.Known[FullAddress(harbor)] = types.Coordinates{Lat: 42, Lon: -70}

	repo := &fakeLocationRepo{locations: []entities.BranchLocation{mainStreet, nowhere, harbor}}
	svc := NewBranchMapService(repo, geo, nil, time.Hour, nil, zap.NewNop())

	result, err := svc.GetBranchMap(context.Background(), false)
	require.NoError(t, err)

	require.Len(t, result.Points, 2)
	assert.Equal(t, int64(1), result.Points[0].BranchID)
	assert.Equal(t, "62701", result.Points[0].ZipCode)
	assert.Equal(t, int64(3), result.Points[1].BranchID)
	require.NotNil(t, result.Center)
	assert.InDelta(t, 41, result.Center.Lat, 1e-9)
	assert.InDelta(t, -80, result.Center.Lon, 1e-9)
	assert.Empty(t, result.Message)
	assert.Len(t, geo.Calls, 3, "каждый адрес запрашивается по одному разу")
}

func TestBranchMapService_GeocoderFailureYieldsEmptyMap(t *testing.T) {
	geo := mock.NewMockProvider()
	geo.ShouldFail = true

	repo := &fakeLocationRepo{locations: []entities.BranchLocation{mainStreet, harbor}}
	svc := NewBranchMapService(repo, geo, nil, time.Hour, nil, zap.NewNop())

	result, err := svc.GetBranchMap(context.Background(), false)
	require.NoError(t, err, "ошибки геокодера не прерывают построение карты")
	assert.Empty(t, result.Points)
	assert.Nil(t, result.Center)
	assert.Equal(t, noLocationsMessage, result.Message)
}

func TestBranchMapService_NoAddresses(t *testing.T) {
	svc := NewBranchMapService(&fakeLocationRepo{}, mock.NewMockProvider(), nil, time.Hour, nil, zap.NewNop())

	result, err := svc.GetBranchMap(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, result.Points)
	assert.Equal(t, noLocationsMessage, result.Message)
}

func TestBranchMapService_UsesCache(t *testing.T) {
	geo := mock.NewMockProvider()
	geo.Known[FullAddress(mainStreet)] = types.Coordinates{Lat: 40, Lon: -90}
	cache := newMemoryCache()

	repo := &fakeLocationRepo{locations: []entities.BranchLocation{mainStreet}}
	svc := NewBranchMapService(repo, geo, cache, time.Hour, nil, zap.NewNop())

	first, err := svc.GetBranchMap(context.Background(), false)
	require.NoError(t, err)
	second, err := svc.GetBranchMap(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, first.Points, second.Points)
	assert.Len(t, geo.Calls, 1, "повторный запрос обслуживается из кеша")
	assert.Contains(t, cache.data, geocodeCachePrefix+FullAddress(mainStreet))

	_, err = svc.GetBranchMap(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, geo.Calls, 2, "refresh сбрасывает кеш")
	assert.Equal(t, []string{geocodeCachePrefix + FullAddress(mainStreet)}, cache.deleted)
}

func TestBranchMapService_CancelledContext(t *testing.T) {
	geo := mock.NewMockProvider()
	geo.Synthetic = true
	repo := &fakeLocationRepo{locations: []entities.BranchLocation{mainStreet, harbor}}
	svc := NewBranchMapService(repo, geo, nil, time.Hour, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetBranchMap(ctx, false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, geo.Calls)
}
