package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"bank-dashboard/internal/entities"
	"bank-dashboard/internal/integrations"
	"bank-dashboard/internal/repositories"
	apperrors "bank-dashboard/pkg/errors"
	"bank-dashboard/pkg/metrics"
	"bank-dashboard/pkg/types"
)

const (
	geocodeCachePrefix = "geocode:"
	noLocationsMessage = "Нет данных о расположении отделений"
)

type BranchMapServiceInterface interface {
	GetBranchMap(ctx context.Context, refresh bool) (*types.BranchMap, error)
}

type BranchMapService struct {
	repo     repositories.BranchLocationRepositoryInterface
	geocoder integrations.Geocoder
	cache    repositories.CacheRepositoryInterface
	cacheTTL time.Duration
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewBranchMapService собирает сервис карты. cache может быть nil: тогда каждый адрес
// запрашивается у геокодера заново.
func NewBranchMapService(
	repo repositories.BranchLocationRepositoryInterface,
	geocoder integrations.Geocoder,
	cache repositories.CacheRepositoryInterface,
	cacheTTL time.Duration,
	m *metrics.Metrics,
	logger *zap.Logger,
) BranchMapServiceInterface {
	return &BranchMapService{
		repo:     repo,
		geocoder: geocoder,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  m,
		logger:   logger,
	}
}

func FullAddress(l entities.BranchLocation) string {
	return strings.Join([]string{l.Street, l.City, l.State, l.Country}, ", ")
}

// GetBranchMap геокодирует адреса отделений по одному. Ненайденные адреса и ошибки
// геокодера отбрасывают запись, но не прерывают построение карты.
// refresh сбрасывает закешированные координаты перед запросом.
func (s *BranchMapService) GetBranchMap(ctx context.Context, refresh bool) (*types.BranchMap, error) {
	locations, err := s.repo.GetBranchLocations(ctx)
	s.metrics.Chart(BranchMapKey, err)
	if err != nil {
		return nil, err
	}

	result := &types.BranchMap{Points: make([]types.MapPoint, 0, len(locations))}
	for _, loc := range locations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		address := FullAddress(loc)
		if refresh {
			s.forget(ctx, address)
		}

		coords, ok := s.lookup(ctx, address)
		if !ok {
			continue
		}
		result.Points = append(result.Points, types.MapPoint{
			BranchID:    loc.BranchID,
			BranchName:  loc.BranchName,
			FullAddress: address,
			ZipCode:     loc.ZipCode,
			Lat:         coords.Lat,
			Lon:         coords.Lon,
		})
	}

	if len(result.Points) == 0 {
		result.Message = noLocationsMessage
		return result, nil
	}

	var center types.Coordinates
	for _, p := range result.Points {
		center.Lat += p.Lat
		center.Lon += p.Lon
	}
	n := float64(len(result.Points))
	center.Lat /= n
	center.Lon /= n
	result.Center = &center

	return result, nil
}

func (s *BranchMapService) lookup(ctx context.Context, address string) (types.Coordinates, bool) {
	if coords, ok := s.cached(ctx, address); ok {
		s.metrics.Geocode("cache")
		return coords, true
	}

	coords, found, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.metrics.Geocode("error")
		s.logger.Warn("ошибка геокодирования, адрес пропущен", zap.String("address", address), zap.Error(err))
		return types.Coordinates{}, false
	}
	if !found {
		s.metrics.Geocode("miss")
		s.logger.Debug("адрес не найден геокодером", zap.String("address", address))
		return types.Coordinates{}, false
	}
	s.metrics.Geocode("hit")
	s.remember(ctx, address, coords)
	return coords, true
}

func (s *BranchMapService) cached(ctx context.Context, address string) (types.Coordinates, bool) {
	if s.cache == nil {
		return types.Coordinates{}, false
	}
	raw, err := s.cache.Get(ctx, geocodeCachePrefix+address)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("кеш геокодинга недоступен", zap.Error(err))
		}
		return types.Coordinates{}, false
	}
	var coords types.Coordinates
	if err := json.Unmarshal([]byte(raw), &coords); err != nil {
		s.logger.Warn("повреждённая запись кеша геокодинга", zap.String("address", address), zap.Error(err))
		return types.Coordinates{}, false
	}
	return coords, true
}

func (s *BranchMapService) remember(ctx context.Context, address string, coords types.Coordinates) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(coords)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, geocodeCachePrefix+address, payload, s.cacheTTL); err != nil {
		s.logger.Warn("не удалось сохранить координаты в кеш", zap.String("address", address), zap.Error(err))
	}
}

func (s *BranchMapService) forget(ctx context.Context, address string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, geocodeCachePrefix+address); err != nil {
		s.logger.Warn("не удалось сбросить кеш геокодинга", zap.String("address", address), zap.Error(err))
	}
}
