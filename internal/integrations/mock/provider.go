// Package mock - офлайн-геокодер для тестов и стендов без доступа к Nominatim.
package mock

import (
	"context"
	"errors"
	"hash/fnv"

	"bank-dashboard/pkg/types"
)

const Name = "mock"

type MockProvider struct {
	// Known - заранее известные адреса.
	Known map[string]types.Coordinates
	// Synthetic выдаёт детерминированные координаты для любого неизвестного адреса.
	Synthetic  bool
	ShouldFail bool
	Calls      []string
}

func NewMockProvider() *MockProvider {
	return &MockProvider{Known: map[string]types.Coordinates{}}
}

func (m *MockProvider) Name() string {
	return Name
}

func (m *MockProvider) Geocode(ctx context.Context, address string) (types.Coordinates, bool, error) {
	m.Calls = append(m.Calls, address)
	if m.ShouldFail {
		return types.Coordinates{}, false, errors.New("mock: геокодер недоступен")
	}
	if c, ok := m.Known[address]; ok {
		return c, true, nil
	}
	if !m.Synthetic {
		return types.Coordinates{}, false, nil
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(address))
	sum := h.Sum64()
	// точки в пределах континентальной части США
	return types.Coordinates{
		Lat: 25 + float64(sum%2400)/100,
		Lon: -124 + float64((sum/2400)%5700)/100,
	}, true, nil
}
