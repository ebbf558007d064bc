package integrations

import (
	"context"

	"bank-dashboard/pkg/types"
)

// Geocoder превращает почтовый адрес в координаты.
// Промах (адрес не найден) - это ok=false без ошибки.
type Geocoder interface {
	Name() string
	Geocode(ctx context.Context, address string) (coords types.Coordinates, ok bool, err error)
}
