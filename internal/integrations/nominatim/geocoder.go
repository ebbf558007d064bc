// Package nominatim - клиент поиска адресов OpenStreetMap Nominatim.
// Публичный сервис разрешает не больше одного запроса в секунду и требует User-Agent.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"bank-dashboard/pkg/config"
	"bank-dashboard/pkg/types"
)

const Name = "nominatim"

type Geocoder struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	logger     *zap.Logger
}

type place struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func New(cfg config.GeocoderConfig, logger *zap.Logger) *Geocoder {
	limit := rate.Inf
	if cfg.MinDelay > 0 {
		limit = rate.Every(cfg.MinDelay)
	}
	return &Geocoder{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger.Named("nominatim"),
	}
}

func (g *Geocoder) Name() string { return Name }

// Geocode ждёт своей очереди у лимитера и запрашивает первый результат поиска.
func (g *Geocoder) Geocode(ctx context.Context, address string) (types.Coordinates, bool, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return types.Coordinates{}, false, err
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "jsonv2")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return types.Coordinates{}, false, fmt.Errorf("ошибка создания запроса к Nominatim: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return types.Coordinates{}, false, fmt.Errorf("ошибка запроса к Nominatim: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Coordinates{}, false, fmt.Errorf("Nominatim вернул статус: %s", resp.Status)
	}

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return types.Coordinates{}, false, fmt.Errorf("ошибка парсинга ответа Nominatim: %w", err)
	}
	if len(places) == 0 {
		g.logger.Debug("Адрес не найден", zap.String("address", address))
		return types.Coordinates{}, false, nil
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return types.Coordinates{}, false, fmt.Errorf("некорректная широта %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return types.Coordinates{}, false, fmt.Errorf("некорректная долгота %q: %w", places[0].Lon, err)
	}
	return types.Coordinates{Lat: lat, Lon: lon}, true, nil
}
