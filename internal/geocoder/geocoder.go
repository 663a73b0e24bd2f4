// internal/geocoder/geocoder.go
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rentals/internal/lib/logger/utils"
	"rentals/internal/models"

	"go.uber.org/zap"
)

var (
	ErrNotConfigured   = errors.New("geocoder URL not configured")
	ErrAddressNotFound = errors.New("address could not be located")
)

// Geocoder resolves a postal address to map coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}

type GeocoderClient struct {
	baseURL string
	client  *http.Client
}

func NewGeocoderClient(baseURL string) *GeocoderClient {
	return &GeocoderClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Geocode looks the address up. A 404 from the service, or an address with
// nothing in it, is ErrAddressNotFound.
func (g *GeocoderClient) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	if g.baseURL == "" {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(address) == "" {
		return nil, ErrAddressNotFound
	}

	lookupURL, err := g.lookupURL(address)
	if err != nil {
		return nil, err
	}

	utils.Logger.Debug("Geocoding address", zap.String("address", address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: building lookup request: %w", address, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: geocoder unreachable: %w", address, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("geocoding %q: %w", address, ErrAddressNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("geocoding %q: geocoder answered %s", address, resp.Status)
	}

	var coordinates models.Coordinates
	if err := json.NewDecoder(resp.Body).Decode(&coordinates); err != nil {
		return nil, fmt.Errorf("geocoding %q: unreadable coordinates: %w", address, err)
	}
	if !onEarth(coordinates) {
		return nil, fmt.Errorf("geocoding %q: coordinates out of range (lat %v, lng %v)", address, coordinates.Lat, coordinates.Lng)
	}

	utils.Logger.Debug("Address geocoded", zap.String("address", address), zap.Float64("lat", coordinates.Lat), zap.Float64("lng", coordinates.Lng))
	return &coordinates, nil
}

func (g *GeocoderClient) lookupURL(address string) (string, error) {
	u, err := url.Parse(g.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid GEOCODER_URL %q: %w", g.baseURL, err)
	}
	query := u.Query()
	query.Set("address", address)
	u.RawQuery = query.Encode()
	return u.String(), nil
}

func onEarth(c models.Coordinates) bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
