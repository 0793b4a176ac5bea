package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/brightwood-pta/directorybackend/models"
	"github.com/brightwood-pta/directorybackend/repository"
)

// DefaultMapCenter is the fallback anchor for estimated positions, roughly
// the center of the district.
var DefaultMapCenter = [2]float64{42.1308, -87.7625}

const (
	lookupTimeout = 5 * time.Second
	// nominatim usage policy: at most one request per second
	minRequestInterval = 1100 * time.Millisecond

	nominatimURL = "https://nominatim.openstreetmap.org/search"
)

// Position is a latitude/longitude pair with a flag marking jittered
// fallback positions that were never actually resolved.
type Position struct {
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lng"`
	IsEstimated bool    `json:"isEstimated"`
}

// Client resolves formatted address strings to map positions, cache-first
// against the geocode repository. A failed lookup degrades to a jittered
// position near the map center instead of an error; the map view treats those
// as estimated.
type Client struct {
	HTTP        *http.Client
	Repo        repository.GeocodeRepositoryInterface
	lastRequest time.Time
}

// NewClient creates a geocoding client over the given cache repository.
func NewClient(repo repository.GeocodeRepositoryInterface) *Client {
	return &Client{
		HTTP: &http.Client{Timeout: lookupTimeout},
		Repo: repo,
	}
}

// Resolve returns the position for a literal formatted address. Cache hits
// are served without touching the network; misses go to Nominatim and the
// result (real or estimated) is written back to the cache.
func (c *Client) Resolve(ctx context.Context, address string) Position {
	entry, err := c.Repo.GetByAddress(address)
	if err == nil {
		return Position{Latitude: entry.Latitude, Longitude: entry.Longitude, IsEstimated: entry.IsEstimated}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Error reading geocode cache for %s: %v", address, err)
	}

	pos, err := c.lookup(ctx, address)
	if err != nil {
		log.Printf("Warning: geocoding %s failed: %v; using estimated position", address, err)
		pos = estimatedPosition()
	}

	if err := c.Repo.Upsert(&models.GeocodeEntry{
		Address:     address,
		Latitude:    pos.Latitude,
		Longitude:   pos.Longitude,
		IsEstimated: pos.IsEstimated,
	}); err != nil {
		log.Printf("Error caching geocode result for %s: %v", address, err)
	}

	return pos
}

func (c *Client) lookup(ctx context.Context, address string) (Position, error) {
	// stay under the nominatim rate limit
	if wait := minRequestInterval - time.Since(c.lastRequest); wait > 0 {
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return Position{}, ctx.Err()
		}
	}
	c.lastRequest = time.Now()

	query := url.Values{}
	query.Set("format", "json")
	query.Set("q", address)
	query.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, nominatimURL+"?"+query.Encode(), nil)
	if err != nil {
		return Position{}, err
	}
	req.Header.Set("User-Agent", "SchoolDirectoryApp/1.0")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Position{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Position{}, fmt.Errorf("geocoding failed with status: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Position{}, fmt.Errorf("failed to decode geocoding response: %w", err)
	}
	if len(results) == 0 {
		return Position{}, fmt.Errorf("no geocoding results found for address: %s", address)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Position{}, fmt.Errorf("invalid latitude in geocoding response: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Position{}, fmt.Errorf("invalid longitude in geocoding response: %w", err)
	}

	return Position{Latitude: lat, Longitude: lon}, nil
}

// estimatedPosition jitters around the map center so unresolved favorites
// still show up somewhere plausible on the map.
func estimatedPosition() Position {
	return Position{
		Latitude:    DefaultMapCenter[0] + (rand.Float64()*0.01 - 0.005),
		Longitude:   DefaultMapCenter[1] + (rand.Float64()*0.01 - 0.005),
		IsEstimated: true,
	}
}
