package places

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/pkg/config"
)

const (
	defaultBaseURL     = "https://maps.googleapis.com/maps/api"
	defaultCacheTTL    = 15 * 60
	defaultHTTPTimeout = 8 * time.Second
	maxDirectionSteps  = 5
)

// ErrRouteNotFound is returned when no driving route exists between two points.
var ErrRouteNotFound = errors.New("no route found")

// GoogleProvider implements PlacesProvider using the Google Maps web services.
type GoogleProvider struct {
	apiKey     string
	baseURL    string
	cacheTTL   int
	httpClient *http.Client
	cache      providers.CacheProvider
}

// NewGoogleProvider creates a Google places provider. cache may be nil.
func NewGoogleProvider(cfg config.PlacesConfig, cache providers.CacheProvider, httpClient *http.Client) *GoogleProvider {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	ttl := cfg.CacheTTLSeconds
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &GoogleProvider{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		cacheTTL:   ttl,
		httpClient: httpClient,
		cache:      cache,
	}
}

// NearbyPlaces runs a nearby search for one place type.
func (g *GoogleProvider) NearbyPlaces(ctx context.Context, center providers.Coordinates, radiusMeters int, placeType string) ([]*providers.Place, error) {
	cacheKey := "places:v1:nearby:" + hashKey(fmt.Sprintf("%.4f,%.4f|%d|%s", center.Latitude, center.Longitude, radiusMeters, placeType))
	if g.cache != nil {
		if cached, err := g.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
			var places []*providers.Place
			if err := json.Unmarshal(cached, &places); err == nil {
				return places, nil
			}
		}
	}

	params := url.Values{}
	params.Set("location", formatLatLng(center))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("type", placeType)

	var payload googleNearbyResponse
	if err := g.get(ctx, "/place/nearbysearch/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus("nearby search", payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}

	places := make([]*providers.Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		place := &providers.Place{
			ID:      r.PlaceID,
			Name:    r.Name,
			Address: r.Vicinity,
			Coordinates: providers.Coordinates{
				Latitude:  r.Geometry.Location.Lat,
				Longitude: r.Geometry.Location.Lng,
			},
			Types:  r.Types,
			Rating: r.Rating,
		}
		if r.OpeningHours != nil {
			open := r.OpeningHours.OpenNow
			place.OpenNow = &open
		}
		places = append(places, place)
	}

	if g.cache != nil {
		if encoded, err := json.Marshal(places); err == nil {
			_ = g.cache.Set(ctx, cacheKey, encoded, g.cacheTTL)
		}
	}
	return places, nil
}

// PlaceDetails fetches phone, website and opening hours for a place.
func (g *GoogleProvider) PlaceDetails(ctx context.Context, placeID string) (*providers.PlaceDetails, error) {
	if strings.TrimSpace(placeID) == "" {
		return nil, fmt.Errorf("place id is required")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "formatted_phone_number,website,opening_hours")

	var payload googleDetailsResponse
	if err := g.get(ctx, "/place/details/json", params, &payload); err != nil {
		return nil, err
	}
	if err := checkStatus("place details", payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}

	details := &providers.PlaceDetails{
		Phone:   payload.Result.FormattedPhoneNumber,
		Website: payload.Result.Website,
	}
	if payload.Result.OpeningHours != nil {
		open := payload.Result.OpeningHours.OpenNow
		details.OpenNow = &open
	}
	return details, nil
}

// RouteDistance asks the distance matrix for the driving distance in km.
func (g *GoogleProvider) RouteDistance(ctx context.Context, from, to providers.Coordinates) (float64, error) {
	params := url.Values{}
	params.Set("origins", formatLatLng(from))
	params.Set("destinations", formatLatLng(to))
	params.Set("mode", "driving")
	params.Set("units", "metric")

	var payload googleDistanceMatrixResponse
	if err := g.get(ctx, "/distancematrix/json", params, &payload); err != nil {
		return 0, err
	}
	if err := checkStatus("distance matrix", payload.Status, payload.ErrorMessage); err != nil {
		return 0, err
	}
	if len(payload.Rows) == 0 || len(payload.Rows[0].Elements) == 0 {
		return 0, ErrRouteNotFound
	}
	element := payload.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("%w: %s", ErrRouteNotFound, element.Status)
	}
	return float64(element.Distance.Value) / 1000.0, nil
}

// Directions returns duration, distance and the first few steps of a driving route.
func (g *GoogleProvider) Directions(ctx context.Context, from, to providers.Coordinates) (*entities.Directions, error) {
	params := url.Values{}
	params.Set("origin", formatLatLng(from))
	params.Set("destination", formatLatLng(to))
	params.Set("mode", "driving")

	var payload googleDirectionsResponse
	if err := g.get(ctx, "/directions/json", params, &payload); err != nil {
		return nil, err
	}
	if payload.Status == "ZERO_RESULTS" || payload.Status == "NOT_FOUND" {
		return nil, ErrRouteNotFound
	}
	if err := checkStatus("directions", payload.Status, payload.ErrorMessage); err != nil {
		return nil, err
	}
	if len(payload.Routes) == 0 || len(payload.Routes[0].Legs) == 0 {
		return nil, ErrRouteNotFound
	}

	leg := payload.Routes[0].Legs[0]
	steps := make([]string, 0, maxDirectionSteps)
	for i, step := range leg.Steps {
		if i == maxDirectionSteps {
			break
		}
		steps = append(steps, step.HTMLInstructions)
	}
	return &entities.Directions{
		Duration: leg.Duration.Text,
		Distance: leg.Distance.Text,
		Steps:    steps,
	}, nil
}

func (g *GoogleProvider) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if g.apiKey == "" {
		return fmt.Errorf("google maps api key is required")
	}
	params.Set("key", g.apiKey)

	reqURL := fmt.Sprintf("%s%s?%s", g.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("places request returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode places response: %w", err)
	}
	return nil
}

func checkStatus(operation, status, message string) error {
	if status == "OK" || status == "ZERO_RESULTS" {
		return nil
	}
	if message != "" {
		return fmt.Errorf("%s failed: %s - %s", operation, status, message)
	}
	return fmt.Errorf("%s failed: %s", operation, status)
}

func formatLatLng(c providers.Coordinates) string {
	return fmt.Sprintf("%f,%f", c.Latitude, c.Longitude)
}

func hashKey(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type googleGeometry struct {
	Location googleLocation `json:"location"`
}

type googleOpeningHours struct {
	OpenNow bool `json:"open_now"`
}

type googleNearbyResponse struct {
	Status       string               `json:"status"`
	ErrorMessage string               `json:"error_message,omitempty"`
	Results      []googleNearbyResult `json:"results"`
}

type googleNearbyResult struct {
	PlaceID      string              `json:"place_id"`
	Name         string              `json:"name"`
	Vicinity     string              `json:"vicinity"`
	Geometry     googleGeometry      `json:"geometry"`
	Rating       float64             `json:"rating"`
	Types        []string            `json:"types"`
	OpeningHours *googleOpeningHours `json:"opening_hours,omitempty"`
}

type googleDetailsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Result       struct {
		FormattedPhoneNumber string              `json:"formatted_phone_number"`
		Website              string              `json:"website"`
		OpeningHours         *googleOpeningHours `json:"opening_hours,omitempty"`
	} `json:"result"`
}

type googleTextValue struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

type googleDistanceMatrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Rows         []struct {
		Elements []struct {
			Status   string          `json:"status"`
			Distance googleTextValue `json:"distance"`
			Duration googleTextValue `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

type googleDirectionsResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
	Routes       []struct {
		Legs []struct {
			Duration googleTextValue `json:"duration"`
			Distance googleTextValue `json:"distance"`
			Steps    []struct {
				HTMLInstructions string `json:"html_instructions"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}
