package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/internal/infrastructure/observability"
	"github.com/zatekoja/sehatsaathi/backend/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	maxFacilityCandidates = 10
	maxFacilityResults    = 5
	enrichConcurrency     = 4
)

// SearchTier is the place categories and radius searched for a severity.
type SearchTier struct {
	Types        []string
	RadiusMeters int
}

var facilitySearchTiers = map[entities.Severity]SearchTier{
	entities.SeverityHigh:   {Types: []string{"hospital", "emergency_room"}, RadiusMeters: 10000},
	entities.SeverityMedium: {Types: []string{"hospital", "clinic"}, RadiusMeters: 5000},
	entities.SeverityLow:    {Types: []string{"clinic", "pharmacy"}, RadiusMeters: 3000},
}

// SearchTierFor returns the tier for severity; unknown values use low.
func SearchTierFor(severity entities.Severity) SearchTier {
	if tier, ok := facilitySearchTiers[severity]; ok {
		return tier
	}
	return facilitySearchTiers[entities.SeverityLow]
}

var emergencyPlaceTypes = map[string]bool{"hospital": true, "emergency_room": true}

// ErrPlacesUnavailable is returned by Directions when no provider is configured.
var ErrPlacesUnavailable = errors.New("places provider not configured")

// FacilitySearchService finds and ranks nearby health facilities.
type FacilitySearchService struct {
	places  providers.PlacesProvider
	timeout time.Duration
	metrics *observability.Metrics
}

// NewFacilitySearchService creates a facility search service. places may be nil.
func NewFacilitySearchService(places providers.PlacesProvider, timeout time.Duration, metrics *observability.Metrics) *FacilitySearchService {
	return &FacilitySearchService{places: places, timeout: timeout, metrics: metrics}
}

// FindNearby searches the tier for severity around loc and returns the best
// ranked facilities. Per-category failures are logged and skipped.
func (s *FacilitySearchService) FindNearby(ctx context.Context, loc entities.Location, severity entities.Severity) []entities.FacilityResult {
	results := []entities.FacilityResult{}
	if s.places == nil {
		return results
	}
	logger := observability.LoggerFromContext(ctx)
	tier := SearchTierFor(severity)
	center := providers.CoordinatesFrom(loc)

	seen := make(map[string]bool)
	var candidates []*providers.Place
	for _, placeType := range tier.Types {
		places, err := s.nearby(ctx, center, tier.RadiusMeters, placeType)
		if err != nil {
			logger.Warn().Err(err).Str("place_type", placeType).Msg("nearby search failed")
			continue
		}
		for _, p := range places {
			if p == nil || seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			candidates = append(candidates, p)
		}
	}
	if len(candidates) > maxFacilityCandidates {
		candidates = candidates[:maxFacilityCandidates]
	}
	if len(candidates) == 0 {
		observability.TriageFallbacks.WithLabelValues("places").Inc()
		return results
	}

	results = make([]entities.FacilityResult, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, place := range candidates {
		i, place := i, place
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					logger.Error().Interface("panic", r).Str("place_id", place.ID).Msg("facility enrichment panicked")
					results[i] = baseResult(center, place)
				}
			}()
			results[i] = s.enrich(gctx, center, place)
			return nil
		})
	}
	_ = g.Wait()

	return RankFacilities(results)
}

// RankFacilities orders by rating descending then distance ascending and
// keeps the top results. Equal keys keep their input order.
func RankFacilities(results []entities.FacilityResult) []entities.FacilityResult {
	ranked := make([]entities.FacilityResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	if len(ranked) > maxFacilityResults {
		ranked = ranked[:maxFacilityResults]
	}
	return ranked
}

// Directions returns a route summary between two points.
func (s *FacilitySearchService) Directions(ctx context.Context, origin, destination entities.Location) (*entities.Directions, error) {
	if s.places == nil {
		return nil, ErrPlacesUnavailable
	}
	callCtx, cancel := withOracleTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	directions, err := s.places.Directions(callCtx, providers.CoordinatesFrom(origin), providers.CoordinatesFrom(destination))
	observability.RecordOracleCall(ctx, s.metrics, "places", "directions", err, time.Since(start))
	return directions, err
}

func (s *FacilitySearchService) nearby(ctx context.Context, center providers.Coordinates, radius int, placeType string) ([]*providers.Place, error) {
	callCtx, cancel := withOracleTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	places, err := s.places.NearbyPlaces(callCtx, center, radius, placeType)
	observability.RecordOracleCall(ctx, s.metrics, "places", "nearby", err, time.Since(start))
	return places, err
}

// baseResult is a facility built from the search hit alone, measured as the
// crow flies.
func baseResult(center providers.Coordinates, place *providers.Place) entities.FacilityResult {
	result := entities.FacilityResult{
		PlaceID: place.ID,
		Name:    place.Name,
		Address: place.Address,
		Rating:  place.Rating,
		Location: entities.Location{
			Latitude:  place.Coordinates.Latitude,
			Longitude: place.Coordinates.Longitude,
		},
		OpenNow: place.OpenNow,
		Types:   place.Types,
	}
	if result.Types == nil {
		result.Types = []string{}
	}
	for _, t := range result.Types {
		if emergencyPlaceTypes[t] {
			result.IsEmergency = true
			break
		}
	}
	result.DistanceKm = providers.HaversineKm(center, place.Coordinates)
	result.DistanceText = utils.FormatDistance(result.DistanceKm)
	return result
}

func (s *FacilitySearchService) enrich(ctx context.Context, center providers.Coordinates, place *providers.Place) entities.FacilityResult {
	result := baseResult(center, place)
	result.DistanceKm = s.distance(ctx, center, place.Coordinates)
	result.DistanceText = utils.FormatDistance(result.DistanceKm)

	callCtx, cancel := withOracleTimeout(ctx, s.timeout)
	defer cancel()
	details, err := s.places.PlaceDetails(callCtx, place.ID)
	if err != nil {
		observability.LoggerFromContext(ctx).Debug().Err(err).Str("place_id", place.ID).Msg("place details unavailable")
		return result
	}
	result.Phone = details.Phone
	result.Website = details.Website
	if details.OpenNow != nil {
		result.OpenNow = details.OpenNow
	}
	return result
}

func (s *FacilitySearchService) distance(ctx context.Context, from, to providers.Coordinates) float64 {
	callCtx, cancel := withOracleTimeout(ctx, s.timeout)
	defer cancel()
	km, err := s.places.RouteDistance(callCtx, from, to)
	if err != nil || km < 0 {
		return providers.HaversineKm(from, to)
	}
	return km
}
