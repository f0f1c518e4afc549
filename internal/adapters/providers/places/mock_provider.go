package places

import (
	"context"
	"fmt"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
	"github.com/zatekoja/sehatsaathi/backend/internal/domain/providers"
	"github.com/zatekoja/sehatsaathi/backend/pkg/utils"
)

// MockProvider returns synthetic facilities around the search center. It is
// used in development when no Google key is configured.
type MockProvider struct{}

// NewMockProvider creates a new mock places provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

var mockRatings = map[string][2]float64{
	"hospital":       {4.2, 3.8},
	"emergency_room": {4.5, 4.0},
	"clinic":         {4.0, 3.6},
	"pharmacy":       {4.1, 3.9},
}

// NearbyPlaces returns two places of the requested type near center.
func (m *MockProvider) NearbyPlaces(ctx context.Context, center providers.Coordinates, radiusMeters int, placeType string) ([]*providers.Place, error) {
	ratings, ok := mockRatings[placeType]
	if !ok {
		ratings = [2]float64{3.5, 3.5}
	}
	// Offsets stay well inside the smallest search radius.
	return []*providers.Place{
		{
			ID:          "mock-" + placeType + "-1",
			Name:        fmt.Sprintf("City %s 1", placeLabel(placeType)),
			Address:     "12 Main Road",
			Coordinates: providers.Coordinates{Latitude: center.Latitude + 0.005, Longitude: center.Longitude + 0.005},
			Types:       []string{placeType, "health"},
			Rating:      ratings[0],
		},
		{
			ID:          "mock-" + placeType + "-2",
			Name:        fmt.Sprintf("Community %s 2", placeLabel(placeType)),
			Address:     "48 Station Road",
			Coordinates: providers.Coordinates{Latitude: center.Latitude - 0.01, Longitude: center.Longitude - 0.008},
			Types:       []string{placeType, "health"},
			Rating:      ratings[1],
		},
	}, nil
}

// PlaceDetails returns a fixed phone number.
func (m *MockProvider) PlaceDetails(ctx context.Context, placeID string) (*providers.PlaceDetails, error) {
	open := true
	return &providers.PlaceDetails{Phone: "+91-11-00000000", OpenNow: &open}, nil
}

// RouteDistance uses the haversine distance.
func (m *MockProvider) RouteDistance(ctx context.Context, from, to providers.Coordinates) (float64, error) {
	return providers.HaversineKm(from, to), nil
}

// Directions returns a single straight-line step.
func (m *MockProvider) Directions(ctx context.Context, from, to providers.Coordinates) (*entities.Directions, error) {
	km := providers.HaversineKm(from, to)
	minutes := int(km/30*60) + 1
	return &entities.Directions{
		Duration: fmt.Sprintf("%d mins", minutes),
		Distance: utils.FormatDistance(km),
		Steps:    []string{"Head towards the destination"},
	}, nil
}

func placeLabel(placeType string) string {
	switch placeType {
	case "emergency_room":
		return "Emergency Centre"
	case "clinic":
		return "Clinic"
	case "pharmacy":
		return "Pharmacy"
	default:
		return "Hospital"
	}
}
