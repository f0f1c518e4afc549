package providers

import (
	"context"
	"math"

	"github.com/zatekoja/sehatsaathi/backend/internal/domain/entities"
)

// PlacesProvider defines the interface for nearby facility search and routing
type PlacesProvider interface {
	// NearbyPlaces finds places of one category within radiusMeters of center
	NearbyPlaces(ctx context.Context, center Coordinates, radiusMeters int, placeType string) ([]*Place, error)

	// PlaceDetails fetches contact details for a place
	PlaceDetails(ctx context.Context, placeID string) (*PlaceDetails, error)

	// RouteDistance returns the driving distance between two points in kilometers
	RouteDistance(ctx context.Context, from, to Coordinates) (float64, error)

	// Directions returns a driving route summary
	Directions(ctx context.Context, from, to Coordinates) (*entities.Directions, error)
}

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// CoordinatesFrom converts an API location.
func CoordinatesFrom(loc entities.Location) Coordinates {
	return Coordinates{Latitude: loc.Latitude, Longitude: loc.Longitude}
}

// Place represents a place returned by a nearby search
type Place struct {
	ID          string
	Name        string
	Address     string
	Coordinates Coordinates
	Types       []string
	Rating      float64
	OpenNow     *bool
}

// PlaceDetails holds optional contact data for a place
type PlaceDetails struct {
	Phone   string
	Website string
	OpenNow *bool
}

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(from, to Coordinates) float64 {
	const earthRadiusKm = 6371.0

	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	deltaLat := (to.Latitude - from.Latitude) * math.Pi / 180
	deltaLon := (to.Longitude - from.Longitude) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
