package entities

// Location is a WGS84 coordinate as sent by clients.
type Location struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// FacilityResult is a ranked nearby health facility.
type FacilityResult struct {
	PlaceID      string   `json:"place_id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Rating       float64  `json:"rating"`
	DistanceKm   float64  `json:"distance"`
	DistanceText string   `json:"distance_text"`
	Location     Location `json:"location"`
	Phone        string   `json:"phone,omitempty"`
	Website      string   `json:"website,omitempty"`
	OpenNow      *bool    `json:"open_now,omitempty"`
	Types        []string `json:"types"`
	IsEmergency  bool     `json:"is_emergency"`
}

// Directions is a summarized driving route.
type Directions struct {
	Duration string   `json:"duration"`
	Distance string   `json:"distance"`
	Steps    []string `json:"steps"`
}
