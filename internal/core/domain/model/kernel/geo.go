package kernel

import (
	"fmt"

	"moving/internal/pkg/errs"
)

const (
	minLatitude  = -90.0
	maxLatitude  = 90.0
	minLongitude = -180.0
	maxLongitude = 180.0
)

// GeoPoint is a WGS84 coordinate pair. It appears on addresses and on status
// updates reported by the mover crew during a move.
type GeoPoint struct {
	latitude  float64
	longitude float64
}

// NewGeoPoint creates a validated coordinate pair.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < minLatitude || latitude > maxLatitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, minLatitude, maxLatitude)
	}
	if longitude < minLongitude || longitude > maxLongitude {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, minLongitude, maxLongitude)
	}
	return GeoPoint{latitude: latitude, longitude: longitude}, nil
}

// Latitude returns the latitude in degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual reports whether two points have identical coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%f, %f)", p.latitude, p.longitude)
}

// Address describes one end of a move: a free-text street address plus
// optional coordinates, floor, and access details.
type Address struct {
	street  string
	geo     *GeoPoint
	floor   string
	details string
}

// NewAddress creates a validated address. Street is required; geo, floor, and
// details are optional.
func NewAddress(street string, geo *GeoPoint, floor, details string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}
	return Address{
		street:  street,
		geo:     geo,
		floor:   floor,
		details: details,
	}, nil
}

// Street returns the street address line.
func (a Address) Street() string {
	return a.street
}

// Geo returns the optional coordinates, or nil when not provided.
func (a Address) Geo() *GeoPoint {
	return a.geo
}

// Floor returns the optional floor designation.
func (a Address) Floor() string {
	return a.floor
}

// Details returns optional free-text access details.
func (a Address) Details() string {
	return a.details
}

// Validate returns an error for a zero-value address.
func (a Address) Validate() error {
	if a.street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	return nil
}
