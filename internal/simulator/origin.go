package simulator

import (
	"context"
	"fmt"

	"github.com/drivergigspro/demandmap/internal/models"
)

// LocationProvider supplies the device position. In a deployed agent this
// is the platform geolocation API; here it is either a configured static
// position or nothing at all.
type LocationProvider interface {
	Locate(ctx context.Context) (models.Location, error)
}

// StaticLocationProvider reports a fixed configured position.
type StaticLocationProvider struct {
	Position models.Location
}

func (p StaticLocationProvider) Locate(_ context.Context) (models.Location, error) {
	return p.Position, nil
}

// UnavailableLocationProvider reports that no device position exists,
// which routes the simulator straight to the fallback origin.
type UnavailableLocationProvider struct{}

func (UnavailableLocationProvider) Locate(_ context.Context) (models.Location, error) {
	return models.Location{}, fmt.Errorf("geolocation unavailable")
}

// ProviderFromConfig picks the provider the config implies.
func ProviderFromConfig(cfg *models.Config) LocationProvider {
	if cfg.HasDeviceOrigin() {
		return StaticLocationProvider{Position: models.Location{Lat: cfg.DeviceLat, Lng: cfg.DeviceLng}}
	}
	return UnavailableLocationProvider{}
}

// OriginState tracks origin resolution. Both resolved variants are
// terminal: once resolved (or fallen back) the simulator never re-attempts
// geolocation for the rest of the session.
type OriginState int

const (
	OriginUnresolved OriginState = iota
	OriginResolving
	OriginResolvedCity
	OriginResolvedFallback
)

func (s OriginState) String() string {
	switch s {
	case OriginUnresolved:
		return "unresolved"
	case OriginResolving:
		return "resolving"
	case OriginResolvedCity:
		return "resolved"
	case OriginResolvedFallback:
		return "resolved_fallback"
	default:
		return "unknown"
	}
}

// Resolved reports whether the state machine reached a terminal state.
func (s OriginState) Resolved() bool {
	return s == OriginResolvedCity || s == OriginResolvedFallback
}

// FallbackOrigin is the fixed origin used whenever geolocation or
// reverse geocoding fails, for any reason. Failure causes are deliberately
// not distinguished; every path lands on this exact value.
func FallbackOrigin() models.UserLocation {
	return models.UserLocation{
		Location: models.Location{Lat: models.FallbackLat, Lng: models.FallbackLng},
		City:     models.FallbackCity,
	}
}
