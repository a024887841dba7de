// Package location resolves coordinates to addresses and back for the
// location selector.
package location

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

type geocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (domain.Location, error)
	Search(ctx context.Context, query string) (domain.Location, error)
}

type recorder interface {
	GeocodingRequest(kind string, err error)
}

// ErrUnavailable is returned when no geocoder is configured.
var ErrUnavailable = errors.New("geocoding unavailable")

// Service wraps the geocoding provider.
type Service struct {
	log     *slog.Logger
	geo     geocoder
	metrics recorder
}

// NewService creates a location service. geo may be nil when geocoding is
// disabled; lookups then fail with ErrUnavailable.
func NewService(logger *slog.Logger, geo geocoder, metrics recorder) *Service {
	return &Service{log: logger.With("service", "location"), geo: geo, metrics: metrics}
}

// ReverseGeocode returns the address at lat/lng. The coordinates are
// returned unchanged.
func (s *Service) ReverseGeocode(ctx context.Context, lat, lng float64) (domain.Location, error) {
	if !(domain.Location{Lat: lat, Lng: lng}).InRange() {
		return domain.Location{}, domain.NewValidationError("latlng", "coordinates out of range")
	}
	if s.geo == nil {
		return domain.Location{}, ErrUnavailable
	}

	loc, err := s.geo.Reverse(ctx, lat, lng)
	s.metrics.GeocodingRequest("reverse", err)
	if err != nil {
		return domain.Location{}, s.wrap(ctx, "reverse", err)
	}
	return loc, nil
}

// SearchPlace returns the first match for a free-text query.
func (s *Service) SearchPlace(ctx context.Context, query string) (domain.Location, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return domain.Location{}, domain.NewValidationError("q", "required")
	}
	if s.geo == nil {
		return domain.Location{}, ErrUnavailable
	}

	loc, err := s.geo.Search(ctx, query)
	s.metrics.GeocodingRequest("search", err)
	if err != nil {
		return domain.Location{}, s.wrap(ctx, "search", err)
	}
	return loc, nil
}

// FailureMessage maps a device geolocation failure code to the message
// shown before falling back to manual entry.
func (s *Service) FailureMessage(code string) string {
	return domain.GeolocationFailure(strings.ToLower(strings.TrimSpace(code))).Message()
}

func (s *Service) wrap(ctx context.Context, kind string, err error) error {
	if !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "geocoding failed", slog.String("kind", kind), slog.String("error", err.Error()))
	}
	return fmt.Errorf("location.%s: %w", kind, err)
}
