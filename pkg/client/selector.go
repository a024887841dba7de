package client

import (
	"context"
	"net/http"
	"strings"
	"sync"
)

// Geocoder resolves coordinates and place names. *Client implements it.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (Location, error)
	SearchPlace(ctx context.Context, query string) (Location, error)
}

const (
	bannerMapUnavailable = "Failed to load the map service. Please check your internet connection."
	bannerNoMatch        = "No places matched your search."
	bannerSearchFailed   = "Location search failed. Please try again."
)

// Selector tracks the marker of a map location picker. Every move
// reverse-geocodes the new position; problems are kept as banners until
// dismissed.
type Selector struct {
	geo      Geocoder
	onSelect func(Location)

	mu      sync.Mutex
	loc     Location
	banners []string
}

// NewSelector places the marker at initial, or at DefaultLocation when
// initial is nil. onSelect, if set, is called with every resolved position.
func NewSelector(geo Geocoder, initial *Location, onSelect func(Location)) *Selector {
	loc := DefaultLocation
	if initial != nil {
		loc = *initial
	}
	return &Selector{geo: geo, loc: loc, onSelect: onSelect}
}

// Init resolves the address of the starting position when it has none.
// An unreachable location service is recorded as a banner.
func (s *Selector) Init(ctx context.Context) {
	s.mu.Lock()
	loc := s.loc
	s.mu.Unlock()
	if loc.Address != "" {
		return
	}

	resolved, err := s.geo.ReverseGeocode(ctx, loc.Lat, loc.Lng)
	if err != nil {
		if IsStatus(err, http.StatusServiceUnavailable) {
			s.addBanner(bannerMapUnavailable)
		}
		return
	}
	s.update(loc, resolved.Address)
}

// Search moves the marker to the best match for query. The marker stays
// put when nothing matches.
func (s *Selector) Search(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	found, err := s.geo.SearchPlace(ctx, query)
	switch {
	case err == nil:
		s.update(Location{Lat: found.Lat, Lng: found.Lng}, found.Address)
	case IsStatus(err, http.StatusNotFound):
		s.addBanner(bannerNoMatch)
	case IsStatus(err, http.StatusServiceUnavailable):
		s.addBanner(bannerMapUnavailable)
	default:
		s.addBanner(bannerSearchFailed)
	}
}

// Click moves the marker to a clicked point.
func (s *Selector) Click(ctx context.Context, lat, lng float64) { s.moveTo(ctx, lat, lng) }

// Drag moves the marker to where it was dropped.
func (s *Selector) Drag(ctx context.Context, lat, lng float64) { s.moveTo(ctx, lat, lng) }

// UseCurrentLocation moves the marker to the device position.
func (s *Selector) UseCurrentLocation(ctx context.Context, lat, lng float64) { s.moveTo(ctx, lat, lng) }

// LocateFailed records why the device position could not be read.
func (s *Selector) LocateFailed(code string) {
	s.addBanner(locateFailureBanner(code))
}

// Location returns the marker position.
func (s *Selector) Location() Location {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loc
}

// Banners returns the undismissed messages, oldest first.
func (s *Selector) Banners() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.banners...)
}

// Dismiss removes banner i. Out-of-range indexes are ignored.
func (s *Selector) Dismiss(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.banners) {
		return
	}
	s.banners = append(s.banners[:i], s.banners[i+1:]...)
}

// moveTo places the marker without an address, then fills the address in
// when the reverse lookup succeeds.
func (s *Selector) moveTo(ctx context.Context, lat, lng float64) {
	point := Location{Lat: lat, Lng: lng}
	s.mu.Lock()
	s.loc = point
	s.mu.Unlock()

	address := ""
	if resolved, err := s.geo.ReverseGeocode(ctx, lat, lng); err == nil {
		address = resolved.Address
	}
	s.update(point, address)
}

func (s *Selector) update(point Location, address string) {
	loc := Location{Lat: point.Lat, Lng: point.Lng, Address: address}
	s.mu.Lock()
	s.loc = loc
	s.mu.Unlock()

	if s.onSelect != nil {
		s.onSelect(loc)
	}
}

func (s *Selector) addBanner(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banners = append(s.banners, msg)
}

func locateFailureBanner(code string) string {
	switch code {
	case GeoPermissionDenied:
		return "Location access was denied. Please enable location services."
	case GeoPositionUnavailable:
		return "Location information is unavailable."
	case GeoTimeout:
		return "Location request timed out."
	case GeoUnsupported:
		return "Geolocation is not supported by this browser."
	default:
		return "An error occurred while retrieving your location."
	}
}
