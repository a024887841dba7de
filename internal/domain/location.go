package domain

// GeolocationFailure is why a device could not report its position.
type GeolocationFailure string

const (
	GeoPermissionDenied    GeolocationFailure = "permission-denied"
	GeoPositionUnavailable GeolocationFailure = "position-unavailable"
	GeoTimeout             GeolocationFailure = "timeout"
	GeoUnsupported         GeolocationFailure = "unsupported"
	GeoUnknown             GeolocationFailure = "unknown"
)

// Message is the user-facing text shown when locating fails. Every message
// points the user at manual address entry.
func (f GeolocationFailure) Message() string {
	switch f {
	case GeoPermissionDenied:
		return "Location access was denied. Please enable location services or enter your address manually."
	case GeoPositionUnavailable:
		return "Location information is unavailable. Please enter your address manually."
	case GeoTimeout:
		return "Location request timed out. Please try again or enter your address manually."
	case GeoUnsupported:
		return "Geolocation is not supported by this browser. Please enter your address manually."
	default:
		return "An error occurred while retrieving your location. Please enter your address manually."
	}
}
