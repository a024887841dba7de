package client

import "slices"

// Categories are the issue categories the server accepts.
var Categories = []string{"roads", "water", "electricity", "sanitation", "healthcare", "education", "other"}

// Priorities are the accepted priorities, lowest first.
var Priorities = []string{"low", "medium", "high", "critical"}

// DefaultPriority is used for new drafts.
const DefaultPriority = "medium"

// Geolocation failure codes reported by a device.
const (
	GeoPermissionDenied    = "permission-denied"
	GeoPositionUnavailable = "position-unavailable"
	GeoTimeout             = "timeout"
	GeoUnsupported         = "unsupported"
	GeoUnknown             = "unknown"
)

func validCategory(c string) bool { return slices.Contains(Categories, c) }

func validPriority(p string) bool { return slices.Contains(Priorities, p) }

// locationFailureMessage is the text shown next to the manual address field.
func locationFailureMessage(code string) string {
	switch code {
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
