package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gramaconnect/gramaconnect-backend/pkg/photo"
)

// DefaultPhotoLimits match the server's defaults: five images of at most 5 MB.
var DefaultPhotoLimits = photo.Limits{MaxCount: 5, MaxBytes: 5 << 20}

// FieldError is a draft field that blocks submission.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Message }

// ReportDraft collects an issue report before it is submitted. Photos are
// validated as they are added; a rejected file never drops files accepted
// before it.
type ReportDraft struct {
	Title       string
	Description string
	Category    string
	Priority    string
	Location    Location

	photos        *photo.Stager
	manualEntry   bool
	locationError string
}

// NewReportDraft starts an empty draft at DefaultLocation with medium priority.
func NewReportDraft(limits photo.Limits) *ReportDraft {
	return &ReportDraft{
		Priority: DefaultPriority,
		Location: DefaultLocation,
		photos:   photo.NewStager(limits),
	}
}

// AddPhotos stages files and returns the ones that were refused.
func (d *ReportDraft) AddPhotos(files ...photo.File) []Rejection {
	return d.photos.Add(files...)
}

// AddPhotoFiles reads and stages files from disk. Unreadable files are
// refused like invalid ones.
func (d *ReportDraft) AddPhotoFiles(paths ...string) []Rejection {
	var rejected []Rejection
	files := make([]photo.File, 0, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		data, err := os.ReadFile(p)
		if err != nil {
			rejected = append(rejected, Rejection{Name: name, Reason: fmt.Sprintf("%s could not be read.", name)})
			continue
		}
		files = append(files, photo.File{Name: name, Data: data})
	}
	return append(rejected, d.photos.Add(files...)...)
}

// RemovePhoto drops the staged photo at index i.
func (d *ReportDraft) RemovePhoto(i int) { d.photos.Remove(i) }

// Photos returns the staged photos in order.
func (d *ReportDraft) Photos() []photo.Photo { return d.photos.Photos() }

// SelectLocation takes a position chosen on the map or reported by the
// device and clears any earlier location error.
func (d *ReportDraft) SelectLocation(loc Location) {
	d.Location = loc
	d.locationError = ""
}

// SetAddress records a typed address, keeping the current coordinates.
func (d *ReportDraft) SetAddress(address string) {
	d.Location.Address = address
}

// LocationFailed records that the device could not locate itself. The draft
// switches to manual address entry and the returned message explains why.
func (d *ReportDraft) LocationFailed(code string) string {
	d.manualEntry = true
	d.locationError = locationFailureMessage(code)
	return d.locationError
}

// ManualEntry reports whether the address must be typed by hand.
func (d *ReportDraft) ManualEntry() bool { return d.manualEntry }

// LocationError is the message from the last geolocation failure, if any.
func (d *ReportDraft) LocationError() string { return d.locationError }

// Validate returns the first field that blocks submission.
func (d *ReportDraft) Validate() error {
	switch {
	case strings.TrimSpace(d.Title) == "":
		return &FieldError{Field: "title", Message: "Please enter a title for the issue."}
	case strings.TrimSpace(d.Description) == "":
		return &FieldError{Field: "description", Message: "Please describe the issue."}
	case !validCategory(d.Category):
		return &FieldError{Field: "category", Message: "Please select a category."}
	case !validPriority(d.Priority):
		return &FieldError{Field: "priority", Message: "Please select a priority."}
	case strings.TrimSpace(d.Location.Address) == "":
		return &FieldError{Field: "location", Message: "Please select a location for the issue."}
	}
	return nil
}

// Request renders the draft as a report request with photos inlined as data URLs.
func (d *ReportDraft) Request() ReportRequest {
	staged := d.photos.Photos()
	payload := make([]PhotoPayload, len(staged))
	for i, p := range staged {
		payload[i] = PhotoPayload{Name: p.Name, DataURL: photo.EncodeDataURL(p)}
	}
	return ReportRequest{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Category:    d.Category,
		Priority:    d.Priority,
		Location:    d.Location,
		Photos:      payload,
	}
}

// Submit validates the draft and reports it through c.
func (d *ReportDraft) Submit(ctx context.Context, c *Client) (*ReportResult, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return c.ReportIssue(ctx, d.Request())
}
