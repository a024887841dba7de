// Package photo validates issue photos and converts them to and from data URLs.
package photo

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// File is an uploaded file before validation.
type File struct {
	Name string
	Data []byte
}

// Photo is a validated image. ContentType comes from content sniffing,
// never from the client.
type Photo struct {
	Name        string
	ContentType string
	Extension   string
	Data        []byte
}

// Limits bound a batch of photos attached to one report.
type Limits struct {
	MaxCount int
	MaxBytes int64
}

// Rejection explains why one file was not accepted.
type Rejection struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

func (r Rejection) Error() string { return r.Reason }

// Check validates a single file against the per-file limits.
func Check(f File, l Limits) (Photo, error) {
	if len(f.Data) == 0 {
		return Photo{}, Rejection{Name: f.Name, Reason: fmt.Sprintf("%s is empty.", f.Name)}
	}

	mt := mimetype.Detect(f.Data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return Photo{}, Rejection{Name: f.Name, Reason: fmt.Sprintf("%s is not an image file.", f.Name)}
	}
	if int64(len(f.Data)) > l.MaxBytes {
		return Photo{}, Rejection{
			Name:   f.Name,
			Reason: fmt.Sprintf("%s is too large. Maximum size is %s.", f.Name, humanSize(l.MaxBytes)),
		}
	}

	return Photo{Name: f.Name, ContentType: mt.String(), Extension: mt.Extension(), Data: f.Data}, nil
}

// Stager accumulates accepted photos for one report. Each file is judged on
// its own; a rejected file never removes files accepted earlier.
type Stager struct {
	limits Limits
	photos []Photo
}

// NewStager creates an empty stager.
func NewStager(l Limits) *Stager {
	return &Stager{limits: l}
}

// Add validates files in order and stages those that pass.
func (s *Stager) Add(files ...File) []Rejection {
	var rejected []Rejection
	for _, f := range files {
		if len(s.photos) >= s.limits.MaxCount {
			rejected = append(rejected, Rejection{
				Name:   f.Name,
				Reason: fmt.Sprintf("You can only upload up to %d photos.", s.limits.MaxCount),
			})
			continue
		}

		p, err := Check(f, s.limits)
		if err != nil {
			var r Rejection
			if errors.As(err, &r) {
				rejected = append(rejected, r)
				continue
			}
			rejected = append(rejected, Rejection{Name: f.Name, Reason: err.Error()})
			continue
		}
		s.photos = append(s.photos, p)
	}
	return rejected
}

// Remove drops the staged photo at index i. Out-of-range indexes are ignored.
func (s *Stager) Remove(i int) {
	if i < 0 || i >= len(s.photos) {
		return
	}
	s.photos = append(s.photos[:i], s.photos[i+1:]...)
}

// Photos returns a copy of the staged photos.
func (s *Stager) Photos() []Photo {
	out := make([]Photo, len(s.photos))
	copy(out, s.photos)
	return out
}

// Len returns the number of staged photos.
func (s *Stager) Len() int { return len(s.photos) }

// EncodeDataURL renders p as a base64 data URL.
func EncodeDataURL(p Photo) string {
	return "data:" + p.ContentType + ";base64," + base64.StdEncoding.EncodeToString(p.Data)
}

// ErrMalformedDataURL is returned for strings that are not base64 data URLs.
var ErrMalformedDataURL = errors.New("malformed data URL")

// DecodeDataURL parses a base64 data URL into a File. The declared media
// type is discarded; Check sniffs the payload instead.
func DecodeDataURL(name, s string) (File, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return File{}, ErrMalformedDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return File{}, ErrMalformedDataURL
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return File{}, fmt.Errorf("%w: %w", ErrMalformedDataURL, err)
	}
	return File{Name: name, Data: data}, nil
}

func humanSize(n int64) string {
	const mb = 1 << 20
	if n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	return fmt.Sprintf("%d bytes", n)
}
