package client

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gramaconnect/gramaconnect-backend/pkg/photo"
)

// Rejection explains why a photo was refused.
type Rejection = photo.Rejection

// UserSummary is the public view of an account.
type UserSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// User is the caller's own profile.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Role           string    `json:"role"`
	Village        string    `json:"village,omitempty"`
	Qualifications string    `json:"qualifications,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// RegisterRequest creates an account. Village is required for citizens;
// Qualifications and IDNumber for volunteers.
type RegisterRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone,omitempty"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword,omitempty"`
	Role            string   `json:"role"`
	Village         string   `json:"village,omitempty"`
	Qualifications  string   `json:"qualifications,omitempty"`
	IDNumber        string   `json:"idNumber,omitempty"`
	Skills          []string `json:"skills,omitempty"`
}

// LoginRequest identifies the account by email or phone. A non-empty Role
// must match the account.
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginResponse carries the token and the account it belongs to.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      UserSummary `json:"user"`
}

// Location is a point with an optional human-readable address.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// DefaultLocation is where the selector starts without a known position (New Delhi).
var DefaultLocation = Location{Lat: 28.6139, Lng: 77.2090}

// Issue is a reported problem.
type Issue struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Status       string       `json:"status"`
	Priority     string       `json:"priority"`
	ReportedBy   UserSummary  `json:"reportedBy"`
	ReportedByID string       `json:"reportedById"`
	AssignedTo   *UserSummary `json:"assignedTo,omitempty"`
	AssignedToID string       `json:"assignedToId,omitempty"`
	Location     Location     `json:"location"`
	Photos       []string     `json:"photos"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
	ResolvedAt   *time.Time   `json:"resolvedAt,omitempty"`
}

// Activity is one entry of an issue's history.
type Activity struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Actor     UserSummary    `json:"actor"`
	Changes   map[string]any `json:"changes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// IssueQuery filters ListIssues. Zero values mean no filter.
type IssueQuery struct {
	Statuses   []string
	Category   string
	ReportedBy string
	AssignedTo string
	Available  bool
}

func (q IssueQuery) values() url.Values {
	v := url.Values{}
	if len(q.Statuses) > 0 {
		v.Set("status", strings.Join(q.Statuses, ","))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.ReportedBy != "" {
		v.Set("reportedBy", q.ReportedBy)
	}
	if q.AssignedTo != "" {
		v.Set("assignedTo", q.AssignedTo)
	}
	if q.Available {
		v.Set("available", "true")
	}
	return v
}

// PhotoPayload is one photo sent inline with a report.
type PhotoPayload struct {
	Name    string `json:"name"`
	DataURL string `json:"dataUrl"`
}

// ReportRequest is the body of a new issue report.
type ReportRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Priority    string         `json:"priority"`
	Location    Location       `json:"location"`
	Photos      []PhotoPayload `json:"photos"`
}

// ReportResult is the created issue plus the photos the server refused.
type ReportResult struct {
	Issue
	RejectedPhotos []Rejection `json:"rejectedPhotos"`
}

// StatusUpdate moves an issue to Status. AssignedTo is only meaningful for a claim.
type StatusUpdate struct {
	Status     string `json:"status"`
	AssignedTo string `json:"assignedTo,omitempty"`
}

// Solution is a proposed fix for an issue.
type Solution struct {
	ID          string    `json:"id"`
	IssueID     string    `json:"issueId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Cost        string    `json:"cost"`
	Difficulty  string    `json:"difficulty"`
	Materials   []string  `json:"materials"`
	Steps       []string  `json:"steps"`
	ProvidedBy  string    `json:"providedBy"`
	Votes       int       `json:"votes"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SolutionRequest proposes a solution.
type SolutionRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Cost        string   `json:"cost,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Materials   []string `json:"materials,omitempty"`
	Steps       []string `json:"steps,omitempty"`
}

// Content is an education hub item.
type Content struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Content      string    `json:"content"`
	Language     string    `json:"language"`
	Downloadable bool      `json:"downloadable"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ContentQuery filters ListContent. "all" or empty disables a filter.
type ContentQuery struct {
	Search   string
	Category string
	Language string
}

func (q ContentQuery) values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Language != "" {
		v.Set("language", q.Language)
	}
	return v
}

// Dashboard is the role-dependent overview. Citizens get Issues; volunteers
// get Assigned and Available.
type Dashboard struct {
	Role      string         `json:"role"`
	Issues    []Issue        `json:"issues,omitempty"`
	Assigned  []Issue        `json:"assigned,omitempty"`
	Available []Issue        `json:"available,omitempty"`
	Stats     DashboardStats `json:"stats"`
}

// DashboardStats holds the counters of either dashboard; fields that do not
// apply to the role stay zero.
type DashboardStats struct {
	Reported       int `json:"reported"`
	InProgress     int `json:"inProgress"`
	Resolved       int `json:"resolved"`
	CommunityTotal int `json:"communityTotal"`
	Assigned       int `json:"assigned"`
	Available      int `json:"available"`
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
