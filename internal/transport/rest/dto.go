package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/internal/transport/dataloader"
)

type userSummaryResponse struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

func toUserSummary(s domain.UserSummary) userSummaryResponse {
	return userSummaryResponse{ID: s.ID.String(), Username: s.Name, Email: s.Email, Role: s.Role.String()}
}

type userResponse struct {
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

// toUserResponse omits the identity number.
func toUserResponse(u *domain.User) userResponse {
	resp := userResponse{
		ID:        u.ID.String(),
		Username:  u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt,
	}
	switch p := u.Profile.(type) {
	case domain.Citizen:
		resp.Village = p.Village
	case domain.Volunteer:
		resp.Qualifications = p.Qualifications
		resp.Skills = p.Skills
	}
	return resp
}

type locationBody struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

func toLocationBody(l domain.Location) locationBody {
	return locationBody{Lat: l.Lat, Lng: l.Lng, Address: l.Address}
}

type issueResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Category     string               `json:"category"`
	Status       string               `json:"status"`
	Priority     string               `json:"priority"`
	ReportedBy   userSummaryResponse  `json:"reportedBy"`
	ReportedByID string               `json:"reportedById"`
	AssignedTo   *userSummaryResponse `json:"assignedTo,omitempty"`
	AssignedToID *string              `json:"assignedToId,omitempty"`
	Location     locationBody         `json:"location"`
	Photos       []string             `json:"photos"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	ResolvedAt   *time.Time           `json:"resolvedAt,omitempty"`
}

// toIssueResponses renders issues with reporter and assignee summaries.
// All user lookups for the batch go through one loader round trip; a
// failed lookup degrades to an id-only summary.
func toIssueResponses(ctx context.Context, issues []domain.Issue) []issueResponse {
	summary := summarizer(ctx)

	type pending struct {
		reporter func() userSummaryResponse
		assignee func() userSummaryResponse
	}
	waits := make([]pending, len(issues))
	for i := range issues {
		waits[i].reporter = summary(issues[i].ReportedBy)
		if issues[i].AssignedTo != nil {
			waits[i].assignee = summary(*issues[i].AssignedTo)
		}
	}

	out := make([]issueResponse, len(issues))
	for i, is := range issues {
		photos := is.Photos
		if photos == nil {
			photos = []string{}
		}
		out[i] = issueResponse{
			ID:           is.ID.String(),
			Title:        is.Title,
			Description:  is.Description,
			Category:     is.Category.String(),
			Status:       is.Status.String(),
			Priority:     is.Priority.String(),
			ReportedBy:   waits[i].reporter(),
			ReportedByID: is.ReportedBy.String(),
			Location:     toLocationBody(is.Location),
			Photos:       photos,
			CreatedAt:    is.CreatedAt,
			UpdatedAt:    is.UpdatedAt,
			ResolvedAt:   is.ResolvedAt,
		}
		if waits[i].assignee != nil {
			a := waits[i].assignee()
			out[i].AssignedTo = &a
			id := is.AssignedTo.String()
			out[i].AssignedToID = &id
		}
	}
	return out
}

func toIssueResponse(ctx context.Context, issue *domain.Issue) issueResponse {
	return toIssueResponses(ctx, []domain.Issue{*issue})[0]
}

type activityResponse struct {
	ID        string              `json:"id"`
	Action    string              `json:"action"`
	Actor     userSummaryResponse `json:"actor"`
	Changes   map[string]any      `json:"changes,omitempty"`
	CreatedAt time.Time           `json:"createdAt"`
}

func toActivityResponses(ctx context.Context, records []domain.IssueActivity) []activityResponse {
	summary := summarizer(ctx)
	actors := make([]func() userSummaryResponse, len(records))
	for i := range records {
		actors[i] = summary(records[i].ActorID)
	}

	out := make([]activityResponse, len(records))
	for i, a := range records {
		out[i] = activityResponse{
			ID:        a.ID.String(),
			Action:    a.Action.String(),
			Actor:     actors[i](),
			Changes:   a.Changes,
			CreatedAt: a.CreatedAt,
		}
	}
	return out
}

// summarizer queues a lookup and returns a func that waits for its result.
func summarizer(ctx context.Context) func(uuid.UUID) func() userSummaryResponse {
	loaders, ok := dataloader.FromContext(ctx)
	return func(id uuid.UUID) func() userSummaryResponse {
		fallback := userSummaryResponse{ID: id.String()}
		if !ok {
			return func() userSummaryResponse { return fallback }
		}
		thunk := loaders.UserByID.Load(ctx, id)
		return func() userSummaryResponse {
			s, err := thunk()
			if err != nil || s == nil {
				return fallback
			}
			return toUserSummary(*s)
		}
	}
}

type solutionResponse struct {
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

func toSolutionResponse(s *domain.Solution) solutionResponse {
	return solutionResponse{
		ID:          s.ID.String(),
		IssueID:     s.IssueID.String(),
		Title:       s.Title,
		Description: s.Description,
		Cost:        s.Cost,
		Difficulty:  s.Difficulty.String(),
		Materials:   nonNil(s.Materials),
		Steps:       nonNil(s.Steps),
		ProvidedBy:  s.ProvidedBy.String(),
		Votes:       s.Votes,
		CreatedAt:   s.CreatedAt,
	}
}

type contentResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Content      string    `json:"content"`
	Language     string    `json:"language"`
	Downloadable bool      `json:"downloadable"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
}

func toContentResponse(c *domain.EducationalContent) contentResponse {
	return contentResponse{
		ID:           c.ID.String(),
		Title:        c.Title,
		Category:     c.Category,
		Content:      c.Content,
		Language:     c.Language.String(),
		Downloadable: c.Downloadable,
		Views:        c.Views,
		CreatedAt:    c.CreatedAt,
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
