// Package issue owns the issue aggregate: reporting, status transitions
// and the listings behind the dashboards.
package issue

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/config"
	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/pkg/photo"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type issueRepo interface {
	Create(ctx context.Context, i *domain.Issue) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Issue, error)
	UpdateStatus(ctx context.Context, i *domain.Issue) error
	List(ctx context.Context, f domain.IssueFilter) ([]domain.Issue, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type photoStore interface {
	StorePhoto(ctx context.Context, issueID uuid.UUID, n int, p photo.Photo) (string, error)
	DeletePhotos(ctx context.Context, issueID uuid.UUID) error
}

type reportLimiter interface {
	Allow(ctx context.Context, userID string) (bool, time.Duration, error)
	Release(ctx context.Context, userID string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type activityLog interface {
	Log(ctx context.Context, a domain.IssueActivity) error
	ListByIssue(ctx context.Context, issueID uuid.UUID, limit int) ([]domain.IssueActivity, error)
}

type recorder interface {
	IssueReported(category string)
	IssueTransitioned(status string)
	PhotoRejected(n int)
	ReportThrottled()
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements issue business logic.
type Service struct {
	log     *slog.Logger
	issues  issueRepo
	users   userRepo
	tx      txManager
	photos  photoStore
	limiter reportLimiter
	history activityLog
	metrics recorder
	cfg     config.IssuesConfig
	now     func() time.Time
}

// Deps groups the collaborators of Service.
type Deps struct {
	Issues  issueRepo
	Users   userRepo
	Tx      txManager
	Photos  photoStore
	Limiter reportLimiter
	History activityLog
	Metrics recorder
}

// NewService creates a new issue service.
func NewService(logger *slog.Logger, deps Deps, cfg config.IssuesConfig) *Service {
	return &Service{
		log:     logger.With("service", "issue"),
		issues:  deps.Issues,
		users:   deps.Users,
		tx:      deps.Tx,
		photos:  deps.Photos,
		limiter: deps.Limiter,
		history: deps.History,
		metrics: deps.Metrics,
		cfg:     cfg,
		now:     time.Now,
	}
}

func (s *Service) photoLimits() photo.Limits {
	return photo.Limits{MaxCount: s.cfg.MaxPhotos, MaxBytes: s.cfg.MaxPhotoBytes}
}
