package issue

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/pkg/ctxutil"
	"github.com/gramaconnect/gramaconnect-backend/pkg/photo"
)

const maxParallelUploads = 3

// AddIssueResult is the stored issue plus any photos that were dropped.
type AddIssueResult struct {
	Issue    *domain.Issue
	Rejected []photo.Rejection
}

// AddIssue files a new report on behalf of the authenticated user.
// The issue starts as reported with no assignee. Photos that fail
// validation are reported back and do not block the report.
func (s *Service) AddIssue(ctx context.Context, input AddIssueInput) (*AddIssueResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	charged, err := s.checkReportLimit(ctx, userID)
	if err != nil {
		return nil, err
	}

	staged, rejected := s.stagePhotos(input.Photos)

	issue := domain.NewIssue(userID, s.now())
	issue.Title = input.Title
	issue.Description = input.Description
	issue.Category = input.Category
	issue.Priority = input.Priority
	issue.Location = input.Location

	urls, err := s.storePhotos(ctx, issue.ID, staged)
	if err != nil {
		s.discardPhotos(ctx, issue.ID)
		s.releaseReport(ctx, userID, charged)
		return nil, fmt.Errorf("issue.AddIssue store photos: %w", err)
	}
	issue.Photos = urls

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.issues.Create(txCtx, issue); err != nil {
			return err
		}
		return s.history.Log(txCtx, domain.IssueActivity{
			ID:        uuid.New(),
			IssueID:   issue.ID,
			ActorID:   userID,
			Action:    domain.ActivityReported,
			CreatedAt: issue.CreatedAt,
		})
	})
	if err != nil {
		if len(urls) > 0 {
			s.discardPhotos(ctx, issue.ID)
		}
		s.releaseReport(ctx, userID, charged)
		return nil, fmt.Errorf("issue.AddIssue: %w", err)
	}

	s.metrics.IssueReported(issue.Category.String())
	if len(rejected) > 0 {
		s.metrics.PhotoRejected(len(rejected))
	}

	s.log.InfoContext(ctx, "issue reported",
		slog.String("issue_id", issue.ID.String()),
		slog.String("user_id", userID.String()),
		slog.String("category", issue.Category.String()),
		slog.Int("photos", len(urls)),
		slog.Int("photos_rejected", len(rejected)))

	return &AddIssueResult{Issue: issue, Rejected: rejected}, nil
}

// checkReportLimit enforces the per-user report quota and reports whether a
// slot was taken. Limiter outages are logged and the report is let through.
func (s *Service) checkReportLimit(ctx context.Context, userID uuid.UUID) (bool, error) {
	if s.limiter == nil {
		return false, nil
	}

	allowed, retry, err := s.limiter.Allow(ctx, userID.String())
	if err != nil {
		s.log.WarnContext(ctx, "report limiter unavailable", slog.String("error", err.Error()))
		return false, nil
	}
	if !allowed {
		s.metrics.ReportThrottled()
		return false, fmt.Errorf("report limit of %d per %s reached, retry in %s: %w",
			s.cfg.ReportsPerDay, s.cfg.ReportWindow, retry.Round(time.Minute), domain.ErrRateLimited)
	}
	return true, nil
}

// releaseReport returns the quota slot of a report that was not saved.
func (s *Service) releaseReport(ctx context.Context, userID uuid.UUID, charged bool) {
	if !charged {
		return
	}
	if err := s.limiter.Release(context.WithoutCancel(ctx), userID.String()); err != nil {
		s.log.WarnContext(ctx, "release report quota",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
}

func (s *Service) stagePhotos(uploads []PhotoUpload) ([]photo.Photo, []photo.Rejection) {
	stager := photo.NewStager(s.photoLimits())

	var rejected []photo.Rejection
	for i, u := range uploads {
		name := u.Name
		if name == "" {
			name = fmt.Sprintf("photo-%d", i+1)
		}
		f, err := photo.DecodeDataURL(name, u.DataURL)
		if err != nil {
			rejected = append(rejected, photo.Rejection{Name: name, Reason: fmt.Sprintf("%s could not be read.", name)})
			continue
		}
		rejected = append(rejected, stager.Add(f)...)
	}
	return stager.Photos(), rejected
}

// storePhotos uploads photos concurrently and returns their URLs in input order.
func (s *Service) storePhotos(ctx context.Context, issueID uuid.UUID, photos []photo.Photo) ([]string, error) {
	if len(photos) == 0 {
		return []string{}, nil
	}

	if s.cfg.UploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.UploadTimeout)
		defer cancel()
	}

	urls := make([]string, len(photos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelUploads)
	for i, p := range photos {
		g.Go(func() error {
			u, err := s.photos.StorePhoto(gctx, issueID, i+1, p)
			if err != nil {
				return fmt.Errorf("photo %s: %w", p.Name, err)
			}
			urls[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// discardPhotos removes uploads of a report that was not saved. Failures
// leave orphaned objects behind and are only logged.
func (s *Service) discardPhotos(ctx context.Context, issueID uuid.UUID) {
	if err := s.photos.DeletePhotos(context.WithoutCancel(ctx), issueID); err != nil {
		s.log.WarnContext(ctx, "discard photos",
			slog.String("issue_id", issueID.String()),
			slog.String("error", err.Error()))
	}
}
