package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"content", "demo"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log     *slog.Logger
	content ContentRepo
	users   UserRepo
	cfg     Config
	now     func() time.Time
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, content ContentRepo, users UserRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		content: content,
		users:   users,
		cfg:     cfg,
		now:     time.Now,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run; unknown phase names are rejected.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "content":
			result = p.runContent(ctx)
		case "demo":
			result = p.runDemo(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[ph] = true
	}
	var filtered []string
	for _, ph := range allPhases {
		if filter[ph] {
			filtered = append(filtered, ph)
			delete(filter, ph)
		}
	}
	if len(filter) > 0 {
		unknown := make([]string, 0, len(filter))
		for ph := range filter {
			unknown = append(unknown, ph)
		}
		return nil, fmt.Errorf("unknown phases: %s", strings.Join(unknown, ", "))
	}
	return filtered, nil
}

// runContent upserts educational content keyed on (title, language).
// Invalid items are logged and counted, the rest still load.
func (p *Pipeline) runContent(ctx context.Context) PhaseResult {
	items, err := loadContent(p.cfg.ContentPath)
	if err != nil {
		return PhaseResult{Err: err}
	}

	var result PhaseResult
	for _, item := range items {
		if err := item.validate(); err != nil {
			p.log.Warn("invalid content item", slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		if p.cfg.DryRun {
			result.Skipped++
			continue
		}

		inserted, err := p.content.Upsert(ctx, &domain.EducationalContent{
			ID:           uuid.New(),
			Title:        strings.TrimSpace(item.Title),
			Category:     strings.TrimSpace(item.Category),
			Content:      strings.TrimSpace(item.Content),
			Language:     domain.Language(item.Language),
			Downloadable: item.Downloadable,
			CreatedAt:    p.now(),
		})
		if err != nil {
			return PhaseResult{Inserted: result.Inserted, Errors: result.Errors, Err: fmt.Errorf("upsert %q: %w", item.Title, err)}
		}
		if inserted {
			result.Inserted++
		} else {
			result.Skipped++
		}
	}
	return result
}

// runDemo creates the demo citizen account unless its phone is taken.
func (p *Pipeline) runDemo(ctx context.Context) PhaseResult {
	if p.cfg.DemoPhone == "" || p.cfg.DemoPassword == "" {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("demo phone and password must be configured")}
	}

	existing, err := p.users.GetByPhone(ctx, p.cfg.DemoPhone)
	switch {
	case err == nil:
		p.log.Info("demo account exists", slog.String("user_id", existing.ID.String()))
		return PhaseResult{Skipped: 1}
	case !errors.Is(err, domain.ErrNotFound):
		return PhaseResult{Err: fmt.Errorf("lookup demo account: %w", err)}
	}

	if p.cfg.DryRun {
		return PhaseResult{Skipped: 1}
	}

	cost := p.cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(p.cfg.DemoPassword), cost)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("hash demo password: %w", err)}
	}

	now := p.now()
	u := &domain.User{
		ID:           uuid.New(),
		Name:         p.cfg.DemoName,
		Email:        strings.ToLower(p.cfg.DemoEmail),
		Phone:        p.cfg.DemoPhone,
		PasswordHash: string(hash),
		Profile:      domain.Citizen{Village: p.cfg.DemoVillage},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := p.users.Create(ctx, u); err != nil {
		return PhaseResult{Err: fmt.Errorf("create demo account: %w", err)}
	}
	return PhaseResult{Inserted: 1}
}
