package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/gramaconnect/gramaconnect-backend/internal/auth"
	"github.com/gramaconnect/gramaconnect-backend/internal/config"
	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/internal/transport/dataloader"
	"github.com/gramaconnect/gramaconnect-backend/internal/transport/middleware"
)

// Handlers groups the route handlers mounted by NewRouter.
type Handlers struct {
	Health    *HealthHandler
	Auth      *AuthHandler
	Issues    *IssueHandler
	Solutions *SolutionHandler
	Content   *ContentHandler
	Dashboard *DashboardHandler
	Location  *LocationHandler
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

type tokenValidator interface {
	ValidateAccessToken(token string) (*auth.Claims, error)
}

type userLoaderRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// RouterDeps holds what the middleware stack needs.
type RouterDeps struct {
	Logger     *slog.Logger
	Tokens     tokenValidator
	Users      userLoaderRepo
	Limiter    *middleware.RateLimiter
	RateLimit  config.RateLimitConfig
	CORS       config.CORSConfig
	Instrument middleware.Middleware
}

// NewRouter mounts every route and wraps the mux in the shared middleware.
// Instrument, when set, wraps the mux directly so it sees the matched pattern.
func NewRouter(h Handlers, d RouterDeps) http.Handler {
	mux := http.NewServeMux()

	authed := func(fn http.HandlerFunc) http.Handler { return middleware.RequireAuth(fn) }
	volunteer := func(fn http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(middleware.RequireRole(domain.RoleVolunteer)(fn))
	}

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	if h.Metrics != nil {
		mux.Handle("GET /metrics", h.Metrics)
	}

	register := http.Handler(http.HandlerFunc(h.Auth.Register))
	login := http.Handler(http.HandlerFunc(h.Auth.Login))
	if d.Limiter != nil {
		register = d.Limiter.Limit(d.RateLimit.Register, d.RateLimit.Window)(register)
		login = d.Limiter.Limit(d.RateLimit.Login, d.RateLimit.Window)(login)
	}
	mux.Handle("POST /api/auth/register", register)
	mux.Handle("POST /api/auth/login", login)
	mux.Handle("GET /api/auth/me", authed(h.Auth.Me))

	mux.HandleFunc("GET /api/issues", h.Issues.List)
	mux.Handle("POST /api/issues", authed(h.Issues.Create))
	mux.HandleFunc("GET /api/issues/{id}", h.Issues.Get)
	mux.HandleFunc("GET /api/issues/{id}/history", h.Issues.History)
	mux.Handle("POST /api/issues/{id}/claim", volunteer(h.Issues.Claim))
	mux.Handle("PATCH /api/issues/{id}/status", authed(h.Issues.UpdateStatus))

	mux.HandleFunc("GET /api/issues/{id}/solutions", h.Solutions.List)
	mux.Handle("POST /api/issues/{id}/solutions", authed(h.Solutions.Create))
	mux.Handle("POST /api/solutions/{id}/vote", authed(h.Solutions.Vote))

	mux.HandleFunc("GET /api/content", h.Content.List)
	mux.HandleFunc("GET /api/content/{id}", h.Content.View)

	mux.Handle("GET /api/dashboard", authed(h.Dashboard.Get))

	mux.HandleFunc("GET /api/location/reverse", h.Location.Reverse)
	mux.HandleFunc("GET /api/location/search", h.Location.Search)
	mux.HandleFunc("POST /api/location/failure", h.Location.Failure)

	var root http.Handler = mux
	if d.Instrument != nil {
		root = d.Instrument(root)
	}

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
		dataloader.Middleware(d.Users),
	)(root)
}
