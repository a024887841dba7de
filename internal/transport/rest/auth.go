package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/internal/service/auth"
)

type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Me(ctx context.Context) (*domain.User, error)
}

// AuthHandler serves /api/auth.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Username        string   `json:"username"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Password        string   `json:"password"`
	ConfirmPassword string   `json:"confirmPassword"`
	Role            string   `json:"role"`
	Village         string   `json:"village"`
	Qualifications  string   `json:"qualifications"`
	IDNumber        string   `json:"idNumber"`
	Skills          []string `json:"skills"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

type loginResponse struct {
	Token     string              `json:"token"`
	ExpiresAt time.Time           `json:"expiresAt"`
	User      userSummaryResponse `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, "Registration failed")
		return
	}

	name := req.Name
	if name == "" {
		name = req.Username
	}

	user, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Name:            name,
		Email:           req.Email,
		Phone:           req.Phone,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Role:            domain.Role(req.Role),
		Village:         req.Village,
		Qualifications:  req.Qualifications,
		IDNumber:        req.IDNumber,
		Skills:          req.Skills,
	})
	if err != nil {
		respondError(w, r, h.log, err, "Registration failed")
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		ID:       user.ID.String(),
		Username: user.Name,
		Email:    user.Email,
		Role:     user.Role().String(),
	})
}

// Login handles POST /api/auth/login. The account is identified by email,
// phone, or a generic identifier holding either.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, h.log, err, "Login failed")
		return
	}

	identifier := req.Identifier
	switch {
	case req.Email != "":
		identifier = req.Email
	case req.Phone != "":
		identifier = req.Phone
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Identifier: identifier,
		Password:   req.Password,
		Role:       domain.Role(req.Role),
	})
	if err != nil {
		respondError(w, r, h.log, err, "Login failed")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     result.AccessToken,
		ExpiresAt: result.ExpiresAt,
		User:      toUserSummary(result.User.Summary()),
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, "Failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}
