package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gramaconnect/gramaconnect-backend/internal/domain"
	"github.com/gramaconnect/gramaconnect-backend/pkg/ctxutil"
)

// Login authenticates by email or phone and password and issues an access token.
// Every credential failure returns domain.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Identifier = strings.TrimSpace(input.Identifier)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		user *domain.User
		err  error
	)
	if input.isEmail() {
		user, err = s.users.GetByEmail(ctx, input.Identifier)
	} else {
		user, err = s.users.GetByPhone(ctx, input.Identifier)
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if input.Role != "" && input.Role != user.Role() {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(user.ID, user.Email, user.Role().String())
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))

	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   s.now().Add(s.jwt.TTL()),
		User:        user,
	}, nil
}

// Me returns the authenticated user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
