// Package services contains the application services of the snooze client:
// the user session (authentication and favorites) and the story catalog.
// Both sit between the CLI and the remote API client; the remote service is
// always the source of truth.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/mkarlovs/snooze/internal/client/api"
	"github.com/mkarlovs/snooze/internal/client/models"
	"github.com/mkarlovs/snooze/internal/client/repositories/credentials"
	"github.com/mkarlovs/snooze/internal/common"
)

// AuthService defines the user-session operations for the CLI.
//
// Contract:
//   - Login/Signup: authenticate against the server and persist the credential.
//   - Resume: silently restore a session from the stored credential; every
//     failure mode resolves to a logged-out state, never an error.
//   - Logout: forget the stored credential; idempotent.
//   - AddFavorite/RemoveFavorite: round-trip through the server before the
//     in-memory favorite set changes.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*models.User, error)
	Signup(ctx context.Context, username, password, name string) (*models.User, error)
	Resume(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	AddFavorite(ctx context.Context, user *models.User, story models.Story) error
	RemoveFavorite(ctx context.Context, user *models.User, storyID string) error
}

type authService struct {
	client   api.Client
	creds    credentials.Repository
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewAuthService constructs an AuthService bound to the given API client and
// credential store.
func NewAuthService(client api.Client, creds credentials.Repository, logger zerolog.Logger) AuthService {
	return &authService{
		client:   client,
		creds:    creds,
		validate: validator.New(),
		logger:   logger.With().Str("component", "auth").Logger(),
	}
}

type signupInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Login authenticates and persists the resulting credential. On any failure
// neither the store nor the returned state changes.
func (a *authService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := a.client.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if err := a.creds.Save(ctx, user.Credential()); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}
	a.logger.Debug().Str("username", user.Username).Msg("logged in")
	return user, nil
}

// Signup creates an account and behaves like a fresh login on success.
// Username and password presence is checked locally; everything else
// (duplicate usernames included) is the server's call.
func (a *authService) Signup(ctx context.Context, username, password, name string) (*models.User, error) {
	if err := a.validate.Struct(signupInput{Username: username, Password: password}); err != nil {
		return nil, fmt.Errorf("%s: %w", validationMessage(err), common.ErrValidation)
	}

	user, err := a.client.Signup(ctx, username, password, name)
	if err != nil {
		return nil, err
	}
	if err := a.creds.Save(ctx, user.Credential()); err != nil {
		return nil, fmt.Errorf("persist credential: %w", err)
	}
	a.logger.Debug().Str("username", user.Username).Msg("account created")
	return user, nil
}

// Resume restores the session from the stored credential. It returns
// (nil, nil) for every failure: an expired token after a restart is expected,
// and this path must never surface an error to the user. A token the server
// rejects also clears the store so the next start skips the round-trip.
func (a *authService) Resume(ctx context.Context) (*models.User, error) {
	cred, err := a.creds.Load(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Msg("credential load failed")
		return nil, nil
	}
	if cred == nil {
		return nil, nil
	}

	if tokenExpired(cred.Token) {
		a.logger.Debug().Str("username", cred.Username).Msg("stored token expired")
		_ = a.creds.Clear(ctx)
		return nil, nil
	}

	user, err := a.client.ValidateToken(ctx, cred.Token, cred.Username)
	if err != nil {
		a.logger.Debug().Err(err).Msg("token validation failed")
		if errors.Is(err, common.ErrUnauthorized) || errors.Is(err, common.ErrNotFound) {
			_ = a.creds.Clear(ctx)
		}
		return nil, nil
	}
	return user, nil
}

// Logout clears the stored credential. Calling it while already logged out
// leaves the store empty.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.creds.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// AddFavorite marks the story on the server, then appends a value copy to the
// user's favorite set. Idempotent from the caller's perspective.
func (a *authService) AddFavorite(ctx context.Context, user *models.User, story models.Story) error {
	if user == nil || user.LoginToken == "" {
		return common.ErrUnauthorized
	}
	if err := a.client.AddFavorite(ctx, user.LoginToken, user.Username, story.StoryID); err != nil {
		return err
	}
	user.AddFavorite(story)
	return nil
}

// RemoveFavorite unmarks the story on the server, then drops the matching
// entry from the user's favorite set.
func (a *authService) RemoveFavorite(ctx context.Context, user *models.User, storyID string) error {
	if user == nil || user.LoginToken == "" {
		return common.ErrUnauthorized
	}
	if err := a.client.RemoveFavorite(ctx, user.LoginToken, user.Username, storyID); err != nil {
		return err
	}
	user.RemoveFavorite(storyID)
	return nil
}

// tokenExpired reports whether the token is a JWT whose exp claim has already
// passed. The token is otherwise opaque: anything unparsable, or without an
// exp claim, is treated as live and left for the server to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
