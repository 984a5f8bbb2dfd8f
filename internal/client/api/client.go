// Package api contains the remote story API surface used by the services,
// and its HTTP/JSON implementation. The remote service is the source of truth
// for users, stories and favorites; this client never caches.
package api

import (
	"context"

	"github.com/mkarlovs/snooze/internal/client/models"
)

// NewStory is the payload for creating a story.
type NewStory struct {
	Author string `json:"author"`
	Title  string `json:"title"`
	URL    string `json:"url"`
}

// Client is the remote API contract. Implementations map transport and
// status failures onto the sentinel errors in internal/common.
type Client interface {
	// Login authenticates and returns the user with LoginToken populated.
	Login(ctx context.Context, username, password string) (*models.User, error)
	// Signup creates an account; on success it behaves like a fresh login.
	Signup(ctx context.Context, username, password, name string) (*models.User, error)
	// ValidateToken resolves a stored token back into a user, or fails with
	// ErrUnauthorized when the token is invalid or expired.
	ValidateToken(ctx context.Context, token, username string) (*models.User, error)
	// ListStories returns the full current story set in server order.
	ListStories(ctx context.Context) ([]models.Story, error)
	// CreateStory submits a new story on behalf of the token's user.
	CreateStory(ctx context.Context, token string, story NewStory) (*models.Story, error)
	// AddFavorite and RemoveFavorite mutate the server-side favorite set.
	AddFavorite(ctx context.Context, token, username, storyID string) error
	RemoveFavorite(ctx context.Context, token, username, storyID string) error
}
