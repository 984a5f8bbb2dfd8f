package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/mkarlovs/snooze/internal/client/api"
	"github.com/mkarlovs/snooze/internal/client/models"
	"github.com/mkarlovs/snooze/internal/common"
)

// StoryService exposes the shared story catalog: wholesale fetch and
// authenticated submission.
type StoryService interface {
	FetchAll(ctx context.Context) (*models.StoryList, error)
	Submit(ctx context.Context, user *models.User, story api.NewStory) (*models.Story, error)
}

type storyService struct {
	client   api.Client
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewStoryService constructs a StoryService bound to the given API client.
func NewStoryService(client api.Client, logger zerolog.Logger) StoryService {
	return &storyService{
		client:   client,
		validate: validator.New(),
		logger:   logger.With().Str("component", "stories").Logger(),
	}
}

// FetchAll retrieves the full current story set in server order. On failure
// the catalog is unavailable, not empty: there is no partial or cached
// fallback.
func (s *storyService) FetchAll(ctx context.Context) (*models.StoryList, error) {
	stories, err := s.client.ListStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch stories: %w", err)
	}
	return &models.StoryList{Stories: stories}, nil
}

type submitInput struct {
	URL string `validate:"required"`
}

// Submit creates a new story on behalf of the user. Only the URL's presence
// is checked locally; malformed values beyond that are the server's
// responsibility. The catalog is not updated implicitly, the caller
// re-fetches to stay aligned with server order.
func (s *storyService) Submit(ctx context.Context, user *models.User, story api.NewStory) (*models.Story, error) {
	if user == nil || user.LoginToken == "" {
		return nil, common.ErrUnauthorized
	}
	if err := s.validate.Struct(submitInput{URL: story.URL}); err != nil {
		return nil, fmt.Errorf("%s: %w", validationMessage(err), common.ErrValidation)
	}

	created, err := s.client.CreateStory(ctx, user.LoginToken, story)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("story_id", created.StoryID).Msg("story submitted")
	return created, nil
}
