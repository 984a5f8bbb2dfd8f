// Package credentials persists the session credential (token + username)
// across process restarts.
package credentials

import (
	"context"

	"github.com/mkarlovs/snooze/internal/client/models"
)

// Repository is the durable credential store. Load returns nil (not an
// error) when no complete credential is stored.
type Repository interface {
	Load(ctx context.Context) (*models.Credential, error)
	Save(ctx context.Context, cred *models.Credential) error
	Clear(ctx context.Context) error
}
