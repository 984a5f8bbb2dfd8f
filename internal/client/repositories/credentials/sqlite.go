package credentials

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mkarlovs/snooze/internal/client/models"
	"github.com/mkarlovs/snooze/internal/dbx"
)

const (
	keyToken    = "token"
	keyUsername = "username"
)

// SQLiteRepository stores the credential as two rows of the key/value
// session table. Token and username are written and removed inside one
// transaction so a partial credential is never observable.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Load returns the stored credential, or nil when either half is missing.
func (r *SQLiteRepository) Load(ctx context.Context) (*models.Credential, error) {
	token, err := r.get(ctx, keyToken)
	if err != nil {
		return nil, err
	}
	username, err := r.get(ctx, keyUsername)
	if err != nil {
		return nil, err
	}
	if token == "" || username == "" {
		return nil, nil
	}
	return &models.Credential{Token: token, Username: username}, nil
}

// Save writes both halves of the credential atomically.
func (r *SQLiteRepository) Save(ctx context.Context, cred *models.Credential) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, cred.Token); err != nil {
			return err
		}
		return set(ctx, tx, keyUsername, cred.Username)
	})
}

// Clear removes the credential. Clearing an empty store is a no-op.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key IN (?, ?)`, keyToken, keyUsername)
		if err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	})
}

func (r *SQLiteRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}
