package credentials

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlovs/snooze/internal/client/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestLoadEmpty(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	cred, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	in := &models.Credential{Token: "tok-1", Username: "alice"}
	require.NoError(t, r.Save(ctx, in))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *in, *got)
}

func TestSaveOverwrites(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &models.Credential{Token: "old", Username: "alice"}))
	require.NoError(t, r.Save(ctx, &models.Credential{Token: "new", Username: "bob"}))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", got.Token)
	assert.Equal(t, "bob", got.Username)
}

func TestClearRemovesBothKeys(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &models.Credential{Token: "tok", Username: "alice"}))
	require.NoError(t, r.Clear(ctx))

	cred, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cred)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestClearOnEmptyStoreIsNoop(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	require.NoError(t, r.Clear(context.Background()))
}

func TestLoadIgnoresPartialCredential(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	// A token without a username must read back as absent.
	_, err := db.Exec(`INSERT INTO session (key, value) VALUES ('token', 'orphan')`)
	require.NoError(t, err)

	cred, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, cred)
}
