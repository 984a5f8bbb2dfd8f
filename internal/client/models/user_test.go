package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCredential(t *testing.T) {
	u := &User{Username: "alice", LoginToken: "tok-123"}
	cred := u.Credential()
	require.NotNil(t, cred)
	assert.Equal(t, "tok-123", cred.Token)
	assert.Equal(t, "alice", cred.Username)
}

func TestFavoriteAddRemoveInverse(t *testing.T) {
	u := &User{Username: "alice"}
	story := Story{StoryID: "s1", Title: "first"}

	assert.False(t, u.IsFavorite("s1"))

	u.AddFavorite(story)
	assert.True(t, u.IsFavorite("s1"))

	u.RemoveFavorite("s1")
	assert.False(t, u.IsFavorite("s1"))

	// Reverse order: removing first is a no-op, add still lands.
	u.RemoveFavorite("s1")
	u.AddFavorite(story)
	assert.True(t, u.IsFavorite("s1"))
}

func TestAddFavoriteIsIdempotentById(t *testing.T) {
	u := &User{}
	u.AddFavorite(Story{StoryID: "s1", Title: "old title"})
	u.AddFavorite(Story{StoryID: "s1", Title: "new title"})

	require.Len(t, u.Favorites, 1)
	// Value-copy semantics: the snapshot taken at first add wins.
	assert.Equal(t, "old title", u.Favorites[0].Title)
}

func TestRemoveFavoriteKeepsOthers(t *testing.T) {
	u := &User{Favorites: []Story{{StoryID: "a"}, {StoryID: "b"}, {StoryID: "c"}}}
	u.RemoveFavorite("b")

	require.Len(t, u.Favorites, 2)
	assert.Equal(t, "a", u.Favorites[0].StoryID)
	assert.Equal(t, "c", u.Favorites[1].StoryID)
}
