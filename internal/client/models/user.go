package models

import "time"

// Credential is the persisted {token, username} pair that authenticates a
// returning session. The token is an opaque string; both fields are always
// stored and cleared together.
type Credential struct {
	Token    string
	Username string
}

// User is the authenticated identity owned by the running session. At most
// one User is current at a time.
//
// Favorites holds value copies of stories as the server last reported them,
// not references into the catalog; an entry can show stale story metadata
// until the next resume or login. The set is only mutated after the remote
// API has confirmed the corresponding change.
type User struct {
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	LoginToken string    `json:"-"`
	Favorites  []Story   `json:"favorites"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Credential derives the persistable credential for this user.
func (u *User) Credential() *Credential {
	return &Credential{Token: u.LoginToken, Username: u.Username}
}

// IsFavorite reports whether the story with the given id is in the user's
// favorite set. Linear scan; the set is small and its ordering carries no
// meaning.
func (u *User) IsFavorite(storyID string) bool {
	for _, s := range u.Favorites {
		if s.StoryID == storyID {
			return true
		}
	}
	return false
}

// AddFavorite appends a value copy of the story unless one with the same
// StoryID is already present.
func (u *User) AddFavorite(story Story) {
	if u.IsFavorite(story.StoryID) {
		return
	}
	u.Favorites = append(u.Favorites, story)
}

// RemoveFavorite removes the story with the given id from the favorite set,
// if present.
func (u *User) RemoveFavorite(storyID string) {
	for i, s := range u.Favorites {
		if s.StoryID == storyID {
			u.Favorites = append(u.Favorites[:i], u.Favorites[i+1:]...)
			return
		}
	}
}
