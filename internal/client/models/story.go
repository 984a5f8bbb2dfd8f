// Package models holds the domain types of the snooze client: stories,
// the story catalog, users and the persisted credential.
package models

import (
	"strings"
	"time"
)

// Story is a single shared submission as returned by the remote API.
// Stories are immutable once fetched; identity is StoryID.
type Story struct {
	StoryID   string    `json:"storyId"`
	Author    string    `json:"author"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// HostName returns the display hostname for the story URL: the authority part
// after any scheme, cut at the first path separator, with a leading "www."
// label stripped. No further normalization happens; a malformed URL yields
// whatever substring results.
func (s Story) HostName() string {
	host := s.URL
	if idx := strings.Index(host, "://"); idx >= 0 {
		host = host[idx+len("://"):]
	}
	if idx := strings.Index(host, "/"); idx >= 0 {
		host = host[:idx]
	}
	return strings.TrimPrefix(host, "www.")
}

// StoryList is the full ordered catalog of shared stories as last fetched
// from the remote API. It is replaced wholesale on each fetch; the order is
// server-defined and must be preserved when rendering.
type StoryList struct {
	Stories []Story `json:"stories"`
}

// ByUser returns the stories created by username, preserving catalog order.
func (l *StoryList) ByUser(username string) []Story {
	var out []Story
	for _, s := range l.Stories {
		if s.Username == username {
			out = append(out, s)
		}
	}
	return out
}
