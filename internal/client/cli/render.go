package cli

import (
	"fmt"

	"github.com/mkarlovs/snooze/internal/client/models"
)

// renderRegion redraws the active region from current state and records the
// drawn list for line-number lookups. Server order is preserved exactly.
func (a *App) renderRegion() {
	switch a.region {
	case RegionFavorites:
		if a.currentUser == nil {
			a.rendered = nil
			return
		}
		a.renderStories(RegionFavorites, a.currentUser.Favorites)
	case RegionOwn:
		if a.currentUser == nil || a.catalog == nil {
			a.rendered = nil
			return
		}
		a.renderStories(RegionOwn, a.catalog.ByUser(a.currentUser.Username))
	default:
		var stories []models.Story
		if a.catalog != nil {
			stories = a.catalog.Stories
		}
		a.renderStories(RegionAll, stories)
	}
}

func (a *App) renderStories(region Region, stories []models.Story) {
	a.rendered = stories

	fmt.Fprintf(a.out, "-- %s --\n", region)
	if len(stories) == 0 {
		fmt.Fprintln(a.out, "(nothing here yet)")
		return
	}
	for i, s := range stories {
		fmt.Fprintln(a.out, storyLine(i+1, s, a.currentUser))
	}
}

// storyLine formats one list entry. The marker is "*" iff the story id is in
// the current user's favorite set; anonymous users always get a blank marker.
func storyLine(n int, story models.Story, user *models.User) string {
	marker := " "
	if user != nil && user.IsFavorite(story.StoryID) {
		marker = "*"
	}
	return fmt.Sprintf("%3d [%s] %s (%s) by %s, posted by %s",
		n, marker, story.Title, story.HostName(), story.Author, story.Username)
}
