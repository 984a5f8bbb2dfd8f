package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mkarlovs/snooze/internal/client/api"
	"github.com/mkarlovs/snooze/internal/client/models"
)

// ShowAll navigates to the public story list, refreshing it from the server
// first. Available in any auth state.
func (a *App) ShowAll(ctx context.Context) error {
	a.region = RegionAll
	a.refreshCatalog(ctx)
	a.renderRegion()
	return nil
}

// ShowFavorites navigates to the current user's favorite set. The favorites
// render from session state; no fetch is involved.
func (a *App) ShowFavorites(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first to see favorites")
		return nil
	}
	a.region = RegionFavorites
	a.renderRegion()
	return nil
}

// ShowMine navigates to the stories the current user submitted, filtered out
// of the catalog in server order.
func (a *App) ShowMine(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first to see your stories")
		return nil
	}
	a.region = RegionOwn
	a.renderRegion()
	return nil
}

// Refresh re-fetches the catalog and redraws the active region. Orthogonal
// to auth state.
func (a *App) Refresh(ctx context.Context) error {
	a.refreshCatalog(ctx)
	a.renderRegion()
	return nil
}

// Submit prompts for the new story fields and creates it. On success the
// catalog is re-fetched (the new story is not appended locally, server order
// wins) and the all-stories view re-renders.
func (a *App) Submit(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first to submit a story")
		return nil
	}

	author, err := GetSimpleText(a.reader, "Enter author", a.out)
	if err != nil {
		return err
	}
	title, err := GetSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	url, err := GetSimpleText(a.reader, "Enter URL", a.out)
	if err != nil {
		return err
	}

	story, err := a.stories.Submit(ctx, a.currentUser, api.NewStory{Author: author, Title: title, URL: url})
	if err != nil {
		fmt.Fprintf(a.out, "Submit failed: %s\n", userMessage(err))
		return err
	}

	a.region = RegionAll
	a.refreshCatalog(ctx)
	a.renderRegion()
	fmt.Fprintf(a.out, "Submitted %q\n", story.Title)
	return nil
}

// Star marks the story at line number arg of the last rendered list as a
// favorite. The marker shows up on the following redraw, computed from the
// server-confirmed set; a failed call therefore leaves no stray marker to
// revert.
func (a *App) Star(ctx context.Context, arg string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first to mark favorites")
		return nil
	}
	story, ok := a.renderedStory(arg)
	if !ok {
		return nil
	}

	if err := a.auth.AddFavorite(ctx, a.currentUser, story); err != nil {
		fmt.Fprintf(a.out, "Could not mark favorite: %s\n", userMessage(err))
		return err
	}
	a.renderRegion()
	return nil
}

// Unstar removes the story at line number arg from the favorite set.
func (a *App) Unstar(ctx context.Context, arg string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Login first to mark favorites")
		return nil
	}
	story, ok := a.renderedStory(arg)
	if !ok {
		return nil
	}

	if err := a.auth.RemoveFavorite(ctx, a.currentUser, story.StoryID); err != nil {
		fmt.Fprintf(a.out, "Could not unmark favorite: %s\n", userMessage(err))
		return err
	}
	a.renderRegion()
	return nil
}

// renderedStory resolves a 1-based line number from the last rendered list.
func (a *App) renderedStory(arg string) (models.Story, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.rendered) {
		fmt.Fprintf(a.out, "No story at %q, pick a number from the list\n", arg)
		return models.Story{}, false
	}
	return a.rendered[n-1], true
}
