package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkarlovs/snooze/internal/client/models"
	"github.com/mkarlovs/snooze/internal/common"
)

// Login prompts for credentials and authenticates. On success the credential
// is already persisted by the service; the catalog is refreshed and the
// story list re-renders with favorite markers. On failure the session state
// stays untouched.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", userMessage(err))
		return err
	}

	a.completeLogin(ctx, user)
	return nil
}

// Signup prompts for the account fields and creates the account. A success
// behaves exactly like a fresh login.
func (a *App) Signup(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Choose a username", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Signup(ctx, username, string(password), name)
	if err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", userMessage(err))
		return err
	}

	a.completeLogin(ctx, user)
	return nil
}

// completeLogin is the shared tail of login and signup: adopt the user,
// return to the all-stories view, refresh and re-render.
func (a *App) completeLogin(ctx context.Context, user *models.User) {
	a.currentUser = user
	a.region = RegionAll
	a.refreshCatalog(ctx)
	a.renderRegion()
	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
}

// Logout clears the persisted credential and resets all in-memory session
// state, equivalent to a fresh start with no credential. Logging out while
// already anonymous leaves everything empty.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", userMessage(err))
		return err
	}

	a.currentUser = nil
	a.catalog = nil
	a.rendered = nil
	a.region = RegionAll

	a.refreshCatalog(ctx)
	a.renderRegion()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// userMessage maps service errors onto short terminal-friendly text.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrUnavailable):
		return "service unavailable, try again later"
	case errors.Is(err, common.ErrUnauthorized):
		return "invalid credentials"
	case errors.Is(err, common.ErrNotFound):
		return "not found"
	default:
		return err.Error()
	}
}
