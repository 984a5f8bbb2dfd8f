package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/mkarlovs/snooze/internal/client/api"
	"github.com/mkarlovs/snooze/internal/client/config"
	"github.com/mkarlovs/snooze/internal/client/models"
	"github.com/mkarlovs/snooze/internal/client/repositories/credentials"
	"github.com/mkarlovs/snooze/internal/client/services"
	"github.com/mkarlovs/snooze/internal/client/storage"
	"github.com/mkarlovs/snooze/pkg/logger"
)

// Region identifies which view is currently shown; the equivalent of the
// visible page section. Exactly one region is active at a time.
type Region string

const (
	RegionAll       Region = "all stories"
	RegionFavorites Region = "favorites"
	RegionOwn       Region = "my stories"
)

// App holds the session state of the running process and the services the
// command handlers delegate to.
type App struct {
	config  *config.Config
	auth    services.AuthService
	stories services.StoryService

	currentUser *models.User
	catalog     *models.StoryList
	region      Region

	// rendered mirrors the list drawn last, so star/unstar can resolve a
	// line number back to a story id.
	rendered []models.Story

	reader *bufio.Reader
	out    io.Writer
	logger zerolog.Logger
}

// NewApp wires the local database, the API client and the services. The
// returned cleanup func closes the database.
func NewApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, nil, err
	}

	log := logger.Get()
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log)
	creds := credentials.NewSQLiteRepository(db)

	app := &App{
		config:  cfg,
		auth:    services.NewAuthService(apiClient, creds, log),
		stories: services.NewStoryService(apiClient, log),
		region:  RegionAll,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		logger:  log.With().Str("component", "cli").Logger(),
	}
	cleanup := func() { _ = db.Close() }
	return app, cleanup, nil
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}

// status feeds the REPL prompt.
func (a *App) status() string {
	if a.currentUser == nil {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s)", a.currentUser.Username)
}

// Run restores any stored session, populates the public story list and hands
// control to the REPL.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to snooze (type 'help' for commands)")
	a.checkIfLoggedIn(ctx)
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// checkIfLoggedIn is the process-start recovery path: silently resume the
// session from the stored credential if one is valid, then fetch and render
// the story list. A stale or missing credential renders the anonymous view
// with no error shown.
func (a *App) checkIfLoggedIn(ctx context.Context) {
	user, err := a.auth.Resume(ctx)
	if err == nil && user != nil {
		a.currentUser = user
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
	}
	a.refreshCatalog(ctx)
	a.renderRegion()
}

// refreshCatalog replaces the in-memory catalog with the server's current
// story set. On failure the previous catalog is kept and the problem is
// reported: an unreachable server means "catalog unavailable", never
// "catalog empty".
func (a *App) refreshCatalog(ctx context.Context) {
	list, err := a.stories.FetchAll(ctx)
	if err != nil {
		a.logger.Debug().Err(err).Msg("catalog refresh failed")
		fmt.Fprintf(a.out, "Could not load stories: %s\n", userMessage(err))
		return
	}
	a.catalog = list
}
