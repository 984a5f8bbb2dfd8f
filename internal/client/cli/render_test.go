package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarlovs/snooze/internal/client/models"
)

func TestStoryLineMarkerDerivedFromFavorites(t *testing.T) {
	story := models.Story{StoryID: "s1", Title: "T", URL: "https://www.example.com/x", Author: "A", Username: "alice"}

	anon := storyLine(1, story, nil)
	assert.Contains(t, anon, "[ ]")

	user := &models.User{Favorites: []models.Story{{StoryID: "s1"}}}
	starred := storyLine(1, story, user)
	assert.Contains(t, starred, "[*]")

	other := &models.User{Favorites: []models.Story{{StoryID: "s2"}}}
	assert.Contains(t, storyLine(1, story, other), "[ ]")
}

func TestStoryLineShowsHostname(t *testing.T) {
	story := models.Story{StoryID: "s1", Title: "T", URL: "https://www.example.com/x", Author: "A", Username: "alice"}
	line := storyLine(1, story, nil)
	assert.Contains(t, line, "(example.com)")
	assert.Contains(t, line, "posted by alice")
}

func TestRenderPreservesCatalogOrder(t *testing.T) {
	var out bytes.Buffer
	app := &App{
		out:    &out,
		region: RegionAll,
		catalog: &models.StoryList{Stories: []models.Story{
			{StoryID: "a", Title: "first"},
			{StoryID: "b", Title: "second"},
			{StoryID: "c", Title: "third"},
		}},
	}

	app.renderRegion()

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4) // header + 3 stories
	assert.Contains(t, lines[1], "first")
	assert.Contains(t, lines[2], "second")
	assert.Contains(t, lines[3], "third")

	require.Len(t, app.rendered, 3)
	assert.Equal(t, "a", app.rendered[0].StoryID)
	assert.Equal(t, "c", app.rendered[2].StoryID)
}

func TestRenderEmptyCatalog(t *testing.T) {
	var out bytes.Buffer
	app := &App{out: &out, region: RegionAll}

	app.renderRegion()
	assert.Contains(t, out.String(), "(nothing here yet)")
	assert.Empty(t, app.rendered)
}

func TestRenderFavoritesRegion(t *testing.T) {
	var out bytes.Buffer
	app := &App{
		out:    &out,
		region: RegionFavorites,
		currentUser: &models.User{
			Username:  "alice",
			Favorites: []models.Story{{StoryID: "f1", Title: "kept"}},
		},
	}

	app.renderRegion()
	assert.Contains(t, out.String(), "kept")
	assert.Contains(t, out.String(), "[*]")
}

func TestRenderOwnRegionFiltersByCreator(t *testing.T) {
	var out bytes.Buffer
	app := &App{
		out:         &out,
		region:      RegionOwn,
		currentUser: &models.User{Username: "alice"},
		catalog: &models.StoryList{Stories: []models.Story{
			{StoryID: "a", Title: "mine", Username: "alice"},
			{StoryID: "b", Title: "theirs", Username: "bob"},
		}},
	}

	app.renderRegion()
	assert.Contains(t, out.String(), "mine")
	assert.NotContains(t, out.String(), "theirs")
}
