package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/moviecat/internal/testutil"
)

func TestOutputText(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print(MoviePage{
		Films:       []Movie{{ID: 550, Title: "Fight Club", ReleaseDate: "1999-10-15", VoteAverage: 8.44}},
		CurrentPage: 2,
		TotalPages:  9,
		Genre:       &Genre{ID: 18, Name: "Drame"},
	})

	assert.Equal(t, "Genre: Drame (18)\nPage 2/9\n  - Fight Club (550) 1999-10-15 ★8.4\n", buf.String())
}

func TestOutputTextEmptyCollections(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput("text", &buf)

	out.Print(Favorites{})
	out.Print(Ratings{})
	out.Print(Vote{MovieID: 13})
	out.Print(Session{})

	assert.Equal(t, "No favorites\nNo votes\nMovie 13: not rated\nNot logged in\n", buf.String())
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	NewOutput("json", &buf).Print(Theme{Theme: "light", Classes: []string{"light"}})

	assert.JSONEq(t, `{"theme":"light","classes":["light"]}`, buf.String())
}

func TestDefaultConfigFromEnvironment(t *testing.T) {
	t.Setenv("MOVIECAT_SERVER", "http://films.test")
	t.Setenv("MOVIECAT_OUTPUT", "json")
	t.Setenv("MOVIECAT_TIMEOUT", "5s")

	c := DefaultConfig()
	assert.Equal(t, "http://films.test", c.ServerURL)
	assert.Equal(t, "json", c.Output)
	assert.Equal(t, 5*time.Second, c.Timeout)

	t.Setenv("MOVIECAT_TIMEOUT", "soon")
	assert.Equal(t, 30*time.Second, DefaultConfig().Timeout)
}

func TestClientErrorBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api":
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":{"code":"DUPLICATE_EMAIL","message":"Email already registered"}}`))
		case "/page":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Genre non trouvé"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`upstream down`))
		}
	}))
	defer server.Close()

	c := NewClient(server.URL, time.Second, testutil.NopLogger())
	ctx := context.Background()

	err := c.Get(ctx, "/api", nil)
	require.Error(t, err)
	assert.Equal(t, "Email already registered (DUPLICATE_EMAIL)", err.Error())

	err = c.Get(ctx, "/page", nil)
	require.Error(t, err)
	assert.Equal(t, "Genre non trouvé (HTTP 404)", err.Error())

	err = c.Get(ctx, "/other", nil)
	require.Error(t, err)
	assert.Equal(t, "HTTP 502: upstream down", err.Error())
}

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"identity", "register"},
		{"session", "whoami"},
		{"favorites", "check"},
		{"ratings", "vote"},
		{"theme", "toggle"},
		{"movies", "search"},
		{"health"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}
