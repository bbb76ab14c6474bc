package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/testutil"
)

type recordedRequest struct {
	path  string
	query url.Values
}

type fakeRecorder struct {
	mu       sync.Mutex
	statuses map[string][]int
}

func (r *fakeRecorder) RecordCatalogRequest(endpoint string, status int, _ time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statuses[endpoint] = append(r.statuses[endpoint], status)
}

type ClientSuite struct {
	suite.Suite
	server   *httptest.Server
	requests []recordedRequest
	status   int
	body     any
	recorder *fakeRecorder
	client   *Client
	ctx      context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.requests = nil
	s.status = http.StatusOK
	s.body = model.MoviePage{Page: 1, TotalPages: 3, Results: []model.Movie{{ID: 550, Title: "Fight Club"}}}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests = append(s.requests, recordedRequest{path: r.URL.Path, query: r.URL.Query()})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(s.status)
		_ = json.NewEncoder(w).Encode(s.body)
	}))
	s.recorder = &fakeRecorder{statuses: map[string][]int{}}
	s.client = NewClient(Config{BaseURL: s.server.URL + "/3/", APIKey: "secret"}, s.server.Client(), s.recorder, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientSuite) lastRequest() recordedRequest {
	s.Require().NotEmpty(s.requests)
	return s.requests[len(s.requests)-1]
}

func (s *ClientSuite) TestGetInjectsCredentialsAndLanguage() {
	var out map[string]any
	s.Require().NoError(s.client.Get(s.ctx, "/movie/popular", nil, &out))

	req := s.lastRequest()
	s.Equal("/3/movie/popular", req.path)
	s.Equal("secret", req.query.Get("api_key"))
	s.Equal("fr-FR", req.query.Get("language"))
}

func (s *ClientSuite) TestCallerParamsOverrideDefaults() {
	var out map[string]any
	params := url.Values{"language": {"en-US"}, "page": {"2"}}
	s.Require().NoError(s.client.Get(s.ctx, "/movie/popular", params, &out))

	req := s.lastRequest()
	s.Equal("en-US", req.query.Get("language"))
	s.Equal("2", req.query.Get("page"))
	s.Equal("secret", req.query.Get("api_key"))
}

func (s *ClientSuite) TestNonSuccessStatusReturnsRemoteCatalogError() {
	s.status = http.StatusUnauthorized
	s.body = map[string]string{"status_message": "Invalid API key"}

	_, err := s.client.Popular(s.ctx, 1)

	var remote *RemoteCatalogError
	s.Require().True(errors.As(err, &remote))
	s.Equal(401, remote.Status)
	s.Equal("Unauthorized", remote.StatusText)
	s.Equal("catalog error: 401 Unauthorized", remote.Error())
	s.Equal([]int{401}, s.recorder.statuses["/movie/popular"])
}

func (s *ClientSuite) TestPopular() {
	page, err := s.client.Popular(s.ctx, 2)

	s.Require().NoError(err)
	s.Equal(3, page.TotalPages)
	s.Equal("Fight Club", page.Results[0].Title)
	s.Equal("/3/movie/popular", s.lastRequest().path)
	s.Equal("2", s.lastRequest().query.Get("page"))
	s.Equal([]int{200}, s.recorder.statuses["/movie/popular"])
}

func (s *ClientSuite) TestListingEndpoints() {
	cases := []struct {
		name  string
		call  func() (*model.MoviePage, error)
		path  string
		extra map[string]string
	}{
		{"trending", func() (*model.MoviePage, error) { return s.client.Trending(s.ctx, 1) }, "/3/trending/movie/week", nil},
		{"upcoming", func() (*model.MoviePage, error) { return s.client.Upcoming(s.ctx, 1) }, "/3/movie/upcoming", nil},
		{"by genre", func() (*model.MoviePage, error) { return s.client.ByGenre(s.ctx, 28, 1) }, "/3/discover/movie",
			map[string]string{"with_genres": "28", "sort_by": "popularity.desc"}},
		{"by title", func() (*model.MoviePage, error) { return s.client.ByTitle(s.ctx, "la haine", 1) }, "/3/search/movie",
			map[string]string{"query": "la haine"}},
		{"by date", func() (*model.MoviePage, error) { return s.client.ByReleaseDate(s.ctx, "1999-10-15", 1) }, "/3/discover/movie",
			map[string]string{"primary_release_date": "1999-10-15"}},
		{"by note", func() (*model.MoviePage, error) { return s.client.ByMinimumRating(s.ctx, 7.5, 1) }, "/3/discover/movie",
			map[string]string{"vote_average": "7.5"}},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := tc.call()
			s.Require().NoError(err)

			req := s.lastRequest()
			s.Equal(tc.path, req.path)
			s.Equal("1", req.query.Get("page"))
			for k, v := range tc.extra {
				s.Equal(v, req.query.Get(k), k)
			}
		})
	}
}

func (s *ClientSuite) TestGenres() {
	s.body = model.GenreList{Genres: []model.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comédie"}}}

	genres, err := s.client.Genres(s.ctx)

	s.Require().NoError(err)
	s.Equal("/3/genre/movie/list", s.lastRequest().path)
	s.Empty(s.lastRequest().query.Get("page"))
	g, ok := genres.Find(35)
	s.True(ok)
	s.Equal("Comédie", g.Name)
}

func (s *ClientSuite) TestMalformedBody() {
	s.body = "not a page"

	_, err := s.client.Popular(s.ctx, 1)

	s.Error(err)
	var remote *RemoteCatalogError
	s.False(errors.As(err, &remote))
}

func (s *ClientSuite) TestTransportErrorRecordsZeroStatus() {
	s.server.Close()

	_, err := s.client.Upcoming(s.ctx, 1)

	s.Error(err)
	s.Equal([]int{0}, s.recorder.statuses["/movie/upcoming"])
}

func (s *ClientSuite) TestRateLimitHonoursContext() {
	client := NewClient(Config{BaseURL: s.server.URL, APIKey: "k", RateLimit: 0.001}, s.server.Client(), nil, testutil.NopLogger())
	_, err := client.Popular(s.ctx, 1)
	s.Require().NoError(err)

	ctx, cancel := context.WithTimeout(s.ctx, 20*time.Millisecond)
	defer cancel()
	_, err = client.Popular(ctx, 1)

	s.Error(err)
	s.Len(s.requests, 1)
}
